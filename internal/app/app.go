// Package app assembles the watcher runtime from configuration: the club
// profile, the state store, the page fetcher and every configured
// notification sink.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/clubwatch-hq/clubwatch/internal/club"
	"github.com/clubwatch-hq/clubwatch/internal/config"
	"github.com/clubwatch-hq/clubwatch/internal/logger"
	"github.com/clubwatch-hq/clubwatch/internal/state"
	"github.com/clubwatch-hq/clubwatch/internal/watch"
	"github.com/clubwatch-hq/clubwatch/pkg/httpclient"
	"github.com/clubwatch-hq/clubwatch/pkg/notifiers"
	"github.com/clubwatch-hq/clubwatch/pkg/pages"
)

// App is one fully wired watch run waiting to be executed.
type App struct {
	cfg     *config.Config
	fanout  *notifiers.Fanout
	watcher *watch.Watcher
	store   state.Store
}

// New builds the runtime from config.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	profile, err := club.Default()
	if err != nil {
		return nil, fmt.Errorf("load club profile: %w", err)
	}

	sinks, err := buildSinks(ctx, cfg)
	if err != nil {
		return nil, err
	}
	fanout := notifiers.NewFanout(sinks)
	logger.InfoObj("notification sinks ready", "sinks_meta", map[string]any{
		"count": fanout.Size(),
	})

	store, err := state.New(cfg.StorageType, cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("init state store: %w", err)
	}
	logger.InfoObj("state store initialized", "storage_config", map[string]any{
		"type": cfg.StorageType,
		"path": cfg.StatePath,
	})

	client := httpclient.New(cfg.FetchTimeout, nil)
	fetcher := pages.NewFetcher(client)

	watcher, err := watch.New(profile, fetcher, fanout, store)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init watcher: %w", err)
	}

	return &App{
		cfg:     cfg,
		fanout:  fanout,
		watcher: watcher,
		store:   store,
	}, nil
}

// buildSinks assembles the delivery targets: the required webhook, the
// optional Telegram pair from the environment and whatever the optional
// registry file enables.
func buildSinks(ctx context.Context, cfg *config.Config) ([]notifiers.Notifier, error) {
	log := logger.Shim{}

	discord, err := notifiers.NewDiscord("discord-webhook", cfg.WebhookURL, cfg.WebhookTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("init discord sink: %w", err)
	}
	sinks := []notifiers.Notifier{discord}

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notifiers.NewTelegram("telegram", cfg.TelegramBotToken, cfg.TelegramChatID, log)
		if err != nil {
			return nil, fmt.Errorf("init telegram sink: %w", err)
		}
		sinks = append(sinks, tg)
	}

	if cfg.NotifiersFile != "" {
		reg, err := notifiers.LoadRegistry(cfg.NotifiersFile)
		if err != nil {
			return nil, fmt.Errorf("load notifiers registry: %w", err)
		}
		extra, err := notifiers.BuildAll(ctx, notifiers.DefaultRegistry(), reg.Enabled(), log)
		if err != nil {
			return nil, fmt.Errorf("build notifiers: %w", err)
		}
		sinks = append(sinks, extra...)
	}

	return sinks, nil
}

// Run executes one watch cycle and releases the store.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.watcher == nil {
		return fmt.Errorf("app is not initialized")
	}
	defer a.closeStore()

	start := time.Now()
	logger.InfoObj("watch run started", "run_meta", map[string]any{
		"sinks":      a.fanout.Size(),
		"started_at": start.UTC(),
	})
	if err := a.watcher.RunOnce(ctx); err != nil {
		return err
	}
	logger.InfoObj("watch run completed", "run_meta", map[string]any{
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// closeStore safely closes the state store, logging any error.
func (a *App) closeStore() {
	if a == nil || a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		logger.ErrorObj("state store close failed", "error", err.Error())
	}
}
