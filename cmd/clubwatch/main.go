package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clubwatch-hq/clubwatch/internal/app"
	"github.com/clubwatch-hq/clubwatch/internal/config"
	"github.com/clubwatch-hq/clubwatch/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "clubwatch run failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	// The webhook URL and bot token stay out of the logs.
	logger.InfoObj("clubwatch starting", "config", map[string]any{
		"app_name":              cfg.AppName,
		"env":                   cfg.Env,
		"storage_type":          cfg.StorageType,
		"state_path":            cfg.StatePath,
		"fetch_timeout_seconds": int(cfg.FetchTimeout.Seconds()),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watch, err := app.New(ctx, cfg)
	if err != nil {
		logger.ErrorObj("failed to initialize clubwatch", "error", err.Error())
		return err
	}

	if err := watch.Run(ctx); err != nil {
		return fmt.Errorf("watch run: %w", err)
	}

	return nil
}
