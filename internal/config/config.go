package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from the environment
// (optionally seeded from configs/.env). Everything about the watched club
// itself (team, roster, page URLs, scan windows) is fixed at build time in
// the club package; only deployment concerns live here.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	// The chat endpoint notifications are delivered to. Required.
	WebhookURL            string `mapstructure:"discord_webhook_url"`
	WebhookTimeoutSeconds int64  `mapstructure:"webhook_timeout_seconds"`

	// Optional registry of additional notification sinks.
	NotifiersFile string `mapstructure:"notifiers_file"`

	// Optional Telegram sink; active when both values are set.
	TelegramBotToken string `mapstructure:"telegram_bot_token"`
	TelegramChatID   int64  `mapstructure:"telegram_chat_id"`

	StorageType string `mapstructure:"storage_type"`
	StatePath   string `mapstructure:"state_path"`

	FetchTimeoutSeconds int64         `mapstructure:"fetch_timeout_seconds"`
	FetchTimeout        time.Duration `mapstructure:"-"`
	WebhookTimeout      time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and the optional
// configs/.env file.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "clubwatch")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("discord_webhook_url", "")
	v.SetDefault("webhook_timeout_seconds", 20)
	v.SetDefault("notifiers_file", "")
	v.SetDefault("telegram_bot_token", "")
	v.SetDefault("telegram_chat_id", 0)
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("state_path", "./data/state.db")
	v.SetDefault("fetch_timeout_seconds", 20)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("DISCORD_WEBHOOK_URL is required")
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid fetch_timeout_seconds (must be positive seconds)")
	}
	if cfg.WebhookTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid webhook_timeout_seconds (must be positive seconds)")
	}
	cfg.FetchTimeout = time.Duration(cfg.FetchTimeoutSeconds) * time.Second
	cfg.WebhookTimeout = time.Duration(cfg.WebhookTimeoutSeconds) * time.Second

	return &cfg, nil
}
