package notifiers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// discordNotifier posts messages to a Discord channel webhook. Discord
// renders whatever lands in the payload's content field, so the sink wraps
// the finished text and nothing else.
type discordNotifier struct {
	id     string
	url    string
	client *resty.Client
	log    Logger
}

// NewDiscord builds the webhook sink. The primary deployment configures it
// from the environment rather than the sink registry file.
func NewDiscord(id, webhookURL string, timeout time.Duration, log Logger) (Notifier, error) {
	if strings.TrimSpace(webhookURL) == "" {
		return nil, fmt.Errorf("discord sink %q: webhook url is empty", id)
	}
	client := resty.New()
	client.SetTimeout(timeout)
	return &discordNotifier{
		id:     id,
		url:    webhookURL,
		client: client,
		log:    ensureLogger(log),
	}, nil
}

func newDiscordNotifier(_ context.Context, cfg SinkConfig, log Logger) (Notifier, error) {
	if cfg.Discord == nil {
		return nil, fmt.Errorf("sink %q missing discord configuration", cfg.ID)
	}
	return NewDiscord(cfg.ID, cfg.Discord.WebhookURL, time.Duration(cfg.Discord.TimeoutSeconds)*time.Second, log)
}

func (d *discordNotifier) ID() string   { return d.id }
func (d *discordNotifier) Type() string { return TypeDiscord }

func (d *discordNotifier) Notify(ctx context.Context, msg Message) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"content": msg.Text}).
		Post(d.url)
	if err != nil {
		return fmt.Errorf("discord request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("discord response status %d: %s", resp.StatusCode(), readBodySnippet(resp.Body()))
	}

	d.log.DebugObj("discord sink delivered message", "sink_delivery", map[string]any{
		"sink_id": d.id,
		"kind":    string(msg.Kind),
	})
	return nil
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
