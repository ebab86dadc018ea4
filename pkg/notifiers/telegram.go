package notifiers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramSender is the slice of the bot API the sink uses; tests fake it.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// telegramNotifier sends messages to one Telegram chat. Sends are
// synchronous: the watcher runs to completion and posts a handful of
// messages per invocation, far below the bot API rate limits.
type telegramNotifier struct {
	id     string
	chatID int64
	bot    telegramSender
	log    Logger
}

// NewTelegram builds a Telegram chat sink from a bot token and chat id.
func NewTelegram(id, botToken string, chatID int64, log Logger) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &telegramNotifier{
		id:     id,
		chatID: chatID,
		bot:    bot,
		log:    ensureLogger(log),
	}, nil
}

func newTelegramNotifier(_ context.Context, cfg SinkConfig, log Logger) (Notifier, error) {
	if cfg.Telegram == nil {
		return nil, fmt.Errorf("sink %q missing telegram configuration", cfg.ID)
	}
	return NewTelegram(cfg.ID, cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
}

func (t *telegramNotifier) ID() string   { return t.id }
func (t *telegramNotifier) Type() string { return TypeTelegram }

func (t *telegramNotifier) Notify(_ context.Context, msg Message) error {
	tgMsg := tgbotapi.NewMessage(t.chatID, msg.Text)
	if _, err := t.bot.Send(tgMsg); err != nil {
		t.log.ErrorObj("telegram sink send failed", "sink_error", map[string]any{
			"sink_id": t.id,
			"error":   err.Error(),
		})
		return fmt.Errorf("send telegram message: %w", err)
	}

	t.log.DebugObj("telegram sink delivered message", "sink_delivery", map[string]any{
		"sink_id": t.id,
		"kind":    string(msg.Kind),
	})
	return nil
}
