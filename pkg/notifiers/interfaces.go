package notifiers

import "context"

// Notifier delivers one message to a downstream sink (Discord, Telegram,
// SNS, SQS, Pub/Sub, ...). A nil error means the sink accepted the message.
type Notifier interface {
	ID() string
	Type() string
	Notify(ctx context.Context, msg Message) error
}
