package notifiers

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// pubsubNotifier publishes messages on a Google Pub/Sub topic.
type pubsubNotifier struct {
	id    string
	topic *pubsub.Topic
	log   Logger
}

func newPubSubNotifier(ctx context.Context, cfg SinkConfig, log Logger) (Notifier, error) {
	if cfg.PubSub == nil {
		return nil, fmt.Errorf("sink %q missing pubsub configuration", cfg.ID)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}

	return &pubsubNotifier{
		id:    cfg.ID,
		topic: client.Topic(cfg.PubSub.Topic),
		log:   ensureLogger(log),
	}, nil
}

func (p *pubsubNotifier) ID() string   { return p.id }
func (p *pubsubNotifier) Type() string { return TypePubSub }

// Notify publishes the message and waits for the server ack.
func (p *pubsubNotifier) Notify(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	res := p.topic.Publish(ctx, &pubsub.Message{
		Data:       payload,
		Attributes: map[string]string{"kind": string(msg.Kind)},
	})
	if _, err := res.Get(ctx); err != nil {
		p.log.ErrorObj("pubsub sink publish failed", "sink_error", map[string]any{
			"sink_id": p.id,
			"error":   err.Error(),
		})
		return fmt.Errorf("publish to pubsub: %w", err)
	}

	p.log.DebugObj("pubsub sink delivered message", "sink_delivery", map[string]any{
		"sink_id": p.id,
	})
	return nil
}
