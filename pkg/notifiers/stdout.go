package notifiers

import (
	"context"
	"fmt"
	"io"
	"os"
)

// stdoutNotifier prints messages instead of delivering them. Useful for dry
// runs against the live pages without spamming a channel.
type stdoutNotifier struct {
	id  string
	out io.Writer
}

func newStdoutNotifier(_ context.Context, cfg SinkConfig, _ Logger) (Notifier, error) {
	return &stdoutNotifier{id: cfg.ID, out: os.Stdout}, nil
}

func (s *stdoutNotifier) ID() string   { return s.id }
func (s *stdoutNotifier) Type() string { return TypeStdout }

func (s *stdoutNotifier) Notify(_ context.Context, msg Message) error {
	_, err := fmt.Fprintf(s.out, "[%s] %s\n", msg.Kind, msg.Text)
	return err
}
