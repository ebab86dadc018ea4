package notifiers

import (
	"context"
	"errors"
	"fmt"
)

// Fanout delivers a message to every configured sink.
type Fanout struct {
	sinks []Notifier
}

// NewFanout builds a dispatcher over the given sinks, dropping nils.
func NewFanout(sinks []Notifier) *Fanout {
	cp := make([]Notifier, 0, len(sinks))
	for _, s := range sinks {
		if s == nil {
			continue
		}
		cp = append(cp, s)
	}
	return &Fanout{sinks: cp}
}

// Notify forwards the message to every sink and returns how many accepted
// it. Delivery counts as confirmed only when the error is nil, which
// requires every sink to accept; a partially failed fan-out is retried on
// the next run.
func (f *Fanout) Notify(ctx context.Context, msg Message) (int, error) {
	if f == nil || len(f.sinks) == 0 {
		return 0, errors.New("no notification sinks configured")
	}

	var errs []error
	delivered := 0
	for _, s := range f.sinks {
		if err := s.Notify(ctx, msg); err != nil {
			errs = append(errs, fmt.Errorf("%s sink[%s]: %w", s.Type(), s.ID(), err))
		} else {
			delivered++
		}
	}
	return delivered, errors.Join(errs...)
}

// Size returns the number of active sinks.
func (f *Fanout) Size() int {
	if f == nil {
		return 0
	}
	return len(f.sinks)
}
