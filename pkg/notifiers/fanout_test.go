package notifiers

import (
	"context"
	"errors"
	"testing"
)

type stubNotifier struct {
	id    string
	typ   string
	err   error
	calls int
	last  Message
}

func (s *stubNotifier) ID() string   { return s.id }
func (s *stubNotifier) Type() string { return s.typ }
func (s *stubNotifier) Notify(_ context.Context, msg Message) error {
	s.calls++
	s.last = msg
	return s.err
}

func TestFanoutNotifyAggregatesErrors(t *testing.T) {
	ok := &stubNotifier{id: "ok", typ: "stdout"}
	bad := &stubNotifier{id: "bad", typ: "discord", err: errors.New("failed")}
	fanout := NewFanout([]Notifier{ok, bad})

	count, err := fanout.Notify(context.Background(), Message{Kind: KindResult, Text: "x"})
	if count != 1 {
		t.Fatalf("expected 1 success, got %d", count)
	}
	if err == nil {
		t.Fatal("expected aggregated error")
	}
	if ok.calls != 1 || bad.calls != 1 {
		t.Fatalf("every sink should be attempted: ok=%d bad=%d", ok.calls, bad.calls)
	}
}

func TestFanoutNotifyAllSinksConfirm(t *testing.T) {
	a := &stubNotifier{id: "a", typ: "stdout"}
	b := &stubNotifier{id: "b", typ: "stdout"}
	fanout := NewFanout([]Notifier{a, nil, b})

	if fanout.Size() != 2 {
		t.Fatalf("nil sinks should be dropped, size = %d", fanout.Size())
	}

	count, err := fanout.Notify(context.Background(), Message{Kind: KindPregame, Text: "soon"})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if count != 2 {
		t.Fatalf("delivered = %d, want 2", count)
	}
	if a.last.Text != "soon" || b.last.Text != "soon" {
		t.Fatalf("message not forwarded verbatim: %+v %+v", a.last, b.last)
	}
}

func TestFanoutWithoutSinksIsNotConfirmedDelivery(t *testing.T) {
	fanout := NewFanout(nil)

	if _, err := fanout.Notify(context.Background(), Message{Text: "x"}); err == nil {
		t.Fatal("zero sinks must not count as delivery")
	}
}
