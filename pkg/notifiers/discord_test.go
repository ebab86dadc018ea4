package notifiers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDiscordNotifierPostsContent(t *testing.T) {
	var payload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("Content-Type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink, err := NewDiscord("primary", srv.URL, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("NewDiscord: %v", err)
	}

	msg := Message{Kind: KindResult, Text: "🏒 Final score: Capitals 3 - 2 Warriors"}
	if err := sink.Notify(context.Background(), msg); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if got := payload["content"]; got != msg.Text {
		t.Fatalf("content = %q, want %q", got, msg.Text)
	}
	if len(payload) != 1 {
		t.Fatalf("payload should carry only the content field, got %v", payload)
	}
}

func TestDiscordNotifierErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	sink, err := NewDiscord("primary", srv.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("NewDiscord: %v", err)
	}

	if err := sink.Notify(context.Background(), Message{Text: "hello"}); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestDiscordNotifierRequiresWebhookURL(t *testing.T) {
	if _, err := NewDiscord("primary", "  ", time.Second, nil); err == nil {
		t.Fatal("empty webhook url should be rejected")
	}
}
