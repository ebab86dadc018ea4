package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clubwatch-hq/clubwatch/pkg/httpclient"
)

const fixturePage = `<!DOCTYPE html>
<html>
<head>
<title>Fixtures</title>
<script>var tracker = "should never leak";</script>
<style>.hidden { display: none; }</style>
</head>
<body>
<h1>Capitals</h1>
<p>27 Dec 2025   19:30</p>
<div>Warriors <b>3 - 2</b> Capitals</div>
<noscript>enable javascript</noscript>
</body>
</html>`

func TestTextExtractsVisibleNodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "clubwatch/") {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		w.Write([]byte(fixturePage))
	}))
	defer srv.Close()

	f := NewFetcher(httpclient.New(5*time.Second, nil))
	text, err := f.Text(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	for _, want := range []string{"Capitals", "27 Dec 2025", "Warriors", "3 - 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
	for _, banned := range []string{"should never leak", "display: none", "enable javascript"} {
		if strings.Contains(text, banned) {
			t.Errorf("text leaked markup noise %q:\n%s", banned, text)
		}
	}

	// Node boundaries become line breaks so downstream windowing can rejoin
	// what the markup split apart.
	if !strings.Contains(text, "Warriors\n3 - 2\nCapitals") {
		t.Errorf("expected per-node lines, got:\n%s", text)
	}
}

func TestTextRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(httpclient.New(5*time.Second, nil))
	_, err := f.Text(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected an error for status 404")
	}
	if !strings.Contains(err.Error(), "status 404") || !strings.Contains(err.Error(), "gone fishing") {
		t.Errorf("error should carry status and body snippet, got: %v", err)
	}
}

type cannedClient struct {
	body   []byte
	status int
}

func (c *cannedClient) Get(context.Context, string, map[string]string) (httpclient.Response, error) {
	return cannedResponse{body: c.body, status: c.status}, nil
}

type cannedResponse struct {
	body   []byte
	status int
}

func (c cannedResponse) Body() []byte    { return c.body }
func (c cannedResponse) StatusCode() int { return c.status }

func TestTextCapsOversizedBodies(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body><p>kept content</p>")
	for b.Len() < maxHTMLBodyBytes+4096 {
		b.WriteString("<p>padding padding padding</p>")
	}
	b.WriteString("</body></html>")

	f := NewFetcher(&cannedClient{body: []byte(b.String()), status: 200})
	text, err := f.Text(context.Background(), "http://example.test/huge")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "kept content") {
		t.Error("prefix content lost when capping an oversized body")
	}
}
