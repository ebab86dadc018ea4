// Package pages fetches public club pages and flattens them to visible text,
// one text node per line. The pages are not an API; downstream heuristics
// work on this text, so the fetcher stays dumb: no structured parsing beyond
// dropping markup and script noise.
package pages

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/clubwatch-hq/clubwatch/pkg/httpclient"
)

const (
	maxHTMLBodyBytes = 1 << 20 // 1 MiB

	defaultUserAgent = "clubwatch/1.0 (+https://github.com/clubwatch-hq/clubwatch)"
)

// Fetcher retrieves a page and reduces it to newline-separated text.
type Fetcher struct {
	client httpclient.Client
}

// NewFetcher wraps the given HTTP client.
func NewFetcher(client httpclient.Client) *Fetcher {
	return &Fetcher{client: client}
}

// DefaultHeaders identify the watcher to the club's site.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent": defaultUserAgent,
		"Accept":     "text/html,application/xhtml+xml",
	}
}

// Text GETs the URL and returns the page's visible text with one text node
// per line. Non-200 responses fail with a body snippet for the log.
func (f *Fetcher) Text(ctx context.Context, url string) (string, error) {
	resp, err := f.client.Get(ctx, url, DefaultHeaders())
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode() != 200 {
		snippet := strings.TrimSpace(string(resp.Body()))
		if len(snippet) > 1024 {
			snippet = snippet[:1024]
		}
		return "", fmt.Errorf("fetch %s: status %d body: %s", url, resp.StatusCode(), snippet)
	}

	body := resp.Body()
	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipElement(n.Data) {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				b.WriteString(t)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return b.String(), nil
}

func skipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template":
		return true
	}
	return false
}
