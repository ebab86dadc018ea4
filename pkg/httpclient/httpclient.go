// Package httpclient narrows outbound HTTP to the one-shot GET the page
// watcher needs, behind an interface tests can fake.
package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Response is the slice of an HTTP response callers care about.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different
// transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// RestyClient adapts resty.Client to the Client interface. Default headers
// apply to every request; per-call headers override them key by key.
type RestyClient struct {
	client  *resty.Client
	headers map[string]string
}

// New builds a resty-backed client with a per-request timeout.
func New(timeout time.Duration, defaultHeaders map[string]string) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	return &RestyClient{client: c, headers: defaultHeaders}
}

// Get performs an HTTP GET with the configured defaults plus per-call
// headers.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(r.headers) > 0 {
		req.SetHeaders(r.headers)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponse{resp: resp}, nil
}

type restyResponse struct {
	resp *resty.Response
}

func (r *restyResponse) Body() []byte    { return r.resp.Body() }
func (r *restyResponse) StatusCode() int { return r.resp.StatusCode() }
