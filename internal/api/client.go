// Package api implements the HTTP client for the legal answer service.
package api

import (
	"context"
	"fmt"
	"sync"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// AnswerService is the seam the query controller talks through. It accepts
// a question and returns the raw answer text. An empty answer with a nil
// error means the service was reachable but returned nothing useful.
type AnswerService interface {
	Ask(ctx context.Context, question string) (string, error)
}

// httpDoer is the slice of tls_client.HttpClient the client needs.
// Narrowing the seam keeps tests free of the full transport interface.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts questions to the answer backend over HTTP.
type Client struct {
	httpClient httpDoer
	endpoint   string
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used in tests).
func WithHTTPClient(hc httpDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new answer service client for the given endpoint.
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint cannot be empty")
	}

	client := &Client{endpoint: endpoint}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(300),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Endpoint returns the configured answer service URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Close shuts down the client.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
