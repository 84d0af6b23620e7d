// Package transport provides the fetch capability the Foursquare client
// issues its requests through.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Method is an HTTP method supported by the API
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// Response is a completed HTTP exchange
type Response struct {
	StatusCode int
	Body       []byte
	Message    string // reason phrase, e.g. "Not Found"
}

// Fetcher performs a single request. Implementations own connections,
// timeouts and anything else below the response body.
type Fetcher interface {
	Fetch(ctx context.Context, method Method, url string) (*Response, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, method Method, url string) (*Response, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, method Method, url string) (*Response, error) {
	return f(ctx, method, url)
}

// HTTPFetcher is the default Fetcher backed by net/http
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher. A nil client gets a 30 second timeout.
func NewHTTPFetcher(client *http.Client, userAgent string) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// Client returns the underlying HTTP client
func (f *HTTPFetcher) Client() *http.Client {
	return f.client
}

// Fetch performs the request and reads the whole body
func (f *HTTPFetcher) Fetch(ctx context.Context, method Method, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, string(method), url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Message:    reasonPhrase(resp),
	}, nil
}

// reasonPhrase strips the numeric code from the status line
func reasonPhrase(resp *http.Response) string {
	msg := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}
