// Package fetch provides the HTTP implementation of driven.Fetcher used to
// download the content behind search results.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher downloads links over HTTP.
type Fetcher struct {
	client    *http.Client
	limiter   *RateLimiter
	userAgent string
}

// Options configures a Fetcher.
type Options struct {
	// Timeout bounds each fetch including reading the body.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// RateLimit throttles fetches. The zero value disables throttling.
	RateLimit RateLimitConfig
}

// NewFetcher creates a new HTTP fetcher.
func NewFetcher(opts Options) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter:   NewRateLimiter(opts.RateLimit),
		userAgent: opts.UserAgent,
	}
}

// Fetch retrieves url and reads the whole body into memory.
// Non-2xx responses are returned, not treated as errors; the status is on the response.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*driven.FetchResponse, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")

	return &driven.FetchResponse{
		ContentType:    contentType,
		HasContentType: contentType != "",
		StatusCode:     resp.StatusCode,
		Body:           body,
	}, nil
}
