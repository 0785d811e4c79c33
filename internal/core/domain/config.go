package domain

import (
	"fmt"
	"time"
)

// DefaultSearchEndpoint is the Custom Search JSON API base URL.
const DefaultSearchEndpoint = "https://customsearch.googleapis.com/"

// Environment variables holding the required credentials.
const (
	EnvAPIKey   = "GOOGLE_API_KEY"
	EnvEngineID = "SEARCH_ENGINE_ID"
)

// Config is the configuration for one invocation.
// It is built once at startup and passed to the components that need it.
type Config struct {
	// APIKey is the Custom Search API key.
	APIKey string

	// EngineID is the programmable search engine id (cx).
	EngineID string

	// Endpoint is the search API base URL.
	Endpoint string

	// SearchTimeout bounds the search call.
	SearchTimeout time.Duration

	// DownloadTimeout bounds each download fetch.
	DownloadTimeout time.Duration

	// DownloadRate is the sustained fetch rate in requests per second.
	// Zero disables throttling.
	DownloadRate float64

	// DownloadBurst is the fetch burst size.
	DownloadBurst int

	// Concurrency is the number of parallel downloads. 1 is sequential.
	Concurrency int

	// UserAgent is sent with download fetches.
	UserAgent string

	// DefaultQuery is used when no query is given on the command line.
	DefaultQuery string

	// LogFile, when set, receives structured logs.
	LogFile string
}

// DefaultConfig returns a configuration with default values and no credentials.
func DefaultConfig() Config {
	return Config{
		Endpoint:        DefaultSearchEndpoint,
		SearchTimeout:   15 * time.Second,
		DownloadTimeout: 60 * time.Second,
		DownloadRate:    0,
		DownloadBurst:   1,
		Concurrency:     1,
		UserAgent:       "gsearch/1.0",
	}
}

// Validate checks that the credentials are present and the limits are sane.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: %s not set", ErrConfiguration, EnvAPIKey)
	}
	if c.EngineID == "" {
		return fmt.Errorf("%w: %s not set", ErrConfiguration, EnvEngineID)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: downloads.concurrency must be at least 1", ErrConfiguration)
	}
	if c.DownloadRate < 0 {
		return fmt.Errorf("%w: downloads.rate_per_second cannot be negative", ErrConfiguration)
	}
	return nil
}
