package file

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

// Configuration keys read from the TOML file.
const (
	KeySearchEndpoint     = "search.endpoint"
	KeySearchTimeout      = "search.timeout_seconds"
	KeyDefaultQuery       = "search.default_query"
	KeyDownloadTimeout    = "downloads.timeout_seconds"
	KeyDownloadRate       = "downloads.rate_per_second"
	KeyDownloadBurst      = "downloads.burst"
	KeyDownloadConcurrent = "downloads.concurrency"
	KeyUserAgent          = "downloads.user_agent"
	KeyLogFile            = "log.file"
)

// KnownKeys lists every key LoadConfig reads.
var KnownKeys = []string{
	KeySearchEndpoint,
	KeySearchTimeout,
	KeyDefaultQuery,
	KeyDownloadTimeout,
	KeyDownloadRate,
	KeyDownloadBurst,
	KeyDownloadConcurrent,
	KeyUserAgent,
	KeyLogFile,
}

// intKeys and floatKeys hold the numeric settings; every other known key is a string.
var (
	intKeys = map[string]bool{
		KeySearchTimeout:      true,
		KeyDownloadTimeout:    true,
		KeyDownloadBurst:      true,
		KeyDownloadConcurrent: true,
	}
	floatKeys = map[string]bool{
		KeyDownloadRate: true,
	}
)

// ParseValue converts raw to the TOML type LoadConfig reads for key.
func ParseValue(key, raw string) (any, error) {
	switch {
	case intKeys[key]:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, got %q", key, raw)
		}
		return i, nil
	case floatKeys[key]:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number, got %q", key, raw)
		}
		return f, nil
	default:
		return raw, nil
	}
}

// EnvLookup resolves an environment variable. os.LookupEnv in production.
type EnvLookup func(key string) (string, bool)

// WithDotEnv layers the variables of .env files underneath lookup:
// a variable set in the real environment always wins. Missing files are ignored.
func WithDotEnv(lookup EnvLookup, paths ...string) (EnvLookup, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	values := make(map[string]string)
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range vars {
			if _, ok := values[k]; !ok {
				values[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// LoadConfig builds the configuration for one invocation.
// Defaults are overridden by the store (which may be nil), and credentials
// come from the environment. Missing credentials give domain.ErrConfiguration.
func LoadConfig(store driven.ConfigStore, lookup EnvLookup) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if store != nil {
		applyStore(&cfg, store)
	}

	if lookup != nil {
		cfg.APIKey, _ = lookup(domain.EnvAPIKey)
		cfg.EngineID, _ = lookup(domain.EnvEngineID)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyStore(cfg *domain.Config, store driven.ConfigStore) {
	if v := store.GetString(KeySearchEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := store.GetInt(KeySearchTimeout); v > 0 {
		cfg.SearchTimeout = time.Duration(v) * time.Second
	}
	if v := store.GetString(KeyDefaultQuery); v != "" {
		cfg.DefaultQuery = v
	}
	if v := store.GetInt(KeyDownloadTimeout); v > 0 {
		cfg.DownloadTimeout = time.Duration(v) * time.Second
	}
	if _, ok := store.Get(KeyDownloadRate); ok {
		cfg.DownloadRate = store.GetFloat(KeyDownloadRate)
	}
	if v := store.GetInt(KeyDownloadBurst); v > 0 {
		cfg.DownloadBurst = v
	}
	if _, ok := store.Get(KeyDownloadConcurrent); ok {
		cfg.Concurrency = store.GetInt(KeyDownloadConcurrent)
	}
	if v := store.GetString(KeyUserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := store.GetString(KeyLogFile); v != "" {
		cfg.LogFile = v
	}
}
