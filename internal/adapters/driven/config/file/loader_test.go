package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

func mapLookup(m map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil, mapLookup(map[string]string{
		domain.EnvAPIKey:   "key",
		domain.EnvEngineID: "cx",
	}))

	require.NoError(t, err)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "cx", cfg.EngineID)
	assert.Equal(t, domain.DefaultSearchEndpoint, cfg.Endpoint)
	assert.Equal(t, 1, cfg.Concurrency)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	_, err := LoadConfig(nil, mapLookup(map[string]string{domain.EnvEngineID: "cx"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
}

func TestLoadConfig_MissingEngineID(t *testing.T) {
	_, err := LoadConfig(nil, mapLookup(map[string]string{domain.EnvAPIKey: "key"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
	assert.Contains(t, err.Error(), "SEARCH_ENGINE_ID")
}

func TestLoadConfig_FromStore(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`
[search]
endpoint = "http://127.0.0.1:9999/"
timeout_seconds = 5
default_query = "golang concurrency"

[downloads]
timeout_seconds = 20
rate_per_second = 2
burst = 3
concurrency = 4
user_agent = "test-agent"

[log]
file = "/tmp/gsearch-test.log"
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	cfg, err := LoadConfig(store, mapLookup(map[string]string{
		domain.EnvAPIKey:   "key",
		domain.EnvEngineID: "cx",
	}))

	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.SearchTimeout)
	assert.Equal(t, "golang concurrency", cfg.DefaultQuery)
	assert.Equal(t, 20*time.Second, cfg.DownloadTimeout)
	assert.Equal(t, 2.0, cfg.DownloadRate)
	assert.Equal(t, 3, cfg.DownloadBurst)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, "test-agent", cfg.UserAgent)
	assert.Equal(t, "/tmp/gsearch-test.log", cfg.LogFile)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		key  string
		raw  string
		want any
	}{
		{KeyDefaultQuery, "1984", "1984"},
		{KeyUserAgent, "true", "true"},
		{KeySearchEndpoint, "https://example.com/", "https://example.com/"},
		{KeyLogFile, "0", "0"},
		{KeyDownloadConcurrent, "3", int64(3)},
		{KeySearchTimeout, "10", int64(10)},
		{KeyDownloadRate, "0.5", 0.5},
		{KeyDownloadRate, "2", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.key, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	_, err := ParseValue(KeyDownloadBurst, "2.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")

	_, err = ParseValue(KeyDownloadRate, "fast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestLoadConfig_NumericDefaultQuery(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	value, err := ParseValue(KeyDefaultQuery, "1984")
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyDefaultQuery, value))

	cfg, err := LoadConfig(store, mapLookup(map[string]string{
		domain.EnvAPIKey:   "key",
		domain.EnvEngineID: "cx",
	}))

	require.NoError(t, err)
	assert.Equal(t, "1984", cfg.DefaultQuery)
}

func TestLoadConfig_InvalidConcurrency(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"),
		[]byte("[downloads]\nconcurrency = 0\n"), 0600))
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, err = LoadConfig(store, mapLookup(map[string]string{
		domain.EnvAPIKey:   "key",
		domain.EnvEngineID: "cx",
	}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestWithDotEnv_RealEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOOGLE_API_KEY=from-file\nSEARCH_ENGINE_ID=cx-from-file\n"), 0600))

	lookup, err := WithDotEnv(mapLookup(map[string]string{domain.EnvAPIKey: "from-env"}), path)
	require.NoError(t, err)

	v, ok := lookup(domain.EnvAPIKey)
	assert.True(t, ok)
	assert.Equal(t, "from-env", v)

	v, ok = lookup(domain.EnvEngineID)
	assert.True(t, ok)
	assert.Equal(t, "cx-from-file", v)

	_, ok = lookup("UNSET_VARIABLE")
	assert.False(t, ok)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	lookup, err := WithDotEnv(mapLookup(nil), filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	_, ok := lookup(domain.EnvAPIKey)
	assert.False(t, ok)
}

func TestWithDotEnv_FirstFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("SEARCH_ENGINE_ID=first\n"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("SEARCH_ENGINE_ID=second\nGOOGLE_API_KEY=second-key\n"), 0600))

	lookup, err := WithDotEnv(mapLookup(nil), first, second)
	require.NoError(t, err)

	cfg, err := LoadConfig(nil, lookup)
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.EngineID)
	assert.Equal(t, "second-key", cfg.APIKey)
}
