package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

const twoItems = `{
  "kind": "customsearch#search",
  "items": [
    {"title": "The Rust Programming Language", "link": "https://doc.rust-lang.org/book/", "snippet": "The Rust book"},
    {"title": "Rust by Example", "link": "https://doc.rust-lang.org/rust-by-example/", "snippet": "Examples"}
  ]
}`

func newTestEngine(t *testing.T, handler http.HandlerFunc) (*Engine, *[]url.Values) {
	t.Helper()

	var seen []url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query())
		assert.Equal(t, "/customsearch/v1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := domain.DefaultConfig()
	cfg.Endpoint = server.URL
	cfg.SearchTimeout = 2 * time.Second

	engine, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	return engine, &seen
}

func testRequest(q domain.SearchQuery) domain.SearchRequest {
	return domain.SearchRequest{Query: q, APIKey: "test-key", EngineID: "test-cx"}
}

func TestEngine_Execute_ReturnsItemsInOrder(t *testing.T) {
	engine, seen := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoItems))
	})

	items, err := engine.Execute(context.Background(), testRequest(domain.SearchQuery{Text: "rust programming"}))

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "The Rust Programming Language", items[0].Title)
	assert.Equal(t, "https://doc.rust-lang.org/book/", items[0].Link)
	assert.Equal(t, "The Rust book", items[0].Snippet)
	assert.Equal(t, "Rust by Example", items[1].Title)

	require.Len(t, *seen, 1)
	params := (*seen)[0]
	assert.Equal(t, "rust programming", params.Get("q"))
	assert.Equal(t, "test-cx", params.Get("cx"))
	assert.Equal(t, "test-key", params.Get("key"))
	assert.False(t, params.Has("fileType"))
	assert.False(t, params.Has("siteSearch"))
}

func TestEngine_Execute_SendsOptionalRestrictions(t *testing.T) {
	engine, seen := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(twoItems))
	})

	_, err := engine.Execute(context.Background(), testRequest(domain.SearchQuery{
		Text:     "rust programming",
		FileType: "pdf",
		Domain:   "rust-lang.org",
	}))

	require.NoError(t, err)
	require.Len(t, *seen, 1)
	assert.Equal(t, "pdf", (*seen)[0].Get("fileType"))
	assert.Equal(t, "rust-lang.org", (*seen)[0].Get("siteSearch"))
}

func TestEngine_Execute_EmptyItemsIsNotAnError(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	items, err := engine.Execute(context.Background(), testRequest(domain.SearchQuery{Text: "q"}))

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEngine_Execute_MissingItems(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"kind": "customsearch#search", "searchInformation": {"totalResults": "0"}}`))
	})

	_, err := engine.Execute(context.Background(), testRequest(domain.SearchQuery{Text: "q"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchRequest))
	assert.True(t, errors.Is(err, ErrNoItems))
}

func TestEngine_Execute_MalformedJSON(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	})

	_, err := engine.Execute(context.Background(), testRequest(domain.SearchQuery{Text: "q"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchRequest))
}

func TestEngine_Execute_APIErrorPayloadIsReported(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid. Please pass a valid API key.", "status": "INVALID_ARGUMENT"}}`))
	})

	_, err := engine.Execute(context.Background(), testRequest(domain.SearchQuery{Text: "q"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchRequest))
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestEngine_Execute_QuotaExceeded(t *testing.T) {
	engine, seen := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "Quota exceeded for quota metric 'Queries'"}}`))
	})

	_, err := engine.Execute(context.Background(), testRequest(domain.SearchQuery{Text: "q"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchRequest))
	assert.True(t, IsRateLimited(err))
	assert.Contains(t, err.Error(), "Quota exceeded")
	assert.Len(t, *seen, 1, "failed requests are not retried")
}

func TestEngine_Execute_Timeout(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		_, _ = w.Write([]byte(twoItems))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := engine.Execute(ctx, testRequest(domain.SearchQuery{Text: "q"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchRequest))
}

func TestEngine_Execute_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	cfg := domain.DefaultConfig()
	cfg.Endpoint = endpoint
	engine, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)

	_, err = engine.Execute(context.Background(), testRequest(domain.SearchQuery{Text: "q"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSearchRequest))
}
