package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockSearchEngine implements driven.SearchEngine for testing.
type mockSearchEngine struct {
	items    []domain.RawSearchItem
	err      error
	calls    int
	lastReq  domain.SearchRequest
	deadline bool
}

func (m *mockSearchEngine) Execute(ctx context.Context, req domain.SearchRequest) ([]domain.RawSearchItem, error) {
	m.calls++
	m.lastReq = req
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// mockFetcher implements driven.Fetcher, keyed by URL.
type mockFetcher struct {
	mu        sync.Mutex
	responses map[string]*driven.FetchResponse
	errs      map[string]error
	fetched   []string
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{
		responses: make(map[string]*driven.FetchResponse),
		errs:      make(map[string]error),
	}
}

func (m *mockFetcher) respond(url, contentType string, body string) {
	m.responses[url] = &driven.FetchResponse{
		ContentType:    contentType,
		HasContentType: contentType != "",
		StatusCode:     200,
		Body:           []byte(body),
	}
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (*driven.FetchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetched = append(m.fetched, url)
	if err, ok := m.errs[url]; ok {
		return nil, err
	}
	if resp, ok := m.responses[url]; ok {
		return resp, nil
	}
	return nil, errors.New("connection refused")
}

// mockFileStore implements driven.FileStore in memory.
type mockFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func newMockFileStore() *mockFileStore {
	return &mockFileStore{files: make(map[string][]byte)}
}

func (m *mockFileStore) Write(dir, title string, _ int, ext string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.%s", title, ext))
	m.files[path] = data
	return path, nil
}

// mockProgress implements driven.ProgressReporter and records calls.
type mockProgress struct {
	total    int
	count    int
	finished int
	labels   []string
}

func (m *mockProgress) Start(total int) {
	m.total = total
}

func (m *mockProgress) Advance(outcome domain.DownloadOutcome) {
	m.count++
	m.labels = append(m.labels, outcome.Result.Title)
}

func (m *mockProgress) Finish() {
	m.finished++
}
