package cli

import (
	"bytes"
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	queries []domain.SearchQuery
}

func (m *mockSearchService) Search(_ context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockDownloadService is a mock implementation of driving.DownloadService.
type mockDownloadService struct {
	outcomes []domain.DownloadOutcome
	called   bool
	dir      string
	unsafe   bool
}

func (m *mockDownloadService) DownloadAll(
	_ context.Context,
	_ []domain.SearchResult,
	outputDir string,
	unsafe bool,
) []domain.DownloadOutcome {
	m.called = true
	m.dir = outputDir
	m.unsafe = unsafe
	return m.outcomes
}

var testResults = []domain.SearchResult{
	{Title: "Rust Book", Link: "https://doc.rust-lang.org/book/", Description: "The Rust Programming Language"},
	{Title: "Rust by Example", Link: "https://doc.rust-lang.org/rust-by-example/", Description: "Learn Rust with examples"},
}

// setupTestServices installs mock services and returns them with a cleanup
// that restores the previous state and resets every flag.
func setupTestServices() (*mockSearchService, *mockDownloadService, func()) {
	oldSearch, oldDownload, oldDefault := searchService, downloadService, defaultQuery
	oldStore, oldOpen, oldBuild := configStore, openStore, buildServices

	search := &mockSearchService{results: testResults}
	download := &mockDownloadService{}
	SetServices(&Services{Search: search, Download: download})

	return search, download, func() {
		searchService, downloadService, defaultQuery = oldSearch, oldDownload, oldDefault
		configStore, openStore, buildServices = oldStore, oldOpen, oldBuild
		resetFlags()
	}
}

// resetFlags restores flag values between executions of the shared rootCmd.
func resetFlags() {
	searchQuery = ""
	searchFileType = ""
	searchDomain = ""
	searchOutputDir = ""
	searchUnsafe = false
	searchJSON = false
	searchEnumerate = false
	configDir = ""
	verbose = false

	for _, name := range []string{"query", "filetype", "domain", "output", "unsafe", "json", "enumerate"} {
		rootCmd.Flags().Lookup(name).Changed = false
	}
	for _, name := range []string{"config", "verbose"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}
}

// execute runs rootCmd with args and returns stdout and stderr.
func execute(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
