package mcp

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	query   domain.SearchQuery
}

func (m *mockSearchService) Search(_ context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	m.query = query
	return m.results, m.err
}
