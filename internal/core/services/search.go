package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs a single web search and maps its items.
type SearchService struct {
	engine driven.SearchEngine
	cfg    domain.Config
}

// NewSearchService creates a new search service.
// cfg supplies the credentials and the search timeout.
func NewSearchService(engine driven.SearchEngine, cfg domain.Config) *SearchService {
	return &SearchService{
		engine: engine,
		cfg:    cfg,
	}
}

// Search builds the request, executes it once, and maps the items.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")

	if s.engine == nil {
		return nil, errors.New("search engine not configured")
	}

	req, err := BuildRequest(query.Text, query.FileType, query.Domain, s.cfg.APIKey, s.cfg.EngineID)
	if err != nil {
		return nil, err
	}
	logger.Debug("Query: %q, fileType: %q, siteSearch: %q", req.Query.Text, req.Query.FileType, req.Query.Domain)

	if s.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SearchTimeout)
		defer cancel()
	}

	items, err := s.engine.Execute(ctx, req)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, err
	}

	results := MapResults(items)
	logger.Info("Search returned %d results", len(results))
	return results, nil
}
