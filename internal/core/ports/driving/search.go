package driving

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search runs one query against the web search API and returns the
	// mapped results in API order.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)
}
