package driven

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// SearchEngine executes a search against the upstream web search API.
// Backed by the Google Custom Search JSON API.
type SearchEngine interface {
	// Execute issues exactly one request and returns the items in API order.
	// Any failure (transport, status, body shape) wraps domain.ErrSearchRequest.
	Execute(ctx context.Context, req domain.SearchRequest) ([]domain.RawSearchItem, error)
}
