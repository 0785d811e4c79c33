package driving

import (
	"context"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// DownloadService downloads the content behind search results.
type DownloadService interface {
	// DownloadAll processes every result in order and returns one outcome per
	// result. Per-item failures are recorded in the outcomes, never returned.
	DownloadAll(ctx context.Context, results []domain.SearchResult, outputDir string, unsafe bool) []domain.DownloadOutcome
}
