package driven

import "github.com/custodia-labs/gsearch/internal/core/domain"

// ProgressReporter displays batch progress.
// Advance is called exactly once per processed item and Finish exactly once,
// so the indicator always ends at the total passed to Start.
type ProgressReporter interface {
	// Start begins reporting for total items.
	Start(total int)

	// Advance moves the indicator forward by one and reports the item's outcome.
	// Failed outcomes should surface a diagnostic line to the user.
	Advance(outcome domain.DownloadOutcome)

	// Finish completes the indicator.
	Finish()
}
