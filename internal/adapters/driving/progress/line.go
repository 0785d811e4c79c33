package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

var _ driven.ProgressReporter = (*LineReporter)(nil)

// LineReporter writes one "[n/N] title" line per item.
type LineReporter struct {
	mu     sync.Mutex
	w      io.Writer
	styles *styles.Styles
	total  int
	done   int
}

// NewLine creates a line reporter writing to w.
func NewLine(w io.Writer) *LineReporter {
	return &LineReporter{
		w:      w,
		styles: styles.NewStyles(w, nil),
	}
}

// Start resets the counter.
func (r *LineReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = total
	r.done = 0
}

// Advance prints the item and, for failures, an error line.
func (r *LineReporter) Advance(outcome domain.DownloadOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.done++
	fmt.Fprintf(r.w, "[%d/%d] %s\n", r.done, r.total, outcome.Result.Title)
	if outcome.Status == domain.DownloadFailed {
		fmt.Fprintln(r.w, r.styles.Error.Render(errorLine(outcome)))
	}
}

// Finish is a no-op; every line is already written.
func (r *LineReporter) Finish() {}
