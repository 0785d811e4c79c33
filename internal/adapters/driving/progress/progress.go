// Package progress provides driven.ProgressReporter implementations for
// batch downloads: an animated bar on a terminal, plain lines otherwise.
package progress

import (
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
)

// New returns a reporter writing to w.
// A terminal gets the bar reporter; anything else gets the line reporter.
func New(w io.Writer) driven.ProgressReporter {
	if IsTerminal(w) {
		return NewBar(w)
	}
	return NewLine(w)
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// errorLine formats the diagnostic shown for a failed outcome.
func errorLine(outcome domain.DownloadOutcome) string {
	if outcome.Err != nil {
		return fmt.Sprintf("Error: %v", outcome.Err)
	}
	return fmt.Sprintf("Error: %s", outcome.Reason)
}

// Nop discards all progress events.
type Nop struct{}

var _ driven.ProgressReporter = Nop{}

func (Nop) Start(int)                      {}
func (Nop) Advance(domain.DownloadOutcome) {}
func (Nop) Finish()                        {}
