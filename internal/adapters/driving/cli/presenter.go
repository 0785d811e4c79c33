package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/adapters/driving/styles"
	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/logger"
)

type outputMode int

const (
	modeConsole outputMode = iota
	modeJSON
	modeDownload
)

func (m outputMode) String() string {
	switch m {
	case modeJSON:
		return "json"
	case modeDownload:
		return "download"
	default:
		return "console"
	}
}

type presentOptions struct {
	mode      outputMode
	enumerate bool
	outputDir string
	unsafe    bool
}

// present renders results according to the selected mode.
func present(cmd *cobra.Command, results []domain.SearchResult, opts presentOptions) error {
	logger.Debug("output mode: %s", opts.mode)

	switch opts.mode {
	case modeDownload:
		return presentDownload(cmd, results, opts.outputDir, opts.unsafe)
	case modeJSON:
		return presentJSON(cmd.OutOrStdout(), results, opts.enumerate)
	default:
		presentConsole(cmd.OutOrStdout(), results)
		return nil
	}
}

// presentConsole writes one title/link/description block per result.
func presentConsole(w io.Writer, results []domain.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	st := styles.NewStyles(w, nil)
	for i := range results {
		fmt.Fprintln(w, renderLines(st.Title, results[i].Title))
		fmt.Fprintln(w, renderLines(st.Link, results[i].Link))
		fmt.Fprintln(w, renderLines(st.Description, results[i].Description))
		fmt.Fprintln(w)
	}
}

// renderLines styles each line on its own so multi-line snippets are not padded.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// presentJSON writes the results as an indented JSON array.
func presentJSON(w io.Writer, results []domain.SearchResult, enumerate bool) error {
	if results == nil {
		results = []domain.SearchResult{}
	}

	var v any = results
	if enumerate {
		v = domain.Enumerate(results)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// presentDownload hands the results to the download service and prints a summary.
// Individual outcomes never fail the command.
func presentDownload(cmd *cobra.Command, results []domain.SearchResult, dir string, unsafe bool) error {
	if downloadService == nil {
		return errors.New("download service not configured")
	}
	if dir == "" {
		dir = "."
	}

	outcomes := downloadService.DownloadAll(cmd.Context(), results, dir, unsafe)

	w := cmd.OutOrStdout()
	summary := domain.Summarise(outcomes)
	st := styles.NewStyles(w, nil)
	line := fmt.Sprintf("%d saved, %d skipped, %d failed", summary.Accepted, summary.Rejected, summary.Failed)
	if summary.Failed > 0 {
		fmt.Fprintln(w, st.Warning.Render(line))
	} else {
		fmt.Fprintln(w, st.Success.Render(line))
	}
	return nil
}
