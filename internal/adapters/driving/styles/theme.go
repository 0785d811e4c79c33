// Package styles provides colour themes and styling for terminal output.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette used by console output and the progress bar.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles bound to one writer.
type Styles struct {
	theme *Theme

	// Title style for result titles.
	Title lipgloss.Style

	// Link style for result URLs.
	Link lipgloss.Style

	// Description style for result snippets.
	Description lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style
}

// NewStyles creates styles from a theme, rendering for w.
// The colour profile is detected from w, so output written to a pipe or
// a buffer carries no escape sequences.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Styles{
		theme: theme,

		Title: base.
			Bold(true).
			Foreground(theme.Primary),

		Link: base.
			Underline(true).
			Foreground(theme.Secondary),

		Description: base.
			Foreground(theme.Foreground),

		Muted: base.
			Foreground(theme.Muted),

		Error: base.
			Foreground(theme.Error),

		Success: base.
			Foreground(theme.Success),

		Warning: base.
			Foreground(theme.Warning),
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
