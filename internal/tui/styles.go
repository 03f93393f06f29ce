// Package tui provides the terminal user interface of tows: the dependency
// picker, its renderer and the styled non-interactive output.
//
// This package provides a centralized style system using Lip Gloss. All colors
// use AdaptiveColor for light/dark terminal support.
//
// # Semantic Colors
//
// Four semantic colors are exported for use across components:
//   - ColorPrimary (Blue): kind glyphs, informational output
//   - ColorSuccess (Green): selected checkboxes
//   - ColorError (Red): errors
//   - ColorMuted (Gray): manifest paths and other secondary text
//
// # NO_COLOR Support
//
// Renderers from NewRenderer drop all colors when the NO_COLOR environment
// variable is set or TERM=dumb.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for kind glyphs and informational output.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for selected checkboxes.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorError is red, used for errors.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim secondary text such as manifest paths.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// Picker glyphs.
const (
	GlyphSelected   = "◉"
	GlyphUnselected = "◯"
)

// PickerStyles holds the lipgloss styles used by Render.
type PickerStyles struct {
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Kind       lipgloss.Style
	Entry      lipgloss.Style
	Cursor     lipgloss.Style
	Path       lipgloss.Style
}

// NewPickerStyles creates picker styles bound to r.
// A nil renderer uses the lipgloss default renderer.
func NewPickerStyles(r *lipgloss.Renderer) *PickerStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &PickerStyles{
		Selected:   r.NewStyle().Foreground(ColorSuccess),
		Unselected: r.NewStyle(),
		Kind:       r.NewStyle().Foreground(ColorPrimary).Bold(true),
		Entry:      r.NewStyle(),
		Cursor:     r.NewStyle().Underline(true),
		Path:       r.NewStyle().Foreground(ColorMuted),
	}
}

// TableStyles holds lipgloss styles for table rendering.
type TableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Kind   lipgloss.Style
	Dim    lipgloss.Style
}

// NewTableStyles creates styles for table rendering.
func NewTableStyles(r *lipgloss.Renderer) *TableStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &TableStyles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Cell: r.NewStyle(),
		Kind: r.NewStyle().Foreground(ColorPrimary),
		Dim:  r.NewStyle().Foreground(ColorMuted),
	}
}

// OutputStyles holds common output styles.
type OutputStyles struct {
	Error lipgloss.Style
	Dim   lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for light/dark terminal support.
func NewOutputStyles(r *lipgloss.Renderer) *OutputStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &OutputStyles{
		Error: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Dim: r.NewStyle().
			Foreground(ColorMuted),
	}
}

// NewRenderer returns a lipgloss renderer for w that honors NO_COLOR and TERM=dumb.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !HasColorSupport() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}
