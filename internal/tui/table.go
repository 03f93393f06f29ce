package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mrz1836/tows/internal/domain"
)

// columnGap separates table columns.
const columnGap = "  "

// DependencyTableOption is a functional option for DependencyTable configuration.
type DependencyTableOption func(*DependencyTable)

// WithTerminalWidth sets a specific terminal width (useful for testing).
// Zero disables truncation.
func WithTerminalWidth(width int) DependencyTableOption {
	return func(t *DependencyTable) {
		t.width = width
	}
}

// WithTableStyles sets the table styles.
func WithTableStyles(styles *TableStyles) DependencyTableOption {
	return func(t *DependencyTable) {
		t.styles = styles
	}
}

// DependencyTable renders collected dependencies in display order.
type DependencyTable struct {
	deps   []domain.Dependency
	styles *TableStyles
	width  int
}

// NewDependencyTable creates a new table over deps.
// The terminal width is detected from stdout unless overridden.
func NewDependencyTable(deps []domain.Dependency, opts ...DependencyTableOption) *DependencyTable {
	t := &DependencyTable{
		deps:  deps,
		width: detectTerminalWidth(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.styles == nil {
		t.styles = NewTableStyles(nil)
	}
	return t
}

// detectTerminalWidth returns the current terminal width, or 0 when stdout is not a terminal.
func detectTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// Headers returns the column headers.
func (t *DependencyTable) Headers() []string {
	return []string{"KIND", "NAME", "VERSION", "SOURCE"}
}

// Rows returns the plain cell values in display order.
func (t *DependencyTable) Rows() [][]string {
	rows := make([][]string, len(t.deps))
	for i, dep := range t.deps {
		rows[i] = []string{dep.Kind.Glyph(), dep.Name, dep.Version, dep.Source}
	}
	return rows
}

// columnWidths returns the display width of every column.
// The source column absorbs any shortage of terminal width.
func (t *DependencyTable) columnWidths(rows [][]string) []int {
	headers := t.Headers()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	if t.width > 0 {
		last := len(widths) - 1
		used := len(columnGap) * last
		for _, w := range widths[:last] {
			used += w
		}
		widths[last] = max(runewidth.StringWidth(headers[last]), min(widths[last], t.width-used))
	}

	return widths
}

// Render writes the formatted table to the writer.
func (t *DependencyTable) Render(w io.Writer) error {
	rows := t.Rows()
	widths := t.columnWidths(rows)

	headerParts := make([]string, len(widths))
	for i, h := range t.Headers() {
		headerParts[i] = t.styles.Header.Render(runewidth.FillRight(h, widths[i]))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(headerParts, columnGap), " ")); err != nil {
		return err
	}

	for _, row := range rows {
		last := len(row) - 1
		cells := []string{
			t.styles.Kind.Render(runewidth.FillRight(row[0], widths[0])),
			t.styles.Cell.Render(runewidth.FillRight(row[1], widths[1])),
			t.styles.Cell.Render(runewidth.FillRight(row[2], widths[2])),
			t.styles.Dim.Render(runewidth.Truncate(row[last], widths[last], "…")),
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, columnGap)); err != nil {
			return err
		}
	}

	return nil
}
