package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mrz1836/tows/internal/domain"
)

// pathIndent is the column the manifest path line starts at.
const pathIndent = 3

// Position is a 1-indexed (column, row) cell on the output surface.
type Position struct {
	Col int
	Row int
}

// Write is a single positioned write. Text may carry ANSI styling.
type Write struct {
	Position

	Text string
}

// Frame is one full repaint of the picker.
type Frame struct {
	// Writes are ordered top to bottom.
	Writes []Write

	// Cursor is where the terminal cursor is parked after drawing, the row
	// below the last entry. String always includes that row.
	Cursor Position

	// CursorHidden reports that the terminal cursor is hidden after drawing.
	// String never draws a cursor; the Bubble Tea renderer keeps it hidden.
	CursorHidden bool
}

// Viewport is the size of the output surface. Zero means unknown.
type Viewport struct {
	Width  int
	Height int
}

// rowsPerScreen returns how many entries fit in the viewport, or 0 when the height is unknown.
func (v Viewport) rowsPerScreen() int {
	if v.Height <= 0 {
		return 0
	}
	// Each entry takes two lines and one line is kept for the parked cursor.
	return max(1, (v.Height-1)/2)
}

// window returns the half-open range of entries drawn for cursor.
func window(n, cursor int, v Viewport) (int, int) {
	per := v.rowsPerScreen()
	if per == 0 || n <= per {
		return 0, n
	}
	cursor = min(max(cursor, 1), n)
	first := ((cursor - 1) / per) * per
	return first, min(first+per, n)
}

// Render draws entries as a frame. selected is indexed like entries and
// cursor is 1-indexed. Render keeps no state between calls.
func Render(entries []domain.Dependency, selected []bool, cursor int, v Viewport, styles *PickerStyles) Frame {
	if styles == nil {
		styles = NewPickerStyles(nil)
	}

	first, last := window(len(entries), cursor, v)
	frame := Frame{Writes: make([]Write, 0, 2*(last-first))}

	for i := first; i < last; i++ {
		dep := entries[i]
		row := 2*(i-first) + 1

		check := styles.Unselected.Render(GlyphUnselected)
		if i < len(selected) && selected[i] {
			check = styles.Selected.Render(GlyphSelected)
		}

		entry := styles.Entry
		if i+1 == cursor {
			entry = styles.Cursor
		}

		line := check + " " + styles.Kind.Render(dep.Kind.Glyph()) + " " + entry.Render(dep.Token())
		frame.Writes = append(frame.Writes,
			Write{Position: Position{Col: 1, Row: row}, Text: line},
			Write{Position: Position{Col: pathIndent, Row: row + 1}, Text: styles.Path.Render(truncatePath(dep.Source, v))},
		)
	}

	frame.Cursor = Position{Col: 1, Row: 2*(last-first) + 1}
	frame.CursorHidden = true

	return frame
}

// truncatePath shortens path to the space right of the indent when the width is known.
func truncatePath(path string, v Viewport) string {
	if v.Width <= 0 {
		return path
	}
	avail := v.Width - (pathIndent - 1)
	if avail <= 0 {
		return ""
	}
	return runewidth.Truncate(path, avail, "…")
}

// String composes the positioned writes into the text grid of the frame.
// The grid runs through the parked cursor row. Rows without writes are blank.
func (f Frame) String() string {
	rows := max(0, f.Cursor.Row)
	for _, w := range f.Writes {
		rows = max(rows, w.Row)
	}
	if len(f.Writes) == 0 || rows == 0 {
		return ""
	}

	writes := slices.Clone(f.Writes)
	slices.SortStableFunc(writes, func(a, b Write) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	lines := make([]string, rows)
	for _, w := range writes {
		if w.Row < 1 {
			continue
		}
		line := lines[w.Row-1]
		pad := max(0, w.Col-1-lipgloss.Width(line))
		lines[w.Row-1] = line + strings.Repeat(" ", pad) + w.Text
	}

	return strings.Join(lines, "\n")
}
