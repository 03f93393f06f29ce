package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_PositionsAndGlyphs(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	frame := Render(entries, []bool{false, true, false, true}, 1, Viewport{}, plainStyles())

	expected := []Write{
		{Position: Position{Col: 1, Row: 1}, Text: "◯ S typescript@^3.8.3"},
		{Position: Position{Col: 3, Row: 2}, Text: "/work/app/package.json"},
		{Position: Position{Col: 1, Row: 3}, Text: "◉ S redux@^4.0.5"},
		{Position: Position{Col: 3, Row: 4}, Text: "/work/package.json"},
		{Position: Position{Col: 1, Row: 5}, Text: "◯ D eslint@^6.8.0"},
		{Position: Position{Col: 3, Row: 6}, Text: "/work/app/package.json"},
		{Position: Position{Col: 1, Row: 7}, Text: "◉ P react@^16.13.0"},
		{Position: Position{Col: 3, Row: 8}, Text: "/work/package.json"},
	}
	assert.Equal(t, expected, frame.Writes)
	assert.Equal(t, Position{Col: 1, Row: 9}, frame.Cursor)
	assert.True(t, frame.CursorHidden)
}

func TestRender_UnderlinesOnlyCursorRow(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	styles := NewPickerStyles(r)

	entries := testEntries()
	frame := Render(entries, nil, 2, Viewport{}, styles)
	require.Len(t, frame.Writes, 8)
	require.NotEqual(t, styles.Entry.Render("redux@^4.0.5"), styles.Cursor.Render("redux@^4.0.5"))

	for i, dep := range entries {
		entry := styles.Entry
		if i == 1 {
			entry = styles.Cursor
		}
		expected := styles.Unselected.Render(GlyphUnselected) + " " +
			styles.Kind.Render(dep.Kind.Glyph()) + " " +
			entry.Render(dep.Token())
		assert.Equal(t, expected, frame.Writes[2*i].Text, dep.Name)
	}
}

func TestRender_IsPure(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	selected := []bool{true, false, false, false}

	first := Render(entries, selected, 3, Viewport{}, plainStyles())
	second := Render(entries, selected, 3, Viewport{}, plainStyles())

	assert.Equal(t, first, second)
	assert.Equal(t, []bool{true, false, false, false}, selected)
	assert.Equal(t, testEntries(), entries)
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	frame := Render(nil, nil, 1, Viewport{Width: 80, Height: 24}, plainStyles())

	assert.Empty(t, frame.Writes)
	assert.Equal(t, Position{Col: 1, Row: 1}, frame.Cursor)
	assert.Empty(t, frame.String())
}

func TestRender_WindowFollowsCursor(t *testing.T) {
	t.Parallel()

	entries := append(testEntries(), testEntries()[0])
	entries[4].Name = "zod"
	vp := Viewport{Height: 5}

	tests := []struct {
		cursor    int
		firstText string
		rows      int
	}{
		{cursor: 1, firstText: "typescript", rows: 2},
		{cursor: 2, firstText: "typescript", rows: 2},
		{cursor: 3, firstText: "eslint", rows: 2},
		{cursor: 4, firstText: "eslint", rows: 2},
		{cursor: 5, firstText: "zod", rows: 1},
	}

	for _, tc := range tests {
		frame := Render(entries, nil, tc.cursor, vp, plainStyles())
		require.Len(t, frame.Writes, 2*tc.rows)
		assert.Contains(t, frame.Writes[0].Text, tc.firstText, "cursor %d", tc.cursor)
		assert.Equal(t, 1, frame.Writes[0].Row)
		assert.Equal(t, 2*tc.rows+1, frame.Cursor.Row)
	}
}

func TestRender_TinyViewportStillShowsCursorRow(t *testing.T) {
	t.Parallel()

	frame := Render(testEntries(), nil, 3, Viewport{Height: 1}, plainStyles())

	require.Len(t, frame.Writes, 2)
	assert.Contains(t, frame.Writes[0].Text, "eslint")
}

func TestRender_TruncatesPathToWidth(t *testing.T) {
	t.Parallel()

	entries := testEntries()[:1]
	entries[0].Source = "/a/very/long/path/to/some/project/package.json"

	frame := Render(entries, nil, 1, Viewport{Width: 12}, plainStyles())
	require.Len(t, frame.Writes, 2)

	path := frame.Writes[1].Text
	assert.LessOrEqual(t, runewidth.StringWidth(path), 10)
	assert.True(t, strings.HasSuffix(path, "…"))
	assert.True(t, strings.HasPrefix(path, "/a/very"))

	// The entry line itself is never truncated.
	assert.Equal(t, "◯ S typescript@^3.8.3", frame.Writes[0].Text)
}

func TestRender_NilStyles(t *testing.T) {
	t.Parallel()

	frame := Render(testEntries()[:1], nil, 1, Viewport{}, nil)
	require.Len(t, frame.Writes, 2)
	assert.Contains(t, frame.Writes[0].Text, "typescript@^3.8.3")
}

func TestFrame_String(t *testing.T) {
	t.Parallel()

	frame := Frame{Writes: []Write{
		{Position: Position{Col: 3, Row: 3}, Text: "c"},
		{Position: Position{Col: 1, Row: 1}, Text: "a"},
		{Position: Position{Col: 4, Row: 1}, Text: "b"},
	}}

	assert.Equal(t, "a  b\n\n  c", frame.String())
}

func TestFrame_StringEndsOnParkedCursorRow(t *testing.T) {
	t.Parallel()

	frame := Render(testEntries()[:1], nil, 1, Viewport{}, plainStyles())
	require.Equal(t, Position{Col: 1, Row: 3}, frame.Cursor)

	assert.Equal(t, "◯ S typescript@^3.8.3\n  /work/app/package.json\n", frame.String())
	assert.Empty(t, Render(nil, nil, 1, Viewport{}, plainStyles()).String())
}
