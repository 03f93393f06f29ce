package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemanticColors(t *testing.T) {
	assert.Equal(t, "#0087AF", ColorPrimary.Light)
	assert.Equal(t, "#00D7FF", ColorPrimary.Dark)
	assert.Equal(t, "#008700", ColorSuccess.Light)
	assert.Equal(t, "#00FF87", ColorSuccess.Dark)
	assert.Equal(t, "#AF0000", ColorError.Light)
	assert.Equal(t, "#585858", ColorMuted.Light)
}

func TestHasColorSupport(t *testing.T) {
	tests := []struct {
		name     string
		noColor  *string
		term     string
		expected bool
	}{
		{name: "plain terminal", term: "xterm-256color", expected: true},
		{name: "NO_COLOR set", noColor: new(string), term: "xterm-256color", expected: false},
		{name: "dumb terminal", term: "dumb", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TERM", tc.term)
			t.Setenv("NO_COLOR", "")
			if tc.noColor == nil {
				unsetEnv(t, "NO_COLOR")
			}
			assert.Equal(t, tc.expected, HasColorSupport())
		})
	}
}

func TestNewRenderer_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	styles := NewPickerStyles(NewRenderer(&bytes.Buffer{}))

	assert.Equal(t, GlyphSelected, styles.Selected.Render(GlyphSelected))
	assert.Equal(t, "name@1.0.0", styles.Cursor.Render("name@1.0.0"))
}

func TestNewPickerStyles_Defaults(t *testing.T) {
	t.Parallel()

	styles := NewPickerStyles(nil)

	assert.True(t, styles.Cursor.GetUnderline())
	assert.False(t, styles.Entry.GetUnderline())
	assert.True(t, styles.Kind.GetBold())
}
