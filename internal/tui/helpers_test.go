package tui

import (
	"io"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tows/internal/domain"
)

// plainStyles returns picker styles that render without escape sequences.
func plainStyles() *PickerStyles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPickerStyles(r)
}

func testEntries() []domain.Dependency {
	return []domain.Dependency{
		{Kind: domain.KindRuntime, Name: "typescript", Version: "^3.8.3", Source: "/work/app/package.json"},
		{Kind: domain.KindRuntime, Name: "redux", Version: "^4.0.5", Source: "/work/package.json"},
		{Kind: domain.KindDevelopment, Name: "eslint", Version: "^6.8.0", Source: "/work/app/package.json"},
		{Kind: domain.KindPeer, Name: "react", Version: "^16.13.0", Source: "/work/package.json"},
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, prev)
		}
	})
}
