package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_Command(t *testing.T) {
	t.Parallel()

	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, CommandMoveUp},
		{"k", runeKey('k'), CommandMoveUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, CommandMoveDown},
		{"j", runeKey('j'), CommandMoveDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, CommandToggle},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, CommandConfirm},
		{"q", runeKey('q'), CommandQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CommandQuit},
		{"unbound rune", runeKey('x'), CommandNone},
		{"upper case K", runeKey('K'), CommandNone},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, CommandNone},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, keys.Command(tc.msg))
		})
	}
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "move_up", CommandMoveUp.String())
	assert.Equal(t, "move_down", CommandMoveDown.String())
	assert.Equal(t, "toggle", CommandToggle.String())
	assert.Equal(t, "confirm", CommandConfirm.String())
	assert.Equal(t, "quit", CommandQuit.String())
	assert.Equal(t, "none", CommandNone.String())
	assert.Equal(t, "unknown", Command(42).String())
}
