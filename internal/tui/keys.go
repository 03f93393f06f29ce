package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is a discrete picker input.
type Command int

// Picker commands. CommandNone covers every key without a binding.
const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandToggle
	CommandConfirm
	CommandQuit
)

// String returns the command name used in debug logs.
func (c Command) String() string {
	switch c {
	case CommandMoveUp:
		return "move_up"
	case CommandMoveDown:
		return "move_down"
	case CommandToggle:
		return "toggle"
	case CommandConfirm:
		return "confirm"
	case CommandQuit:
		return "quit"
	case CommandNone:
		return "none"
	}
	return "unknown"
}

// KeyMap binds terminal keys to picker commands.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the picker key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "select"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Command maps a key press to a picker command.
func (k KeyMap) Command(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Up):
		return CommandMoveUp
	case key.Matches(msg, k.Down):
		return CommandMoveDown
	case key.Matches(msg, k.Toggle):
		return CommandToggle
	case key.Matches(msg, k.Confirm):
		return CommandConfirm
	case key.Matches(msg, k.Quit):
		return CommandQuit
	default:
		return CommandNone
	}
}
