package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mrz1836/tows/internal/domain"
)

// Picker is the Bubble Tea model for the dependency picker.
// It owns the cursor and the selection flags; entries are never mutated.
type Picker struct {
	entries  []domain.Dependency
	selected []bool
	// cursor is 1-indexed and stays within [1, len(entries)].
	cursor   int
	keys     KeyMap
	styles   *PickerStyles
	viewport Viewport
	done     bool
	logger   zerolog.Logger
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithStyles sets the styles used to render the picker.
func WithStyles(styles *PickerStyles) PickerOption {
	return func(p *Picker) {
		p.styles = styles
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) PickerOption {
	return func(p *Picker) {
		p.keys = keys
	}
}

// WithLogger sets the logger that receives picker transitions at trace level.
func WithLogger(logger zerolog.Logger) PickerOption {
	return func(p *Picker) {
		p.logger = logger
	}
}

// NewPicker creates a picker over entries with the cursor on the first row
// and nothing selected.
func NewPicker(entries []domain.Dependency, opts ...PickerOption) *Picker {
	p := &Picker{
		entries:  entries,
		selected: make([]bool, len(entries)),
		cursor:   1,
		keys:     DefaultKeyMap(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.styles == nil {
		p.styles = NewPickerStyles(nil)
	}
	return p
}

// Apply performs one state transition and reports whether the picker is done.
// Confirm and Quit both end the picker and keep the selection.
func (p *Picker) Apply(cmd Command) bool {
	if p.done {
		return true
	}

	switch cmd {
	case CommandMoveUp:
		p.cursor = max(1, p.cursor-1)
	case CommandMoveDown:
		p.cursor = max(1, min(len(p.entries), p.cursor+1))
	case CommandToggle:
		if i := p.cursor - 1; i >= 0 && i < len(p.selected) {
			p.selected[i] = !p.selected[i]
		}
	case CommandConfirm, CommandQuit:
		p.done = true
	case CommandNone:
	}

	p.logger.Trace().
		Stringer("command", cmd).
		Int("cursor", p.cursor).
		Bool("done", p.done).
		Msg("picker transition")

	return p.done
}

// Selected returns the selected entries in display order.
func (p *Picker) Selected() []domain.Dependency {
	return Selected(p.entries, p.selected)
}

// IsDone returns true once Confirm or Quit has been applied.
func (p *Picker) IsDone() bool {
	return p.done
}

// Frame renders the current state.
func (p *Picker) Frame() Frame {
	return Render(p.entries, p.selected, p.cursor, p.viewport, p.styles)
}

// Init returns the initial command to run when the program starts.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.Apply(p.keys.Command(msg)) {
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		p.viewport = Viewport{Width: msg.Width, Height: msg.Height}
	}

	return p, nil
}

// View renders the picker. It is empty once the picker is done so the
// alternate screen is left blank.
func (p *Picker) View() string {
	if p.done {
		return ""
	}
	return p.Frame().String()
}
