package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/mrz1836/tows/internal/domain"
	"github.com/mrz1836/tows/internal/errors"
)

// ttyPath is the controlling terminal used when stdin is redirected.
const ttyPath = "/dev/tty"

// RunPicker runs the interactive picker over entries and returns the
// selected entries in display order.
//
// The picker is drawn on the alternate screen of stderr so that stdout stays
// free for the result. When stdin is not a terminal, keys are read from the
// controlling terminal instead. The terminal is restored on every exit path.
func RunPicker(ctx context.Context, entries []domain.Dependency) ([]domain.Dependency, error) {
	logger := zerolog.Ctx(ctx)

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil, errors.Wrap(errors.ErrInteractiveRequired, "stderr is not a terminal")
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		tty, err := os.Open(ttyPath)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInteractiveRequired, "stdin is not a terminal and %s is unavailable", ttyPath)
		}
		defer func() { _ = tty.Close() }()
		opts = append(opts, tea.WithInput(tty))
	}

	picker := NewPicker(entries,
		WithStyles(NewPickerStyles(NewRenderer(os.Stderr))),
		WithLogger(*logger),
	)

	logger.Debug().Int("entries", len(entries)).Msg("starting picker")

	final, err := tea.NewProgram(picker, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrapf(errors.ErrTerminal, "%v", err)
	}

	selected, err := result(final)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("selected", len(selected)).Msg("picker finished")

	return selected, nil
}

// result returns the selection of the model a program ended with. A picker
// that was never confirmed or quit did not finish and yields ErrTerminal.
func result(final tea.Model) ([]domain.Dependency, error) {
	p, ok := final.(*Picker)
	if !ok || !p.IsDone() {
		return nil, errors.Wrap(errors.ErrTerminal, "picker closed before it was finished")
	}
	return p.Selected(), nil
}
