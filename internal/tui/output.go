package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrz1836/tows/internal/errors"
)

// Output provides methods for structured output to a terminal.
type Output interface {
	// Error prints an error message with its suggested action, if any.
	Error(err error)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
}

// NewOutput returns the Output for format ("text" or "json").
func NewOutput(w io.Writer, format string) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}

// TTYOutput provides styled output for terminal displays.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a new TTYOutput.
// Respects NO_COLOR environment variable.
func NewTTYOutput(w io.Writer) *TTYOutput {
	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(NewRenderer(w)),
	}
}

// Error prints err followed by a dim "Try:" hint when a suggested action exists.
func (o *TTYOutput) Error(err error) {
	_, action := errors.Actionable(err)
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
	if action != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+action))
	}
}

// JSON outputs a value as formatted JSON.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// JSONOutput provides plain JSON output without styling.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

// jsonError is the structured format for Error messages.
type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error outputs an error as JSON.
// Format: {"type": "error", "message": "...", "details": "...", "suggestion": "..."}
func (o *JSONOutput) Error(err error) {
	msg, action := errors.Actionable(err)
	jsonErr := jsonError{
		Type:       "error",
		Message:    msg,
		Suggestion: action,
	}
	if details := err.Error(); details != msg {
		jsonErr.Details = details
	}
	_ = encodeJSON(o.w, jsonErr)
}

// JSON outputs a value as formatted JSON.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
