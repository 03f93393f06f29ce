// Package errors provides centralized error handling for tows.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidWorkDir indicates that the --cwd override does not name an
	// existing directory.
	ErrInvalidWorkDir = errors.New("invalid working directory")

	// ErrManifestParse indicates that a discovered manifest is not a well-formed
	// document. The run aborts because the project itself is broken.
	ErrManifestParse = errors.New("manifest is not well-formed")

	// ErrManifestRead indicates that a manifest exists but could not be read.
	ErrManifestRead = errors.New("manifest could not be read")

	// ErrNoManifestFound indicates that no manifest was found anywhere in the
	// ancestor chain of the start directory. This is reported as a warning,
	// not as a failure of the collection itself.
	ErrNoManifestFound = errors.New("no manifest found")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidManifest indicates an invalid manifest configuration value.
	ErrConfigInvalidManifest = errors.New("invalid manifest configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInteractiveRequired indicates that the picker needs a terminal but
	// neither stdin nor the controlling terminal is available.
	ErrInteractiveRequired = errors.New("interactive terminal required")

	// ErrTerminal indicates that the terminal could not be driven, for example
	// because a write to the render surface failed.
	ErrTerminal = errors.New("terminal failure")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
