package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrInvalidWorkDir,
		info: ErrorInfo{
			Message: "The --cwd value is not an existing directory.",
			Action:  "Pass a directory that exists, or omit --cwd to use the current directory.",
		},
	},
	{
		err: ErrManifestParse,
		info: ErrorInfo{
			Message: "A manifest in the ancestor chain is not well-formed.",
			Action:  "Fix the syntax of the manifest named in the error and retry.",
		},
	},
	{
		err: ErrManifestRead,
		info: ErrorInfo{
			Message: "A manifest in the ancestor chain could not be read.",
			Action:  "Check the file permissions of the manifest named in the error.",
		},
	},
	{
		err: ErrNoManifestFound,
		info: ErrorInfo{
			Message: "No manifest was found in the directory or any of its parents.",
			Action:  "Run tows inside a project, or point --cwd or --filename at one.",
		},
	},
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is missing.",
		},
	},
	{
		err: ErrConfigInvalidManifest,
		info: ErrorInfo{
			Message: "The manifest configuration is invalid.",
			Action:  "Set manifest.filename to a bare file name such as package.json.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Unknown output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInteractiveRequired,
		info: ErrorInfo{
			Message: "The picker needs an interactive terminal.",
			Action:  "Run tows from a terminal, or use 'tows list' for non-interactive output.",
		},
	},
	{
		err: ErrTerminal,
		info: ErrorInfo{
			Message: "The terminal could not be driven.",
		},
	},
}

// getErrorInfo looks up the ErrorInfo for a given error, following wrapped
// chains with errors.Is(). Returns an ErrorInfo with the original error
// message if not found.
func getErrorInfo(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
