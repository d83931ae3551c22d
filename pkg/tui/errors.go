package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrCancelled is returned when the operator cancels the dialog.
	ErrCancelled = errors.New("tui: dialog cancelled")
)
