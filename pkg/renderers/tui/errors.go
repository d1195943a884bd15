package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoForm is returned when the walker is run against a session with
	// no schema loaded.
	ErrNoForm = errors.New("tui: no form loaded")
)
