package service

import "errors"

// Error taxonomy surfaced by the engine. Authorization failures are booleans,
// never errors.
var (
	// ErrNotFound: a referenced record does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState: the requested transition is illegal from the current status.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidInput: malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict: the candidate booking overlaps an existing one.
	ErrConflict = errors.New("conflict")
)
