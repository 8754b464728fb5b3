package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrInvariant indicates the buffer and cursor disagree. It always
	// signals a bug, never a user error.
	ErrInvariant = errors.New("engine invariant violated")
)
