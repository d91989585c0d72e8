package domain

import "errors"

// Sentinel errors surfaced to API callers. Validation failures are detected
// before any work starts, so neither implies partial progress.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInactive indicates an operation targeted an inactive store or alert.
	ErrInactive = errors.New("inactive")
)
