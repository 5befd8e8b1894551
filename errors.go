package binner

import "errors"

// Invocation errors. All errors in this tool are fatal: binner is a
// single-shot batch command, nothing is retried.
var (
	// ErrConfiguration is returned when neither an algorithm nor custom
	// bin edges were supplied.
	ErrConfiguration = errors.New("binner: either an algorithm or custom bin edges must be provided")

	// ErrColumnRequired is returned when no column was named outside of
	// column-listing mode.
	ErrColumnRequired = errors.New("binner: column name is required when not listing columns")

	// ErrInsufficientData is returned when a column yields zero numeric
	// observations after filtering.
	ErrInsufficientData = errors.New("binner: no numeric values found")
)
