package eventchain

import "errors"

// Sentinel errors for chain execution and context access.
var (
	// ErrMissingKey indicates that a required context key is absent.
	ErrMissingKey = errors.New("eventchain: missing context key")

	// ErrTypeMismatch indicates that a context value has an unexpected type.
	ErrTypeMismatch = errors.New("eventchain: context value has wrong type")

	// ErrPanic wraps a panic recovered in BestEffort mode.
	ErrPanic = errors.New("eventchain: event panicked")

	// ErrCancelled is recorded when the execution context is done before an event runs.
	ErrCancelled = errors.New("eventchain: execution cancelled")
)
