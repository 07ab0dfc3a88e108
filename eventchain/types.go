package eventchain

import (
	"errors"
	"fmt"
	"time"
)

// Event is one step of a chain.
type Event interface {
	Name() string
	Execute(ec *Context) error
}

// EventFunc adapts a function to Event.
type EventFunc struct {
	EventName string
	Fn        func(ec *Context) error
}

// Name implements Event.
func (f EventFunc) Name() string { return f.EventName }

// Execute implements Event.
func (f EventFunc) Execute(ec *Context) error { return f.Fn(ec) }

// Next continues dispatch to the next middleware or, at the bottom, the event.
type Next func(ec *Context) error

// Middleware wraps the dispatch of every event in a chain.
type Middleware interface {
	Handle(ev Event, ec *Context, next Next) error
}

// MiddlewareFunc adapts a function to Middleware.
type MiddlewareFunc func(ev Event, ec *Context, next Next) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ev Event, ec *Context, next Next) error { return f(ev, ec, next) }

// FaultTolerance selects how a chain reacts to failing events.
type FaultTolerance int

const (
	// Strict stops at the first failure.
	Strict FaultTolerance = iota
	// Lenient records failures and continues.
	Lenient
	// BestEffort records failures, recovers panics, and continues.
	BestEffort
)

// String returns the mode name.
func (m FaultTolerance) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	case BestEffort:
		return "best-effort"
	default:
		return fmt.Sprintf("FaultTolerance(%d)", int(m))
	}
}

// Status summarises a chain execution.
type Status int

const (
	Completed Status = iota
	CompletedWithWarnings
	Failed
)

// String renders the status the way reports print it.
func (s Status) String() string {
	switch s {
	case Completed:
		return "COMPLETED"
	case CompletedWithWarnings:
		return "COMPLETED_WITH_WARNINGS"
	case Failed:
		return "FAILED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// EventFailure records one failed event.
type EventFailure struct {
	EventName string
	Err       error
	Timestamp time.Time
}

// Error implements error.
func (f EventFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.EventName, f.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (f EventFailure) Unwrap() error { return f.Err }

// ChainResult is the outcome of Chain.Execute.
type ChainResult struct {
	// Success is false only for Status == Failed.
	Success  bool
	Failures []EventFailure
	Status   Status
}

// Err joins all failures into one error, or returns nil.
func (r ChainResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}

	return errors.Join(errs...)
}
