// Package eventchain implements the EventChains pattern: a computation split
// into discrete events that talk to each other only through a shared,
// dynamically typed Context.
//
// A Chain runs its events in insertion order. Every event is dispatched
// through the registered middleware, last registered outermost:
//
//	chain := eventchain.NewChain().
//		AddEvent(stepA).
//		AddEvent(stepB).
//		Use(inner).
//		Use(outer) // outer → inner → step
//
// Failure handling is selected with WithFaultTolerance:
//
//   - Strict:     stop at the first failure; status FAILED.
//   - Lenient:    record the failure and keep going; COMPLETED_WITH_WARNINGS.
//   - BestEffort: like Lenient, and panics inside events or middleware are
//     recovered and recorded as failures wrapping ErrPanic.
//
// Context values are stored as `any`; the generic helpers Value, TakeValue
// and MustValue perform the checked type assertion and report ErrMissingKey
// or ErrTypeMismatch. Neither Context nor Chain execution is safe for
// concurrent use.
package eventchain
