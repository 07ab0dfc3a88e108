// Package middleware provides the eventchain.Middleware implementations the
// benchmark composes into chains:
//
//   - Logging:     "▶ X starting" / "✓ X completed" / "✗ X failed: err" via glog.
//   - Timing:      stores "<event>_duration_ns" (uint64) in the context.
//   - Performance: counts dispatched events.
//   - NoOp:        bumps "noop_middleware_<id>_called" and calls next; the
//     unit of cost for middleware-scaling measurements.
//   - Counting:    counts calls without touching the context.
//   - Recovery:    turns panics into errors wrapping ErrRecovered.
//
// Counters are atomic so a middleware value may be shared between chains.
package middleware
