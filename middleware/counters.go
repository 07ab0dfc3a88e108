package middleware

import (
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/eventchains/eventchain"
)

// Performance counts every event dispatched through it.
type Performance struct {
	events atomic.Uint64
}

// NewPerformance returns a zeroed Performance middleware.
func NewPerformance() *Performance { return &Performance{} }

// Handle implements eventchain.Middleware.
func (p *Performance) Handle(_ eventchain.Event, ec *eventchain.Context, next eventchain.Next) error {
	p.events.Add(1)
	return next(ec)
}

// EventCount returns the number of dispatched events so far.
func (p *Performance) EventCount() uint64 { return p.events.Load() }

// Counting counts calls. Unlike NoOp it never touches the context.
type Counting struct {
	calls atomic.Uint64
}

// NewCounting returns a zeroed Counting middleware.
func NewCounting() *Counting { return &Counting{} }

// Handle implements eventchain.Middleware.
func (c *Counting) Handle(_ eventchain.Event, ec *eventchain.Context, next eventchain.Next) error {
	c.calls.Add(1)
	return next(ec)
}

// Count returns the number of calls so far.
func (c *Counting) Count() uint64 { return c.calls.Load() }

// NoOp does the minimum a real middleware does: one context read, one
// context write, one call to next.
type NoOp struct {
	id  int
	key string
}

// NewNoOp returns the NoOp middleware with the given id.
func NewNoOp(id int) *NoOp {
	return &NoOp{id: id, key: NoOpKey(id)}
}

// NoOpKey returns the context key NoOp(id) increments.
func NoOpKey(id int) string {
	return "noop_middleware_" + strconv.Itoa(id) + "_called"
}

// ID returns the middleware id.
func (n *NoOp) ID() int { return n.id }

// Handle implements eventchain.Middleware.
func (n *NoOp) Handle(_ eventchain.Event, ec *eventchain.Context, next eventchain.Next) error {
	count, _ := eventchain.Value[uint32](ec, n.key) // absent → 0
	ec.Set(n.key, count+1)

	return next(ec)
}
