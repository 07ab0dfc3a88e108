package eventchain

import (
	"context"
	"fmt"
	"time"
)

// Option configures a Chain.
type Option func(*Chain)

// WithFaultTolerance sets the failure mode (default Strict).
func WithFaultTolerance(mode FaultTolerance) Option {
	if mode < Strict || mode > BestEffort {
		panic(fmt.Sprintf("eventchain: WithFaultTolerance(%d)", int(mode)))
	}

	return func(c *Chain) {
		c.mode = mode
	}
}

// Chain is an ordered list of events plus the middleware wrapped around each.
// Build it once and execute it many times.
type Chain struct {
	events      []Event
	middlewares []Middleware
	mode        FaultTolerance
}

// NewChain returns an empty Strict chain.
func NewChain(opts ...Option) *Chain {
	c := &Chain{mode: Strict}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AddEvent appends ev.
func (c *Chain) AddEvent(ev Event) *Chain {
	c.events = append(c.events, ev)
	return c
}

// Use registers mw. The last registered middleware runs outermost.
func (c *Chain) Use(mw Middleware) *Chain {
	c.middlewares = append(c.middlewares, mw)
	return c
}

// Mode returns the configured fault tolerance.
func (c *Chain) Mode() FaultTolerance { return c.mode }

// Len returns the number of events.
func (c *Chain) Len() int { return len(c.events) }

// Execute runs the chain against ec.
func (c *Chain) Execute(ec *Context) ChainResult {
	return c.ExecuteContext(context.Background(), ec)
}

// ExecuteContext runs the chain, checking ctx before each event.
// Cancellation is recorded as a failure of the event that did not run and
// always stops the chain with status FAILED.
func (c *Chain) ExecuteContext(ctx context.Context, ec *Context) ChainResult {
	var failures []EventFailure

	for _, ev := range c.events {
		if err := ctx.Err(); err != nil {
			failures = append(failures, EventFailure{
				EventName: ev.Name(),
				Err:       fmt.Errorf("%w: %w", ErrCancelled, err),
				Timestamp: time.Now(),
			})
			return ChainResult{Failures: failures, Status: Failed}
		}

		err := c.dispatch(ev, ec)
		if err == nil {
			continue
		}
		failures = append(failures, EventFailure{EventName: ev.Name(), Err: err, Timestamp: time.Now()})
		if c.mode == Strict {
			return ChainResult{Failures: failures, Status: Failed}
		}
	}

	if len(failures) == 0 {
		return ChainResult{Success: true, Status: Completed}
	}

	return ChainResult{Success: true, Failures: failures, Status: CompletedWithWarnings}
}

// dispatch runs ev through the middleware stack.
func (c *Chain) dispatch(ev Event, ec *Context) (err error) {
	if c.mode == BestEffort {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
	}
	if len(c.middlewares) == 0 {
		return ev.Execute(ec)
	}

	return c.invoke(0, ev, ec)
}

// invoke calls the depth-th middleware counting from the outermost.
func (c *Chain) invoke(depth int, ev Event, ec *Context) error {
	if depth == len(c.middlewares) {
		return ev.Execute(ec)
	}
	mw := c.middlewares[len(c.middlewares)-1-depth]

	return mw.Handle(ev, ec, func(next *Context) error {
		return c.invoke(depth+1, ev, next)
	})
}
