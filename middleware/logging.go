package middleware

import (
	"github.com/golang/glog"

	"github.com/katalvlaran/eventchains/eventchain"
)

// Logging reports the start and outcome of every event when Verbose is set.
// A quiet Logging still sits in the dispatch path and costs a call.
type Logging struct {
	Verbose bool
	// Printf receives the lines; nil means glog.Infof.
	Printf func(format string, args ...any)
}

// NewLogging returns a Logging middleware writing to glog.
func NewLogging(verbose bool) *Logging {
	return &Logging{Verbose: verbose}
}

// Handle implements eventchain.Middleware.
func (l *Logging) Handle(ev eventchain.Event, ec *eventchain.Context, next eventchain.Next) error {
	if !l.Verbose {
		return next(ec)
	}
	printf := l.Printf
	if printf == nil {
		printf = glog.Infof
	}

	printf("▶ %s starting", ev.Name())
	err := next(ec)
	if err != nil {
		printf("✗ %s failed: %v", ev.Name(), err)
	} else {
		printf("✓ %s completed", ev.Name())
	}

	return err
}
