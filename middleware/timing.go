package middleware

import (
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/eventchains/eventchain"
)

// DurationSuffix is appended to an event name to form its timing key.
const DurationSuffix = "_duration_ns"

// DurationKey returns the context key Timing writes for event name.
func DurationKey(name string) string { return name + DurationSuffix }

// Timing measures the rest of the dispatch stack and stores the elapsed
// nanoseconds under DurationKey(event) as uint64, also on failure.
type Timing struct {
	LogTiming bool
}

// NewTiming returns a Timing middleware.
func NewTiming(logTiming bool) *Timing {
	return &Timing{LogTiming: logTiming}
}

// Handle implements eventchain.Middleware.
func (t *Timing) Handle(ev eventchain.Event, ec *eventchain.Context, next eventchain.Next) error {
	start := time.Now()
	err := next(ec)
	d := time.Since(start)

	if t.LogTiming {
		glog.Infof("⏱ %s took %dμs", ev.Name(), d.Microseconds())
	}
	ec.Set(DurationKey(ev.Name()), uint64(d.Nanoseconds()))

	return err
}
