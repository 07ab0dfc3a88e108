package bench

import (
	"runtime"
	"time"

	"github.com/golang/glog"
)

// Func is one call of the code under test; it reports success.
type Func func() bool

// Observer is told about progress: run is 0 before the first measured run
// and 1..runs after each one. It is always called outside the timed window.
type Observer func(label string, run, runs int)

// Measure runs fn according to m and returns its statistics.
func Measure(label string, m Methodology, fn Func, obs Observer) (Metrics, error) {
	if err := m.Validate(); err != nil {
		return Metrics{}, err
	}
	notify := func(run int) {
		if obs != nil {
			obs(label, run, m.Runs)
		}
	}

	for i := 0; i < m.Warmup; i++ {
		fn()
	}

	samples := make([]time.Duration, 0, m.Runs)
	successes := 0
	var before, after, runStart runtime.MemStats
	var peak uint64

	notify(0)
	if m.CollectMemory {
		runtime.ReadMemStats(&before)
	}
	for i := 0; i < m.Runs; i++ {
		if m.CollectMemory {
			runtime.ReadMemStats(&runStart)
		}

		start := time.Now()
		ok := fn()
		d := time.Since(start)

		if m.CollectMemory {
			runtime.ReadMemStats(&after)
			if v := after.TotalAlloc - runStart.TotalAlloc; v > peak {
				peak = v
			}
		}
		samples = append(samples, d)
		if ok {
			successes++
		}
		notify(i + 1)
	}

	var mem MemoryStats
	if m.CollectMemory {
		mem = MemoryStats{
			TotalAllocated:    after.TotalAlloc - before.TotalAlloc,
			PeakMemory:        peak,
			AllocationCount:   after.Mallocs - before.Mallocs,
			DeallocationCount: after.Frees - before.Frees,
		}
		if after.HeapAlloc > before.HeapAlloc {
			mem.NetAllocated = after.HeapAlloc - before.HeapAlloc
		}
	}

	out := FromSamples(samples, mem, successes, m.TrimFraction)
	if glog.V(1) {
		glog.Infof("%s: runs=%d mean=%v median=%v p95=%v cov=%.1f%% peak=%dB",
			label, out.Runs, out.Mean, out.Median, out.P95, out.CoV(), out.Memory.PeakMemory)
	}

	return out, nil
}
