package bench

import (
	"math"
	"slices"
	"time"
)

// MemoryStats are allocator counters over one measurement.
type MemoryStats struct {
	// TotalAllocated is the number of bytes allocated during measured runs.
	TotalAllocated uint64 `yaml:"total_allocated" json:"total_allocated"`
	// NetAllocated is the live-heap growth across the measured loop, clamped at 0.
	NetAllocated uint64 `yaml:"net_allocated" json:"net_allocated"`
	// PeakMemory is the largest number of bytes a single run allocated.
	PeakMemory        uint64 `yaml:"peak_memory" json:"peak_memory"`
	AllocationCount   uint64 `yaml:"allocation_count" json:"allocation_count"`
	DeallocationCount uint64 `yaml:"deallocation_count" json:"deallocation_count"`
}

// CacheStats approximates cache behaviour from the spread of run times.
type CacheStats struct {
	AvgAccessNanos float64 `yaml:"avg_access_ns" json:"avg_access_ns"`
	VarianceNanos  float64 `yaml:"variance_ns" json:"variance_ns"`
	Min            uint64  `yaml:"min_ns" json:"min_ns"`
	Max            uint64  `yaml:"max_ns" json:"max_ns"`
	P50            uint64  `yaml:"p50_ns" json:"p50_ns"`
	P95            uint64  `yaml:"p95_ns" json:"p95_ns"`
	P99            uint64  `yaml:"p99_ns" json:"p99_ns"`
}

// Metrics summarises one measured function.
type Metrics struct {
	Mean        time.Duration `yaml:"mean" json:"mean"`
	Median      time.Duration `yaml:"median" json:"median"`
	Min         time.Duration `yaml:"min" json:"min"`
	Max         time.Duration `yaml:"max" json:"max"`
	StdDevNanos float64       `yaml:"std_dev_ns" json:"std_dev_ns"`
	P95         time.Duration `yaml:"p95" json:"p95"`
	P99         time.Duration `yaml:"p99" json:"p99"`

	Memory MemoryStats `yaml:"memory" json:"memory"`
	Cache  CacheStats  `yaml:"cache" json:"cache"`

	// Runs is the number of measured calls; Kept is how many survived trimming.
	Runs int `yaml:"runs" json:"runs"`
	Kept int `yaml:"kept" json:"kept"`
	// SuccessRate is the percentage of runs that reported success.
	SuccessRate float64 `yaml:"success_rate" json:"success_rate"`

	// Samples holds every measured duration in run order.
	Samples []time.Duration `yaml:"-" json:"samples,omitempty"`
}

// percentileIndex returns floor(n·p) clamped to the last index.
func percentileIndex(n int, p float64) int {
	i := int(float64(n) * p)
	if i >= n {
		i = n - 1
	}
	return i
}

// trim drops floor(n·frac) samples from each end of a sorted slice,
// always keeping at least one.
func trim(sorted []time.Duration, frac float64) []time.Duration {
	k := int(float64(len(sorted)) * frac)
	if 2*k >= len(sorted) {
		k = (len(sorted) - 1) / 2
	}
	return sorted[k : len(sorted)-k]
}

// NewCacheStats derives CacheStats from per-run nanoseconds.
// The input slice is sorted in place.
func NewCacheStats(nanos []uint64) CacheStats {
	n := len(nanos)
	if n == 0 {
		return CacheStats{}
	}
	slices.Sort(nanos)

	var sum float64
	for _, v := range nanos {
		sum += float64(v)
	}
	avg := sum / float64(n)
	var sq float64
	for _, v := range nanos {
		d := float64(v) - avg
		sq += d * d
	}

	return CacheStats{
		AvgAccessNanos: avg,
		VarianceNanos:  sq / float64(n),
		Min:            nanos[0],
		Max:            nanos[n-1],
		P50:            nanos[n/2],
		P95:            nanos[percentileIndex(n, 0.95)],
		P99:            nanos[percentileIndex(n, 0.99)],
	}
}

// FromSamples computes Metrics from raw samples. samples is not modified.
// An empty sample set yields zero Metrics.
func FromSamples(samples []time.Duration, mem MemoryStats, successes int, trimFraction float64) Metrics {
	runs := len(samples)
	if runs == 0 {
		return Metrics{Memory: mem}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	kept := trim(sorted, trimFraction)
	n := len(kept)

	var sum float64
	for _, d := range kept {
		sum += float64(d)
	}
	mean := sum / float64(n)
	var sq float64
	for _, d := range kept {
		diff := float64(d) - mean
		sq += diff * diff
	}

	median := kept[n/2]
	if n%2 == 0 {
		median = (kept[n/2-1] + kept[n/2]) / 2
	}

	nanos := make([]uint64, n)
	for i, d := range kept {
		nanos[i] = uint64(d)
	}

	return Metrics{
		Mean:        time.Duration(mean),
		Median:      median,
		Min:         kept[0],
		Max:         kept[n-1],
		StdDevNanos: math.Sqrt(sq / float64(n)),
		P95:         kept[percentileIndex(n, 0.95)],
		P99:         kept[percentileIndex(n, 0.99)],
		Memory:      mem,
		Cache:       NewCacheStats(nanos),
		Runs:        runs,
		Kept:        n,
		SuccessRate: float64(successes) / float64(runs) * 100,
		Samples:     slices.Clone(samples),
	}
}

// MeanMicros returns the mean in microseconds.
func (m Metrics) MeanMicros() float64 {
	return float64(m.Mean) / float64(time.Microsecond)
}

// OverheadVs returns the mean-time overhead against base in percent.
// A zero baseline yields 0.
func (m Metrics) OverheadVs(base Metrics) float64 {
	if base.Mean == 0 {
		return 0
	}
	return (float64(m.Mean) - float64(base.Mean)) / float64(base.Mean) * 100
}

// MemoryOverheadVs compares PeakMemory against base in percent.
// A zero baseline yields 0.
func (m Metrics) MemoryOverheadVs(base Metrics) float64 {
	if base.Memory.PeakMemory == 0 {
		return 0
	}
	b := float64(base.Memory.PeakMemory)
	return (float64(m.Memory.PeakMemory) - b) / b * 100
}

// CoV is the coefficient of variation in percent.
func (m Metrics) CoV() float64 {
	if m.Mean == 0 {
		return 0
	}
	return m.StdDevNanos / float64(m.Mean) * 100
}
