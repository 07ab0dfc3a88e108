package bench

import (
	"errors"
	"fmt"
)

// ErrBadMethodology indicates an unusable Methodology.
var ErrBadMethodology = errors.New("bench: invalid methodology")

// Methodology fixes how a single measurement is taken.
type Methodology struct {
	// Warmup is the number of unmeasured calls before timing starts.
	Warmup int `yaml:"warmup" json:"warmup"`
	// Runs is the number of measured calls.
	Runs int `yaml:"runs" json:"runs"`
	// TrimFraction in [0, 0.5) is dropped from each end of the sorted samples.
	TrimFraction float64 `yaml:"trim_fraction" json:"trim_fraction"`
	// CollectMemory enables per-run allocator sampling.
	CollectMemory bool `yaml:"collect_memory" json:"collect_memory"`
}

// DefaultWarmup matches the single warm-up call used throughout the suite.
const DefaultWarmup = 1

// DefaultMethodology returns runs measured calls with one warm-up call,
// no trimming and memory sampling on.
func DefaultMethodology(runs int) Methodology {
	return Methodology{Warmup: DefaultWarmup, Runs: runs, CollectMemory: true}
}

// Validate reports the first problem with m.
func (m Methodology) Validate() error {
	switch {
	case m.Runs < 1:
		return fmt.Errorf("%w: runs=%d < 1", ErrBadMethodology, m.Runs)
	case m.Warmup < 0:
		return fmt.Errorf("%w: warmup=%d < 0", ErrBadMethodology, m.Warmup)
	case m.TrimFraction < 0 || m.TrimFraction >= 0.5:
		return fmt.Errorf("%w: trim_fraction=%g not in [0, 0.5)", ErrBadMethodology, m.TrimFraction)
	}

	return nil
}
