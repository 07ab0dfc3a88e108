package history

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/eventchains/bench"
)

// Drift compares one series with its most recent earlier measurement.
type Drift struct {
	Case        string        `yaml:"case" json:"case"`
	Series      string        `yaml:"series" json:"series"`
	PreviousRun string        `yaml:"previous_run" json:"previous_run"`
	Previous    time.Duration `yaml:"previous" json:"previous"`
	Current     time.Duration `yaml:"current" json:"current"`
	// DeltaPct is (current-previous)/previous in percent; 0 when previous is 0.
	DeltaPct float64 `yaml:"delta_pct" json:"delta_pct"`
}

// Drift looks up the previous measurement of every series in current and
// returns the mean-time deltas. Series never seen before are skipped.
func (s *Store) Drift(ctx context.Context, runID string, current []Measurement) ([]Drift, error) {
	var out []Drift
	for _, m := range current {
		prev, prevRun, ok, err := s.Previous(ctx, runID, m.Case, m.Series)
		if err != nil {
			return out, err
		}
		if !ok {
			continue
		}
		d := Drift{
			Case:        m.Case,
			Series:      m.Series,
			PreviousRun: prevRun,
			Previous:    prev.Mean,
			Current:     m.Mean,
		}
		if prev.Mean != 0 {
			d.DeltaPct = float64(m.Mean-prev.Mean) / float64(prev.Mean) * 100
		}
		out = append(out, d)
	}

	return out, nil
}

func measurement(caseName, series string, m bench.Metrics) Measurement {
	return Measurement{
		Case:       caseName,
		Series:     series,
		Mean:       m.Mean,
		Median:     m.Median,
		P95:        m.P95,
		PeakMemory: m.Memory.PeakMemory,
		Runs:       m.Runs,
	}
}

// Flatten turns one case's results into stored series named
// "tierN/baseline", "tierN/eventchains", "tier3/<count>" and "compare/<variant>".
func Flatten(r bench.CaseResult) []Measurement {
	name := r.Case.Name()
	out := []Measurement{
		measurement(name, "tier1/baseline", r.Tiers.Tier1.Baseline),
		measurement(name, "tier1/eventchains", r.Tiers.Tier1.Tested),
		measurement(name, "tier2/baseline", r.Tiers.Tier2.Baseline),
		measurement(name, "tier2/eventchains", r.Tiers.Tier2.Tested),
	}
	for _, sc := range r.Tiers.Tier3 {
		out = append(out, measurement(name, fmt.Sprintf("tier3/%d", sc.Middleware), sc.Metrics))
	}
	out = append(out,
		measurement(name, "tier4/baseline", r.Tiers.Tier4.Baseline),
		measurement(name, "tier4/eventchains", r.Tiers.Tier4.Tested),
	)
	if c := r.Comparison; c != nil {
		out = append(out,
			measurement(name, "compare/traditional", c.Traditional),
			measurement(name, "compare/bare", c.Bare),
			measurement(name, "compare/full", c.Full),
			measurement(name, "compare/optimized", c.Optimized),
		)
	}

	return out
}
