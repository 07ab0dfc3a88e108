package report

import (
	"fmt"
	"slices"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/fatih/color"

	"github.com/katalvlaran/eventchains/bench"
)

// DefaultBins is the histogram bucket count used by the harness.
const DefaultBins = 10

// Histogram prints the latency distribution of m's samples in μs.
func (p *Printer) Histogram(label string, m bench.Metrics, bins int) error {
	p.printf("\n%s\n", p.paint(fmt.Sprintf("Latency histogram: %s (μs)", label), color.FgYellow, color.Bold))
	if len(m.Samples) == 0 {
		p.printf("  no samples\n")
		return nil
	}
	if bins < 1 {
		bins = DefaultBins
	}

	data := make([]float64, len(m.Samples))
	for i, d := range m.Samples {
		data[i] = micros(d)
	}
	if slices.Min(data) == slices.Max(data) {
		p.printf("  all %d samples at %.2f\n", len(data), data[0])
		return nil
	}
	hist := histogram.Hist(bins, data)
	if err := histogram.Fprint(p.w, hist, histogram.Linear(5)); err != nil {
		return fmt.Errorf("report: histogram %s: %w", label, err)
	}

	return nil
}

// Histograms prints one histogram per series of a case.
func (p *Printer) Histograms(r bench.TierResults, bins int) error {
	series := []struct {
		label string
		m     bench.Metrics
	}{
		{"tier1/baseline", r.Tier1.Baseline},
		{"tier1/eventchains", r.Tier1.Tested},
		{"tier4/baseline", r.Tier4.Baseline},
		{"tier4/eventchains", r.Tier4.Tested},
	}
	for _, s := range series {
		if err := p.Histogram(s.label, s.m, bins); err != nil {
			return err
		}
	}

	return nil
}
