package report

import (
	"github.com/katalvlaran/eventchains/history"
)

// Drift prints how each series moved since the previous run. Slowdowns
// are graded with TimingThreshold; speedups are always good.
func (p *Printer) Drift(drift []history.Drift) {
	p.heading("Drift vs previous run")
	if len(drift) == 0 {
		p.printf("no earlier run to compare with\n")
		return
	}
	p.printf("%-14s %-24s %-18s %12s %12s %12s\n", "Case", "Series", "Previous run", "Prev (μs)", "Now (μs)", "Delta")
	p.rule("-")
	for _, d := range drift {
		g := Good
		if d.DeltaPct > 0 {
			g = TimingThreshold.Grade(d.DeltaPct)
		}
		p.printf("%-14s %-24s %-18s %12.2f %12.2f %s\n", d.Case, d.Series, d.PreviousRun,
			micros(d.Previous), micros(d.Current), p.pct(d.DeltaPct, 12, g))
	}
}
