// Package report renders benchmark results as colored terminal tables and
// exports them as YAML and JSON.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/eventchains/bench"
)

const width = 90

// Printer writes reports to w.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w. Colors are emitted only when
// useColor is true and color output is not globally disabled
// (color.NoColor is set for non-terminals and NO_COLOR).
func NewPrinter(w io.Writer, useColor bool) *Printer {
	return &Printer{w: w, color: useColor && !color.NoColor}
}

func (p *Printer) paint(s string, attrs ...color.Attribute) string {
	if !p.color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func (p *Printer) graded(s string, g Grade) string {
	return p.paint(s, g.attr())
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) rule(ch string) {
	p.printf("%s\n", strings.Repeat(ch, width))
}

// Banner prints a framed title.
func (p *Printer) Banner(title string) {
	bar := p.paint(strings.Repeat("=", width), color.FgHiMagenta, color.Bold)
	p.printf("%s\n%s\n%s\n", bar, p.paint(title, color.FgHiMagenta, color.Bold), bar)
}

func (p *Printer) heading(title string) {
	bar := p.paint(strings.Repeat("=", width), color.FgHiCyan, color.Bold)
	p.printf("\n%s\n%s\n%s\n", bar, p.paint(title, color.FgHiCyan, color.Bold), bar)
}

func (p *Printer) section(title string) {
	p.printf("\n%s\n", p.paint(title, color.FgYellow, color.Bold))
	p.rule("-")
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

func kib(b uint64) float64 {
	return float64(b) / 1024
}

// pct renders a signed percentage padded to n before coloring.
func (p *Printer) pct(v float64, n int, g Grade) string {
	return p.graded(fmt.Sprintf("%*s", n, fmt.Sprintf("%+.2f%%", v)), g)
}

// Comparison prints timing, variance and memory tables for tested
// against baseline.
func (p *Printer) Comparison(title string, baseline, tested bench.Metrics) {
	p.heading(title)

	p.section("Timing")
	p.printf("%-30s %15s %15s %15s\n", "Metric", "Baseline", "Tested", "Overhead")
	p.rule("-")
	ov := tested.OverheadVs(baseline)
	p.printf("%-30s %15.2f %15.2f %s\n", "Mean (μs)", baseline.MeanMicros(), tested.MeanMicros(),
		p.pct(ov, 15, TimingThreshold.Grade(ov)))
	p.printf("%-30s %15.2f %15.2f %15s\n", "Median (μs)", micros(baseline.Median), micros(tested.Median), "-")
	p.printf("%-30s %15.2f %15.2f %15s\n", "P95 (μs)", micros(baseline.P95), micros(tested.P95), "-")
	p.printf("%-30s %15.2f %15.2f %15s\n", "P99 (μs)", micros(baseline.P99), micros(tested.P99), "-")

	p.section("Latency variance")
	stdDelta := "-"
	if baseline.StdDevNanos != 0 {
		stdDelta = fmt.Sprintf("%+.2f%%", (tested.StdDevNanos-baseline.StdDevNanos)/baseline.StdDevNanos*100)
	}
	p.printf("%-30s %15.2f %15.2f %15s\n", "Std Dev (μs)", baseline.StdDevNanos/1e3, tested.StdDevNanos/1e3, stdDelta)
	p.printf("%-30s %15.2f %15.2f %15s\n", "Coefficient of Var (%)", baseline.CoV(), tested.CoV(),
		fmt.Sprintf("%+.2fpp", tested.CoV()-baseline.CoV()))
	p.printf("%-30s %15.2f %15.2f %15s\n", "Min-Max Range (μs)",
		micros(baseline.Max-baseline.Min), micros(tested.Max-tested.Min), "-")

	p.section("Memory")
	p.printf("%-30s %15s %15s %15s\n", "Metric", "Baseline", "Tested", "Overhead")
	p.rule("-")
	mo := tested.MemoryOverheadVs(baseline)
	p.printf("%-30s %15.2f %15.2f %s\n", "Peak Memory (KB)", kib(baseline.Memory.PeakMemory), kib(tested.Memory.PeakMemory),
		p.pct(mo, 15, MemoryThreshold.Grade(mo)))
	p.printf("%-30s %15.2f %15.2f %15s\n", "Total Allocated (KB)",
		kib(baseline.Memory.TotalAllocated), kib(tested.Memory.TotalAllocated), "-")
	p.printf("%-30s %15d %15d %+15d\n", "Allocation Count",
		baseline.Memory.AllocationCount, tested.Memory.AllocationCount,
		int64(tested.Memory.AllocationCount)-int64(baseline.Memory.AllocationCount))

	p.section("Cache behaviour (run-time spread)")
	p.printf("%-30s %15d %15d %15s\n", "P50 (ns)", baseline.Cache.P50, tested.Cache.P50, "-")
	p.printf("%-30s %15.0f %15.0f %15s\n", "Variance (ns²)", baseline.Cache.VarianceNanos, tested.Cache.VarianceNanos, "-")
	p.printf("%-30s %14.1f%% %14.1f%% %15s\n", "Success Rate", baseline.SuccessRate, tested.SuccessRate, "-")
}

func (p *Printer) interpretation(lines ...string) {
	p.printf("\n%s\n", p.paint("Interpretation:", color.FgYellow, color.Bold))
	for _, l := range lines {
		p.printf("  %s\n", l)
	}
}

// Tiers prints the four tier reports of one case.
func (p *Printer) Tiers(r bench.TierResults) {
	p.Comparison("TIER 1: Minimal Baseline - Framework Overhead", r.Tier1.Baseline, r.Tier1.Tested)
	p.interpretation(
		"Pure cost of the chain: event wrapping, dynamic dispatch,",
		"context creation with type erasure, result wrapping and framework allocations.",
	)

	p.Comparison("TIER 2: Feature-Parity Baseline - Cost of Abstraction", r.Tier2.Baseline, r.Tier2.Tested)
	p.interpretation(
		"Interface-based events against concrete steps with the same error handling.",
		"Type-erased context against typed local variables.",
	)

	p.Tier3(r.Tier3)

	p.Comparison("TIER 4: Real-World Scenario - Cost vs Equivalent Manual Work", r.Tier4.Baseline, r.Tier4.Tested)
	p.interpretation(
		"Logging and timing middleware against the same work done by hand.",
	)
}

// Tier3 prints the middleware scaling table. The first point is the
// reference for overhead and per-layer cost.
func (p *Printer) Tier3(points []bench.Scaling) {
	p.heading("TIER 3: Middleware Scaling - Cost per Middleware Layer")
	if len(points) == 0 {
		p.printf("no middleware counts measured\n")
		return
	}
	base := points[0]

	p.section("Timing scaling")
	p.printf("%-25s %12s %12s %12s %15s\n", "Middleware Count", "Mean (μs)", "Overhead %", "Per MW (μs)", "Memory (KB)")
	p.rule("-")
	for _, sc := range points {
		over := fmt.Sprintf("%12s", "baseline")
		perMW := 0.0
		if layers := sc.Middleware - base.Middleware; layers > 0 {
			ov := sc.Metrics.OverheadVs(base.Metrics)
			over = p.pct(ov, 12, ScalingThreshold.Grade(ov))
			perMW = (sc.Metrics.MeanMicros() - base.Metrics.MeanMicros()) / float64(layers)
		}
		p.printf("%-25s %12.2f %s %12.3f %15.2f\n", fmt.Sprintf("%d middleware", sc.Middleware),
			sc.Metrics.MeanMicros(), over, perMW, kib(sc.Metrics.Memory.PeakMemory))
	}

	p.section("Latency variance by middleware count")
	p.printf("%-25s %15s %15s %15s\n", "Middleware Count", "Std Dev (μs)", "CoV (%)", "P99 (μs)")
	p.rule("-")
	for _, sc := range points {
		p.printf("%-25s %15.2f %15.2f %15.2f\n", fmt.Sprintf("%d middleware", sc.Middleware),
			sc.Metrics.StdDevNanos/1e3, sc.Metrics.CoV(), micros(sc.Metrics.P99))
	}
}

// ExecutiveSummary prints the headline figures of one case.
func (p *Printer) ExecutiveSummary(c bench.Case, r bench.TierResults) {
	p.Banner(fmt.Sprintf("Executive Summary - %s", c.Name()))
	p.printf("\n%s\n", p.paint("Key findings:", color.FgYellow, color.Bold))

	pair := func(n int, title string, pr bench.Pair) {
		ov, mo := pr.Overhead(), pr.MemoryOverhead()
		p.printf("\n  %d. %s:\n", n, title)
		p.printf("     CPU:    %s\n", p.pct(ov, 9, TimingThreshold.Grade(ov)))
		p.printf("     Memory: %s\n", p.pct(mo, 9, MemoryThreshold.Grade(mo)))
		p.printf("     Latency variance (CoV): %7.2f%% vs %.2f%%\n", pr.Tested.CoV(), pr.Baseline.CoV())
	}
	pair(1, "Framework overhead (Tier 1)", r.Tier1)
	pair(2, "Abstraction overhead (Tier 2)", r.Tier2)

	p.printf("\n  3. Middleware cost (Tier 3):\n")
	if ref, at, ok := scalingProbe(r.Tier3); ok {
		layers := float64(at.Middleware - ref.Middleware)
		p.printf("     Per layer:       %8.3f μs\n", (at.Metrics.MeanMicros()-ref.Metrics.MeanMicros())/layers)
		p.printf("     %2d middleware:   %+8.2f%% overhead\n", at.Middleware, at.Metrics.OverheadVs(ref.Metrics))
		p.printf("     Memory impact:   %+8.2f%%\n", at.Metrics.MemoryOverheadVs(ref.Metrics))
	} else {
		p.printf("     not enough scaling points\n")
	}

	pair(4, "Real-world comparison (Tier 4)", r.Tier4)

	t1 := r.Tier1.Tested
	if t1.Median > 0 {
		p.printf("\n%s\n", p.paint("Latency:", color.FgGreen, color.Bold))
		p.printf("  P99 is %.2f%% above the median\n", (float64(t1.P99)/float64(t1.Median)-1)*100)
	}

	p.printf("\n%s\n", p.paint("Memory:", color.FgGreen, color.Bold))
	p.printf("  Tier 1: %+.2f KB (%+.1f%%)\n",
		kib(t1.Memory.PeakMemory)-kib(r.Tier1.Baseline.Memory.PeakMemory), r.Tier1.MemoryOverhead())
	p.printf("  Tier 4: %+.2f KB (%+.1f%%)\n",
		kib(r.Tier4.Tested.Memory.PeakMemory)-kib(r.Tier4.Baseline.Memory.PeakMemory), r.Tier4.MemoryOverhead())

	p.printf("\n%s\n", p.paint("Conclusion:", color.FgHiGreen, color.Bold))
	if r.Tier1.Overhead() < 25 && r.Tier1.MemoryOverhead() < 30 {
		p.printf("  Low CPU overhead (< 25%%) and memory overhead (< 30%%).\n")
	} else {
		p.printf("  Measurable overhead in exchange for composable middleware.\n")
	}
}

// scalingProbe picks the reference point and the 5-layer point (or the
// largest count when 5 was not measured).
func scalingProbe(points []bench.Scaling) (ref, at bench.Scaling, ok bool) {
	if len(points) < 2 {
		return ref, at, false
	}
	ref, at = points[0], points[len(points)-1]
	for _, sc := range points {
		if sc.Middleware == 5 {
			at = sc
			break
		}
	}
	return ref, at, at.Middleware > ref.Middleware
}

// LegacyComparison prints the early-exit baseline against the three chain
// variants.
func (p *Printer) LegacyComparison(c bench.Case, cmp bench.Comparison) {
	bar := p.paint(strings.Repeat("=", width), color.FgHiBlue, color.Bold)
	p.printf("\n%s\n%s\n%s\n", bar,
		p.paint(fmt.Sprintf("Performance Comparison - Graph: %d nodes, %d edges", c.Nodes, c.Edges), color.FgHiBlue, color.Bold),
		bar)
	p.printf("\n%-30s %12s %12s %12s\n", "Implementation", "Mean (μs)", "Median (μs)", "Overhead %")
	p.rule("-")

	row := func(name string, m bench.Metrics, over string) {
		p.printf("%-30s %12.2f %12.2f %s\n", name, m.MeanMicros(), micros(m.Median), over)
	}
	row("Traditional (baseline)", cmp.Traditional, p.graded(fmt.Sprintf("%12s", "0.00%"), Good))
	bare := cmp.Bare.OverheadVs(cmp.Traditional)
	row("EventChains (bare)", cmp.Bare, p.pct(bare, 12, LegacyThreshold.Grade(bare)))
	full := cmp.Full.OverheadVs(cmp.Traditional)
	row("EventChains (full middleware)", cmp.Full, p.pct(full, 12, LegacyFullThreshold.Grade(full)))
	opt := cmp.Optimized.OverheadVs(cmp.Traditional)
	row("EventChains (optimized)", cmp.Optimized, p.pct(opt, 12, LegacyThreshold.Grade(opt)))

	p.printf("\n%s\n", p.paint("Overhead breakdown:", color.FgYellow, color.Bold))
	p.printf("  Per-node events vs batched: %+.1f%%\n", bare-opt)
	p.printf("  Middleware calls:           %+.1f%%\n", full-bare)
}
