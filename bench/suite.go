package bench

import (
	"errors"
	"fmt"
	"slices"

	"github.com/golang/glog"

	"github.com/katalvlaran/eventchains/baseline"
	"github.com/katalvlaran/eventchains/builder"
	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
	"github.com/katalvlaran/eventchains/pathchain"
)

// ErrMismatch is returned by Verify when two implementations disagree.
var ErrMismatch = errors.New("bench: implementations disagree")

// Case is one row of the test matrix: a graph size and how many measured
// runs it gets. Smaller graphs get more runs.
type Case struct {
	Nodes int `yaml:"nodes" json:"nodes"`
	Edges int `yaml:"edges" json:"edges"`
	Runs  int `yaml:"runs" json:"runs"`
}

// Name renders c as "<nodes>n/<edges>e".
func (c Case) Name() string {
	return fmt.Sprintf("%dn/%de", c.Nodes, c.Edges)
}

// Build generates the seeded graph for c.
func (c Case) Build(seed uint64, maxWeight uint32) (*core.Graph, error) {
	return builder.RandomConnected(c.Nodes, c.Edges, maxWeight, builder.WithSeed(seed))
}

// Apply returns m with Runs taken from c when c sets it.
func (c Case) Apply(m Methodology) Methodology {
	if c.Runs > 0 {
		m.Runs = c.Runs
	}
	return m
}

// Endpoints returns the query every suite runs: vertex 0 to the last vertex.
func (c Case) Endpoints() (source, target core.NodeID) {
	return 0, core.NodeID(c.Nodes - 1)
}

// Pair is a baseline measured against the pattern-based counterpart.
type Pair struct {
	Baseline Metrics `yaml:"baseline" json:"baseline"`
	Tested   Metrics `yaml:"tested" json:"tested"`
}

// Overhead is Tested's mean-time overhead over Baseline in percent.
func (p Pair) Overhead() float64 { return p.Tested.OverheadVs(p.Baseline) }

// MemoryOverhead is Tested's peak-memory overhead over Baseline in percent.
func (p Pair) MemoryOverhead() float64 { return p.Tested.MemoryOverheadVs(p.Baseline) }

// Scaling is one Tier 3 point: the chain with Middleware no-op layers.
type Scaling struct {
	Middleware int     `yaml:"middleware" json:"middleware"`
	Metrics    Metrics `yaml:"metrics" json:"metrics"`
}

// TierResults groups the four tiers for one Case.
type TierResults struct {
	Tier1 Pair      `yaml:"tier1" json:"tier1"`
	Tier2 Pair      `yaml:"tier2" json:"tier2"`
	Tier3 []Scaling `yaml:"tier3" json:"tier3"`
	Tier4 Pair      `yaml:"tier4" json:"tier4"`
}

// PerMiddleware estimates the mean cost of one middleware layer in
// nanoseconds from the first and last Tier 3 points. It is 0 when fewer
// than two distinct counts were measured.
func (r TierResults) PerMiddleware() float64 {
	if len(r.Tier3) < 2 {
		return 0
	}
	first, last := r.Tier3[0], r.Tier3[len(r.Tier3)-1]
	layers := last.Middleware - first.Middleware
	if layers == 0 {
		return 0
	}
	return float64(last.Metrics.Mean-first.Metrics.Mean) / float64(layers)
}

// Comparison is the legacy profiling comparison.
type Comparison struct {
	Traditional Metrics `yaml:"traditional" json:"traditional"`
	Bare        Metrics `yaml:"bare" json:"bare"`
	Full        Metrics `yaml:"full" json:"full"`
	Optimized   Metrics `yaml:"optimized" json:"optimized"`
}

// CaseResult is everything measured for one Case.
type CaseResult struct {
	Case       Case        `yaml:"case" json:"case"`
	Source     core.NodeID `yaml:"source" json:"source"`
	Target     core.NodeID `yaml:"target" json:"target"`
	Distance   uint32      `yaml:"distance" json:"distance"`
	Tiers      TierResults `yaml:"tiers" json:"tiers"`
	Comparison *Comparison `yaml:"comparison,omitempty" json:"comparison,omitempty"`
}

// found wraps a fallible runner into a Func that reports a reachable target.
func found(run pathchain.Runner, g *core.Graph, s, t core.NodeID) Func {
	return func() bool {
		res, err := run(g, s, t)
		return err == nil && res.Reachable
	}
}

// RunTiers measures the four tiers on g for the s→t query.
//
//	Tier 1: baseline.Tier1            vs pathchain.Optimized
//	Tier 2: baseline.Tier2            vs pathchain.Optimized
//	Tier 3: pathchain.WithMiddleware  for every count in counts
//	Tier 4: baseline.Tier4 (no lines) vs pathchain.OptimizedWithMiddleware (quiet)
func RunTiers(g *core.Graph, s, t core.NodeID, m Methodology, counts []int, obs Observer) (TierResults, error) {
	var (
		out TierResults
		err error
	)
	optimized := found(pathchain.Optimized, g, s, t)

	glog.V(1).Info("tier 1: minimal baseline")
	if out.Tier1.Baseline, err = Measure("tier1/baseline", m, func() bool {
		return baseline.Tier1(g, s, t).Reachable
	}, obs); err != nil {
		return out, err
	}
	if out.Tier1.Tested, err = Measure("tier1/eventchains", m, optimized, obs); err != nil {
		return out, err
	}

	glog.V(1).Info("tier 2: feature-parity baseline")
	if out.Tier2.Baseline, err = Measure("tier2/baseline", m, func() bool {
		res, err := baseline.Tier2(g, s, t)
		return err == nil && res.Reachable
	}, obs); err != nil {
		return out, err
	}
	if out.Tier2.Tested, err = Measure("tier2/eventchains", m, optimized, obs); err != nil {
		return out, err
	}

	glog.V(1).Info("tier 3: middleware scaling")
	out.Tier3 = make([]Scaling, 0, len(counts))
	for _, n := range counts {
		n := n
		met, err := Measure(fmt.Sprintf("tier3/%d", n), m, func() bool {
			res, err := pathchain.WithMiddleware(g, s, t, n)
			return err == nil && res.Reachable
		}, obs)
		if err != nil {
			return out, err
		}
		out.Tier3 = append(out.Tier3, Scaling{Middleware: n, Metrics: met})
	}

	glog.V(1).Info("tier 4: real-world middleware")
	if out.Tier4.Baseline, err = Measure("tier4/baseline", m, func() bool {
		res, _ := baseline.Tier4(g, s, t, false)
		return res.Reachable
	}, obs); err != nil {
		return out, err
	}
	if out.Tier4.Tested, err = Measure("tier4/eventchains", m, func() bool {
		res, err := pathchain.OptimizedWithMiddleware(g, s, t, false)
		return err == nil && res.Reachable
	}, obs); err != nil {
		return out, err
	}

	return out, nil
}

// Compare runs the legacy comparison: an early-exit textbook Dijkstra
// against the bare, full and optimized chains.
func Compare(g *core.Graph, s, t core.NodeID, m Methodology, obs Observer) (Comparison, error) {
	var (
		out Comparison
		err error
	)
	if out.Traditional, err = Measure("compare/traditional", m, func() bool {
		res, err := dijkstra.ShortestPath(g, s, t, dijkstra.WithEarlyExit())
		return err == nil && res.Reachable
	}, obs); err != nil {
		return out, err
	}
	if out.Bare, err = Measure("compare/bare", m, found(pathchain.Bare, g, s, t), obs); err != nil {
		return out, err
	}
	if out.Full, err = Measure("compare/full", m, func() bool {
		res, err := pathchain.Full(g, s, t, false)
		return err == nil && res.Reachable
	}, obs); err != nil {
		return out, err
	}
	if out.Optimized, err = Measure("compare/optimized", m, found(pathchain.Optimized, g, s, t), obs); err != nil {
		return out, err
	}

	return out, nil
}

// Verify checks that every implementation returns the reference distance
// and path for s→t. It returns the reference result.
func Verify(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error) {
	runners := map[string]pathchain.Runner{
		"dijkstra/early-exit": func(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error) {
			return dijkstra.ShortestPath(g, s, t, dijkstra.WithEarlyExit())
		},
		"baseline/tier1": func(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error) {
			return baseline.Tier1(g, s, t), nil
		},
		"baseline/tier2": baseline.Tier2,
		"baseline/tier4": func(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error) {
			res, _ := baseline.Tier4(g, s, t, false)
			return res, nil
		},
	}
	for name, run := range pathchain.Variants() {
		runners["pathchain/"+name] = run
	}

	return verify(g, s, t, runners)
}

// verify compares every runner against dijkstra.ShortestPath, in name
// order, and stops at the first disagreement.
func verify(g *core.Graph, s, t core.NodeID, runners map[string]pathchain.Runner) (dijkstra.Result, error) {
	want, err := dijkstra.ShortestPath(g, s, t)
	if err != nil {
		return want, fmt.Errorf("Verify: reference: %w", err)
	}

	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		got, err := runners[name](g, s, t)
		if err != nil {
			return want, fmt.Errorf("Verify: %s: %w", name, err)
		}
		if got.Distance != want.Distance || got.Reachable != want.Reachable || !slices.Equal(got.Path, want.Path) {
			return want, fmt.Errorf("%w: %s distance=%d path=%v, want distance=%d path=%v",
				ErrMismatch, name, got.Distance, got.Path, want.Distance, want.Path)
		}
	}

	return want, nil
}
