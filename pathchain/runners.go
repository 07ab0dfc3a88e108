package pathchain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
	"github.com/katalvlaran/eventchains/eventchain"
	"github.com/katalvlaran/eventchains/middleware"
)

// ErrChainFailed wraps the joined event failures of an unsuccessful run.
var ErrChainFailed = errors.New("pathchain: chain failed")

// Runner is the common signature of every variant, so harness code can
// treat them uniformly.
type Runner func(g *core.Graph, source, target core.NodeID) (dijkstra.Result, error)

// nodeCount tolerates a nil graph; the events report it.
func nodeCount(g *core.Graph) int {
	if g == nil {
		return 0
	}
	return g.NodeCount()
}

// perNode builds the chain with one ProcessNode event per vertex.
func perNode(g *core.Graph, source, target core.NodeID) *eventchain.Chain {
	n := nodeCount(g)
	chain := eventchain.NewChain(eventchain.WithFaultTolerance(eventchain.Strict)).
		AddEvent(InitializeState{Source: source, NodeCount: n}).
		AddEvent(InitializePriorityQueue{})
	for i := 0; i < n; i++ {
		chain.AddEvent(ProcessNode{})
	}

	return chain.AddEvent(FinalizeResult{Target: target})
}

// fourStep builds the chain with a single ProcessAllNodes event.
func fourStep(g *core.Graph, source, target core.NodeID) *eventchain.Chain {
	return eventchain.NewChain(eventchain.WithFaultTolerance(eventchain.Strict)).
		AddEvent(InitializeState{Source: source, NodeCount: nodeCount(g)}).
		AddEvent(InitializePriorityQueue{}).
		AddEvent(ProcessAllNodes{}).
		AddEvent(FinalizeResult{Target: target})
}

// execute runs chain over a fresh context holding g and extracts the result.
func execute(chain *eventchain.Chain, g *core.Graph) (dijkstra.Result, error) {
	ec := eventchain.NewContext()
	ec.Set(KeyGraph, g)

	res := chain.Execute(ec)
	if res.Status != eventchain.Completed {
		return dijkstra.Result{}, fmt.Errorf("%w (%s): %w", ErrChainFailed, res.Status, res.Err())
	}
	out, err := eventchain.TakeValue[dijkstra.Result](ec, KeyResult)
	if err != nil {
		return dijkstra.Result{}, fmt.Errorf("%w: %w", ErrChainFailed, err)
	}

	return out, nil
}

// Bare runs the per-node chain with no middleware.
func Bare(g *core.Graph, source, target core.NodeID) (dijkstra.Result, error) {
	return execute(perNode(g, source, target), g)
}

// Full runs the per-node chain with Performance, Timing and Logging
// middleware (Logging outermost).
func Full(g *core.Graph, source, target core.NodeID, verbose bool) (dijkstra.Result, error) {
	chain := perNode(g, source, target).
		Use(middleware.NewPerformance()).
		Use(middleware.NewTiming(verbose)).
		Use(middleware.NewLogging(verbose))

	return execute(chain, g)
}

// Optimized runs the four-event chain with no middleware.
func Optimized(g *core.Graph, source, target core.NodeID) (dijkstra.Result, error) {
	return execute(fourStep(g, source, target), g)
}

// OptimizedWithMiddleware runs the four-event chain with Timing and Logging
// (Logging outermost); the pattern counterpart of baseline.Tier4.
func OptimizedWithMiddleware(g *core.Graph, source, target core.NodeID, verbose bool) (dijkstra.Result, error) {
	chain := fourStep(g, source, target).
		Use(middleware.NewTiming(verbose)).
		Use(middleware.NewLogging(verbose))

	return execute(chain, g)
}

// WithMiddleware runs the four-event chain wrapped in n NoOp layers
// (ids 0..n-1, n-1 outermost). n < 0 is treated as 0.
func WithMiddleware(g *core.Graph, source, target core.NodeID, n int) (dijkstra.Result, error) {
	chain := fourStep(g, source, target)
	for i := 0; i < n; i++ {
		chain.Use(middleware.NewNoOp(i))
	}

	return execute(chain, g)
}

// Variants returns every runner keyed by a stable name, verbose output off.
// The self-check and tests iterate it.
func Variants() map[string]Runner {
	return map[string]Runner{
		"bare": Bare,
		"full": func(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error) {
			return Full(g, s, t, false)
		},
		"optimized": Optimized,
		"optimized+middleware": func(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error) {
			return OptimizedWithMiddleware(g, s, t, false)
		},
		"noop×10": func(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error) {
			return WithMiddleware(g, s, t, 10)
		},
	}
}
