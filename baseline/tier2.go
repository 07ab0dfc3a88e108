package baseline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
)

// Step names shared by the instrumented tiers. They match the event names
// of the pattern-based runners so reports line up.
const (
	StepInitializeState         = "InitializeState"
	StepInitializePriorityQueue = "InitializePriorityQueue"
	StepProcessAllNodes         = "ProcessAllNodes"
	StepFinalizeResult          = "FinalizeResult"
)

// ErrStepFailed wraps any failure inside an instrumented tier.
var ErrStepFailed = errors.New("baseline: step failed")

// stepError records which step failed.
func stepError(step string, err error) error {
	return fmt.Errorf("%w: step %q failed: %w", ErrStepFailed, step, err)
}

// Tier2 is Tier1 plus step bookkeeping and error propagation: every step
// appends its name and outcome, and the first failed outcome is returned.
func Tier2(g *core.Graph, source, target core.NodeID) (dijkstra.Result, error) {
	names := make([]string, 0, 4)
	results := make([]error, 0, 4)

	// Step 1: state.
	names = append(names, StepInitializeState)
	var st *dijkstra.State
	err := checkNode(g, source)
	if err == nil {
		st = dijkstra.NewState(g.NodeCount(), source)
	}
	results = append(results, err)

	// Step 2: queue.
	names = append(names, StepInitializePriorityQueue)
	var pq *dijkstra.PriorityQueue
	if err == nil {
		pq = dijkstra.NewPriorityQueue(g.NodeCount())
		pq.Push(dijkstra.Item{Node: source, Distance: 0})
	}
	results = append(results, nil)

	// Step 3: settle everything.
	names = append(names, StepProcessAllNodes)
	if err == nil {
		err = processAll(g, st, pq)
	}
	results = append(results, err)

	for i, res := range results {
		if res != nil {
			return dijkstra.Result{}, stepError(names[i], res)
		}
	}

	// Step 4: result.
	names = append(names, StepFinalizeResult)
	if err = checkNode(g, target); err != nil {
		return dijkstra.Result{}, stepError(names[len(names)-1], err)
	}

	return dijkstra.Reconstruct(st, source, target), nil
}

func checkNode(g *core.Graph, id core.NodeID) error {
	if g == nil {
		return dijkstra.ErrNilGraph
	}
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: node=%d (n=%d)", dijkstra.ErrNodeOutOfRange, id, g.NodeCount())
	}

	return nil
}

// processAll drains pq. It returns an error only on corrupted state.
func processAll(g *core.Graph, st *dijkstra.State, pq *dijkstra.PriorityQueue) error {
	for {
		it, ok := pq.Pop()
		if !ok {
			return nil
		}
		if !g.HasVertex(it.Node) {
			return fmt.Errorf("%w: queued node=%d", dijkstra.ErrNodeOutOfRange, it.Node)
		}
		st.Settle(g, pq, it)
	}
}
