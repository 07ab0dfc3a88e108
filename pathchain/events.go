package pathchain

import (
	"fmt"

	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
	"github.com/katalvlaran/eventchains/eventchain"
)

// Context keys.
const (
	KeyGraph    = "graph"
	KeySource   = "source"
	KeyState    = "state"
	KeyQueue    = "queue"
	KeyContinue = "continue"
	KeyResult   = "result"
)

// Event names, shared with the hand-written baselines.
const (
	NameInitializeState         = "InitializeState"
	NameInitializePriorityQueue = "InitializePriorityQueue"
	NameProcessNode             = "ProcessNode"
	NameProcessAllNodes         = "ProcessAllNodes"
	NameFinalizeResult          = "FinalizeResult"
)

// graphFrom fetches a non-nil graph from the context.
func graphFrom(ec *eventchain.Context) (*core.Graph, error) {
	g, err := eventchain.Value[*core.Graph](ec, KeyGraph)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}

	return g, nil
}

// InitializeState allocates the distance/predecessor/visited state and
// records the source.
type InitializeState struct {
	Source    core.NodeID
	NodeCount int
}

// Name implements eventchain.Event.
func (InitializeState) Name() string { return NameInitializeState }

// Execute implements eventchain.Event.
func (e InitializeState) Execute(ec *eventchain.Context) error {
	if e.Source < 0 || int(e.Source) >= e.NodeCount {
		return fmt.Errorf("%w: source=%d (n=%d)", dijkstra.ErrNodeOutOfRange, e.Source, e.NodeCount)
	}
	ec.Set(KeyState, dijkstra.NewState(e.NodeCount, e.Source))
	ec.Set(KeySource, e.Source)

	return nil
}

// InitializePriorityQueue seeds the queue with the source at distance 0.
type InitializePriorityQueue struct{}

// Name implements eventchain.Event.
func (InitializePriorityQueue) Name() string { return NameInitializePriorityQueue }

// Execute implements eventchain.Event.
func (InitializePriorityQueue) Execute(ec *eventchain.Context) error {
	source, err := eventchain.Value[core.NodeID](ec, KeySource)
	if err != nil {
		return err
	}
	g, err := graphFrom(ec)
	if err != nil {
		return err
	}
	pq := dijkstra.NewPriorityQueue(g.NodeCount())
	pq.Push(dijkstra.Item{Node: source, Distance: 0})
	ec.Set(KeyQueue, pq)

	return nil
}

// ProcessNode pops entries until one vertex is settled or the queue is
// empty, then stores whether work remains under KeyContinue.
type ProcessNode struct{}

// Name implements eventchain.Event.
func (ProcessNode) Name() string { return NameProcessNode }

// Execute implements eventchain.Event.
func (ProcessNode) Execute(ec *eventchain.Context) error {
	pq, err := eventchain.Value[*dijkstra.PriorityQueue](ec, KeyQueue)
	if err != nil {
		return err
	}
	st, err := eventchain.Value[*dijkstra.State](ec, KeyState)
	if err != nil {
		return err
	}
	g, err := graphFrom(ec)
	if err != nil {
		return err
	}

	for {
		it, ok := pq.Pop()
		if !ok || st.Settle(g, pq, it) {
			break
		}
	}
	ec.Set(KeyContinue, pq.Len() > 0)

	return nil
}

// ProcessAllNodes drains the queue in a single event.
type ProcessAllNodes struct{}

// Name implements eventchain.Event.
func (ProcessAllNodes) Name() string { return NameProcessAllNodes }

// Execute implements eventchain.Event.
func (ProcessAllNodes) Execute(ec *eventchain.Context) error {
	pq, err := eventchain.Value[*dijkstra.PriorityQueue](ec, KeyQueue)
	if err != nil {
		return err
	}
	st, err := eventchain.Value[*dijkstra.State](ec, KeyState)
	if err != nil {
		return err
	}
	g, err := graphFrom(ec)
	if err != nil {
		return err
	}

	for {
		it, ok := pq.Pop()
		if !ok {
			break
		}
		st.Settle(g, pq, it)
	}
	ec.Set(KeyContinue, false)

	return nil
}

// FinalizeResult consumes state and source and stores the Result for Target.
type FinalizeResult struct {
	Target core.NodeID
}

// Name implements eventchain.Event.
func (FinalizeResult) Name() string { return NameFinalizeResult }

// Execute implements eventchain.Event.
func (e FinalizeResult) Execute(ec *eventchain.Context) error {
	st, err := eventchain.TakeValue[*dijkstra.State](ec, KeyState)
	if err != nil {
		return err
	}
	source, err := eventchain.TakeValue[core.NodeID](ec, KeySource)
	if err != nil {
		return err
	}
	if e.Target < 0 || int(e.Target) >= len(st.Distances) {
		return fmt.Errorf("%w: target=%d (n=%d)", dijkstra.ErrNodeOutOfRange, e.Target, len(st.Distances))
	}
	ec.Set(KeyResult, dijkstra.Reconstruct(st, source, e.Target))

	return nil
}
