package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/eventchains/core"
)

// ShortestPath computes the shortest source→target path in g.
//
// Without WithEarlyExit the whole reachable component is settled, which is
// the workload the pattern-based runners reproduce event by event.
//
// Preconditions (checked in order):
//  1. g != nil (ErrNilGraph).
//  2. source and target are vertices of g (ErrNodeOutOfRange).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, target core.NodeID, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, source, target); err != nil {
		return Result{}, err
	}

	r := newRunner(g, source, cfg)
	r.target = target
	r.process()

	return Reconstruct(r.state, source, target), nil
}

// Run settles every vertex reachable from source and returns the final state.
// Complexity: O((V + E) log V).
func Run(g *core.Graph, source core.NodeID) (*State, error) {
	if err := validate(g, source, source); err != nil {
		return nil, err
	}
	r := newRunner(g, source, DefaultOptions())
	r.process()

	return r.state, nil
}

func validate(g *core.Graph, source, target core.NodeID) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: source=%d (n=%d)", ErrNodeOutOfRange, source, g.NodeCount())
	}
	if !g.HasVertex(target) {
		return fmt.Errorf("%w: target=%d (n=%d)", ErrNodeOutOfRange, target, g.NodeCount())
	}

	return nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	state   *State
	pq      *PriorityQueue
	target  core.NodeID
}

// newRunner initialises state and seeds the queue with the source.
func newRunner(g *core.Graph, source core.NodeID, cfg Options) *runner {
	r := &runner{
		g:       g,
		options: cfg,
		state:   NewState(g.NodeCount(), source),
		pq:      NewPriorityQueue(g.NodeCount()),
		target:  core.NoNode,
	}
	r.pq.Push(Item{Node: source, Distance: 0})

	return r
}

// process pops until the queue drains, the target is settled (EarlyExit),
// or the frontier passes MaxDistance.
func (r *runner) process() {
	for {
		it, ok := r.pq.Pop()
		if !ok {
			return
		}
		if it.Distance > r.options.MaxDistance {
			return
		}
		if !r.state.Settle(r.g, r.pq, it) {
			continue
		}
		if r.options.EarlyExit && it.Node == r.target {
			return
		}
	}
}

// Settle processes one popped entry. Stale entries (already visited, or a
// distance worse than the recorded one) are ignored and Settle returns false.
// Otherwise the vertex is marked visited, every outgoing arc is relaxed, and
// improved neighbours are pushed onto pq.
// Complexity: O(deg(u) log n).
func (s *State) Settle(g *core.Graph, pq *PriorityQueue, it Item) bool {
	u := it.Node
	if s.Visited[u] || it.Distance > s.Distances[u] {
		return false
	}
	s.Visited[u] = true

	var nd uint32
	for _, e := range g.Neighbors(u) {
		nd = SaturatingAdd(it.Distance, e.Weight)
		if nd < s.Distances[e.To] {
			s.Distances[e.To] = nd
			s.Predecessors[e.To] = u
			pq.Push(Item{Node: e.To, Distance: nd})
		}
	}

	return true
}
