package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/eventchains/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeOutOfRange indicates that source or target is not a vertex of the graph.
	ErrNodeOutOfRange = errors.New("dijkstra: node out of range")
)

// Infinity marks a vertex whose distance is not (yet) known.
const Infinity uint32 = math.MaxUint32

// SaturatingAdd returns a+b clamped to Infinity.
func SaturatingAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}

	return Infinity
}

// State is the complete mutable state of one single-source run.
type State struct {
	// Distances[v] is the best known distance from the source, Infinity if unknown.
	Distances []uint32
	// Predecessors[v] is the vertex before v on the best known path, NoNode if none.
	Predecessors []core.NodeID
	// Visited[v] is true once Distances[v] is final.
	Visited []bool
}

// NewState allocates state for n vertices with source at distance zero.
// Complexity: O(n).
func NewState(n int, source core.NodeID) *State {
	s := &State{
		Distances:    make([]uint32, n),
		Predecessors: make([]core.NodeID, n),
		Visited:      make([]bool, n),
	}
	for i := range s.Distances {
		s.Distances[i] = Infinity
		s.Predecessors[i] = core.NoNode
	}
	s.Distances[source] = 0

	return s
}

// Result is the answer to a single source→target query.
type Result struct {
	Source core.NodeID
	Target core.NodeID
	// Distance equals Infinity when Reachable is false.
	Distance  uint32
	Reachable bool
	// Path runs source..target inclusive; nil when unreachable.
	Path []core.NodeID
}

// Reconstruct builds the Result for target from a (possibly partial) state.
// Complexity: O(path length).
func Reconstruct(s *State, source, target core.NodeID) Result {
	res := Result{Source: source, Target: target, Distance: s.Distances[target]}
	if res.Distance == Infinity {
		return res
	}
	res.Reachable = true

	var path []core.NodeID
	for cur := target; cur != source; {
		path = append(path, cur)
		cur = s.Predecessors[cur]
		if cur == core.NoNode {
			break
		}
	}
	path = append(path, source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}

// Options configures ShortestPath.
type Options struct {
	// EarlyExit stops the search as soon as the target is settled.
	EarlyExit bool
	// MaxDistance caps exploration; vertices beyond it stay unsettled.
	MaxDistance uint32
}

// Option is a functional option for ShortestPath.
type Option func(*Options)

// DefaultOptions explores the whole reachable component.
func DefaultOptions() Options {
	return Options{MaxDistance: Infinity}
}

// WithEarlyExit stops once the target is settled.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithMaxDistance stops once the closest frontier entry is farther than d.
func WithMaxDistance(d uint32) Option {
	return func(o *Options) {
		o.MaxDistance = d
	}
}
