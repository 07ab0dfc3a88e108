package baseline

import (
	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
)

// Tier1 runs Dijkstra as direct inline steps with no orchestration.
// Source and target must be vertices of g; Tier1 does not check.
func Tier1(g *core.Graph, source, target core.NodeID) dijkstra.Result {
	// Step 1: state.
	st := dijkstra.NewState(g.NodeCount(), source)

	// Step 2: queue.
	pq := dijkstra.NewPriorityQueue(g.NodeCount())
	pq.Push(dijkstra.Item{Node: source, Distance: 0})

	// Step 3: settle everything.
	for {
		it, ok := pq.Pop()
		if !ok {
			break
		}
		u := it.Node
		if st.Visited[u] || it.Distance > st.Distances[u] {
			continue
		}
		st.Visited[u] = true
		for _, e := range g.Neighbors(u) {
			nd := dijkstra.SaturatingAdd(it.Distance, e.Weight)
			if nd < st.Distances[e.To] {
				st.Distances[e.To] = nd
				st.Predecessors[e.To] = u
				pq.Push(dijkstra.Item{Node: e.To, Distance: nd})
			}
		}
	}

	// Step 4: result.
	return dijkstra.Reconstruct(st, source, target)
}
