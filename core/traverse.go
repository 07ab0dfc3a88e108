package core

import "fmt"

// Reachable runs a breadth-first search from source and returns a slice
// marking every vertex that can be reached by following arcs.
// Fixtures use it to prove connectivity before a benchmark starts.
//
// Complexity: O(V+E) time, O(V) space.
func (g *Graph) Reachable(source NodeID) ([]bool, error) {
	if !g.contains(source) {
		return nil, fmt.Errorf("%w: source=%d (n=%d)", ErrNodeOutOfRange, source, len(g.adjacency))
	}

	seen := make([]bool, len(g.adjacency))
	queue := make([]NodeID, 0, len(g.adjacency))
	seen[source] = true
	queue = append(queue, source)

	// The queue slice only grows; head walks forward, so no dequeue copying.
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, e := range g.adjacency[u] {
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			queue = append(queue, e.To)
		}
	}

	return seen, nil
}

// Connected reports whether every vertex is reachable from vertex 0.
// For graphs built from bidirectional edges this is ordinary connectivity.
func (g *Graph) Connected() bool {
	seen, err := g.Reachable(0)
	if err != nil {
		return false
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}

	return true
}
