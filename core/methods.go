package core

import "fmt"

// contains reports whether id is a valid vertex index.
func (g *Graph) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.adjacency)
}

// AddEdge appends the directed arc from→to with weight w.
// Parallel arcs and self-loops are stored as given; fixtures decide whether
// they want them.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, w uint32) error {
	if !g.contains(from) {
		return fmt.Errorf("%w: from=%d (n=%d)", ErrNodeOutOfRange, from, len(g.adjacency))
	}
	if !g.contains(to) {
		return fmt.Errorf("%w: to=%d (n=%d)", ErrNodeOutOfRange, to, len(g.adjacency))
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: w})
	g.arcs++

	return nil
}

// AddBidirectionalEdge stores a→b and b→a with the same weight.
// Both endpoints are validated before anything is written, so a failed call
// leaves the graph unchanged.
func (g *Graph) AddBidirectionalEdge(a, b NodeID, w uint32) error {
	if !g.contains(a) || !g.contains(b) {
		return fmt.Errorf("%w: %d↔%d (n=%d)", ErrNodeOutOfRange, a, b, len(g.adjacency))
	}
	g.adjacency[a] = append(g.adjacency[a], Edge{To: b, Weight: w})
	g.adjacency[b] = append(g.adjacency[b], Edge{To: a, Weight: w})
	g.arcs += 2

	return nil
}

// Neighbors returns the outgoing arcs of id. The slice aliases internal
// storage and must not be modified. Out-of-range ids yield nil.
// Complexity: O(1).
func (g *Graph) Neighbors(id NodeID) []Edge {
	if !g.contains(id) {
		return nil
	}

	return g.adjacency[id]
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of stored directed arcs.
func (g *Graph) EdgeCount() int { return g.arcs }

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id NodeID) bool { return g.contains(id) }

// Edges calls fn for every arc in (tail asc, insertion) order until fn
// returns false.
// Complexity: O(V+E).
func (g *Graph) Edges(fn func(from NodeID, e Edge) bool) {
	for u, out := range g.adjacency {
		for _, e := range out {
			if !fn(NodeID(u), e) {
				return
			}
		}
	}
}

// Clone returns a deep copy of g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{adjacency: make([][]Edge, len(g.adjacency)), arcs: g.arcs}
	for u, out := range g.adjacency {
		if len(out) == 0 {
			continue
		}
		c.adjacency[u] = append(make([]Edge, 0, len(out)), out...)
	}

	return c
}

// Stats returns degree statistics over outgoing arcs.
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.adjacency), Arcs: g.arcs}
	if s.Nodes == 0 {
		return s
	}
	s.MinDegree = len(g.adjacency[0])
	for _, out := range g.adjacency {
		d := len(out)
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.AvgDegree = float64(g.arcs) / float64(s.Nodes)

	return s
}
