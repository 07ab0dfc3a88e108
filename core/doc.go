// Package core defines the static weighted graph that every shortest-path
// implementation in this module runs on.
//
// The Graph G = (V,E) is stored as a dense adjacency list:
//
//   - Vertices are dense indices NodeID(0) … NodeID(n-1), fixed at construction.
//   - Each vertex owns a slice of outgoing Edge{To, Weight}.
//   - AddEdge stores one directed arc; AddBidirectionalEdge stores the pair.
//   - Weights are uint32; path costs saturate at math.MaxUint32.
//
// Why dense indices instead of string IDs?
//
//   - Distances, predecessors and visited flags become plain slices, so the
//     direct baseline pays no hashing cost and the measured overhead of the
//     event-based implementation is not drowned by map lookups.
//   - Iteration order is the insertion order, which makes every run of a
//     seeded fixture byte-for-byte reproducible.
//
// Concurrency:
//
//	A Graph is built once (by a builder constructor or by hand) and then only
//	read. Readers never lock; mutating a Graph while an algorithm runs on it is
//	a programmer error.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)                     // O(n)
//	AddEdge(from, to NodeID, w uint32) error            // O(1) amortized
//	AddBidirectionalEdge(a, b NodeID, w uint32) error   // O(1) amortized
//	Neighbors(id NodeID) []Edge                         // O(1), no copy
//	NodeCount() / EdgeCount()                           // O(1)
//	Edges(fn func(from NodeID, e Edge) bool)            // O(V+E)
//	Clone() *Graph                                      // O(V+E)
//	Stats() Stats                                       // O(V)
//	Reachable(source NodeID) ([]bool, error)            // O(V+E) BFS
//	Connected() bool                                    // O(V+E)
//
// Errors:
//
//	ErrTooFewNodes     – NewGraph called with n < 1.
//	ErrNodeOutOfRange  – a NodeID outside [0, n).
package core
