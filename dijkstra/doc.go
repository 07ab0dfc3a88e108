// Package dijkstra is the direct, monomorphic Dijkstra implementation every
// pattern-based variant in this module is measured against.
//
// Overview:
//
//   - All state lives in typed slices indexed by core.NodeID (State).
//   - The frontier is a typed binary min-heap (PriorityQueue) with lazy
//     decrease-key: improved distances are pushed again and stale entries
//     are skipped when popped.
//   - Ties on distance pop the larger NodeID first, so every implementation
//     in the module settles vertices in the same order and reconstructs the
//     same path.
//
// Building blocks:
//
//   - NewState:    distances = Infinity except source = 0.
//   - Settle:      pop-side step; skips stale entries, marks visited, relaxes arcs.
//   - Reconstruct: walks predecessors back from the target.
//
// Entry points:
//
//   - ShortestPath(g, source, target, opts...) (Result, error)
//   - Run(g, source) (*State, error)
//
// Options:
//
//   - WithEarlyExit():      stop once target is settled (classic textbook variant).
//   - WithMaxDistance(d):   do not settle vertices farther than d.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        g is nil.
//   - ErrNodeOutOfRange:  source or target is not a vertex of g.
//
// Thread safety: a State and PriorityQueue belong to one goroutine; the graph
// may be shared read-only.
package dijkstra
