// Package pathchain expresses Dijkstra's algorithm as EventChains events.
//
// Events never hold algorithm state between calls. Everything they need is
// read from the shared eventchain.Context under these keys:
//
//	graph     *core.Graph
//	source    core.NodeID
//	state     *dijkstra.State
//	queue     *dijkstra.PriorityQueue
//	continue  bool             (written by ProcessNode)
//	result    dijkstra.Result  (written by FinalizeResult)
//
// Runner variants, all producing the same Result as dijkstra.ShortestPath:
//
//	Bare                     init, queue, N × ProcessNode, finalize; no middleware
//	Full                     Bare + Performance, Timing, Logging
//	Optimized                init, queue, ProcessAllNodes, finalize
//	OptimizedWithMiddleware  Optimized + Timing, Logging
//	WithMiddleware(n)        Optimized + n NoOp layers
//
// ProcessNode settles exactly one vertex per call (stale queue entries are
// skipped inside the same call), so N ProcessNode events always finish an
// N-vertex graph.
package pathchain
