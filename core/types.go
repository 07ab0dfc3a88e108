package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewNodes indicates that a graph was requested with fewer than one vertex.
	ErrTooFewNodes = errors.New("core: graph needs at least one node")

	// ErrNodeOutOfRange indicates an operation referenced a NodeID outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node out of range")
)

// NodeID is a dense vertex index in [0, NodeCount()).
type NodeID int

// NoNode marks the absence of a vertex (e.g., the predecessor of the source).
const NoNode NodeID = -1

// MaxWeight is the largest representable edge weight and path cost.
const MaxWeight = math.MaxUint32

// Edge is one outgoing arc stored in the adjacency list of its tail vertex.
type Edge struct {
	// To is the head vertex of the arc.
	To NodeID

	// Weight is the non-negative traversal cost.
	Weight uint32
}

// Graph is a static weighted adjacency-list graph.
//
// adjacency[u] holds every arc leaving u in insertion order.
// arcs counts directed arcs (a bidirectional edge counts twice).
type Graph struct {
	adjacency [][]Edge
	arcs      int
}

// Stats is a read-only snapshot of graph shape, used in reports.
type Stats struct {
	Nodes     int     `yaml:"nodes" json:"nodes"`
	Arcs      int     `yaml:"arcs" json:"arcs"`
	MinDegree int     `yaml:"min_degree" json:"min_degree"`
	MaxDegree int     `yaml:"max_degree" json:"max_degree"`
	AvgDegree float64 `yaml:"avg_degree" json:"avg_degree"`
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}

	return &Graph{adjacency: make([][]Edge, n)}, nil
}
