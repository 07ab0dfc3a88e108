package builder

import (
	"fmt"

	"github.com/katalvlaran/eventchains/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the simple path 0-1-...-(n-1) with bidirectional edges emitted
// in increasing order. Weights come from cfg.weightFn, else DefaultEdgeWeight.
// Complexity: O(n).
func Path(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	weight := cfg.weights(ConstantWeightFn(DefaultEdgeWeight))
	rng := NewSimpleRNG(cfg.seed)

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for i := 1; i < n; i++ {
		if err = g.AddBidirectionalEdge(core.NodeID(i-1), core.NodeID(i), weight(rng)); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", methodPath, err, ErrConstructFailed)
		}
	}

	return g, nil
}
