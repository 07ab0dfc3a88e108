package builder

import (
	"fmt"

	"github.com/katalvlaran/eventchains/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols lattice. Vertex (r, c) has NodeID r*cols + c and
// is joined to its right and lower neighbours (row-major emission order).
// Weights come from cfg.weightFn, else DefaultEdgeWeight.
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...BuilderOption) (*core.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	weight := cfg.weights(ConstantWeightFn(DefaultEdgeWeight))
	rng := NewSimpleRNG(cfg.seed)

	g, err := core.NewGraph(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGrid, err)
	}

	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u := core.NodeID(r*cols + c)
			if c+1 < cols {
				if err = g.AddBidirectionalEdge(u, u+1, weight(rng)); err != nil {
					return nil, fmt.Errorf("%s: %v: %w", methodGrid, err, ErrConstructFailed)
				}
			}
			if r+1 < rows {
				if err = g.AddBidirectionalEdge(u, u+core.NodeID(cols), weight(rng)); err != nil {
					return nil, fmt.Errorf("%s: %v: %w", methodGrid, err, ErrConstructFailed)
				}
			}
		}
	}

	return g, nil
}
