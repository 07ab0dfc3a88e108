// SPDX-License-Identifier: MIT
// Package: eventchains/builder
//
// random_connected.go - implementation of RandomConnected(nodes, edges, maxWeight).
//
// Canonical model:
//   - Spanning tree first: for i = 1..nodes-1 attach i to parent = rng % i,
//     weight drawn next. This guarantees connectivity.
//   - Extra edges: draw (from, to) = (rng % nodes, rng % nodes); skip self
//     loops and pairs already present; draw the weight only when the pair
//     is accepted. Stop after `edges` undirected pairs in total or
//     edges*10 attempts, whichever comes first.
//
// Contract:
//   - nodes ≥ 1 (else ErrTooFewVertices); maxWeight ≥ 1 (else ErrBadWeight).
//   - edges < nodes-1 still yields the full spanning tree.
//   - Weight policy: cfg.weightFn if set, else 1 + rng % maxWeight.
//
// Complexity:
//   - Time: O(nodes + 10·edges) expected.
//   - Space: O(edges) for the pair set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eventchains/core"
)

const (
	methodRandomConnected   = "RandomConnected"
	minRandomConnectedNodes = 1
	attemptFactor           = 10
)

// pairKey is an unordered vertex pair with lo ≤ hi.
type pairKey struct{ lo, hi core.NodeID }

func newPairKey(a, b core.NodeID) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// RandomConnected returns a connected undirected graph (stored as pairs of
// arcs) over nodes vertices with up to edges distinct undirected edges.
func RandomConnected(nodes, edges int, maxWeight uint32, opts ...BuilderOption) (*core.Graph, error) {
	if nodes < minRandomConnectedNodes {
		return nil, fmt.Errorf("%s: nodes=%d < min=%d: %w",
			methodRandomConnected, nodes, minRandomConnectedNodes, ErrTooFewVertices)
	}
	if maxWeight == 0 {
		return nil, fmt.Errorf("%s: maxWeight=0: %w", methodRandomConnected, ErrBadWeight)
	}

	cfg := newBuilderConfig(opts...)
	weight := cfg.weights(UniformWeightFn(1, maxWeight))
	rng := NewSimpleRNG(cfg.seed)

	g, err := core.NewGraph(nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}
	seen := make(map[pairKey]struct{}, max(edges, nodes-1))

	// 1) Spanning tree.
	for i := 1; i < nodes; i++ {
		parent := core.NodeID(rng.Intn(i))
		w := weight(rng)
		child := core.NodeID(i)
		if err = g.AddBidirectionalEdge(parent, child, w); err != nil {
			return nil, fmt.Errorf("%s: tree edge %d↔%d: %v: %w",
				methodRandomConnected, parent, child, err, ErrConstructFailed)
		}
		seen[newPairKey(parent, child)] = struct{}{}
	}

	// 2) Extra random pairs.
	added := nodes - 1
	for attempts := 0; added < edges && attempts < edges*attemptFactor; attempts++ {
		from := core.NodeID(rng.Intn(nodes))
		to := core.NodeID(rng.Intn(nodes))
		if from == to {
			continue
		}
		key := newPairKey(from, to)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		w := weight(rng)
		if err = g.AddBidirectionalEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("%s: edge %d↔%d: %v: %w",
				methodRandomConnected, from, to, err, ErrConstructFailed)
		}
		added++
	}

	return g, nil
}
