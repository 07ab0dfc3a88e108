// Package dijkstra_test validates the baseline Dijkstra implementation:
// input validation, small hand-checked graphs, tie-breaking, and agreement
// with a brute-force Bellman-Ford reference on generated fixtures.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eventchains/builder"
	"github.com/katalvlaran/eventchains/config"
	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, 0, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Run(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath(g, 2, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
	_, err = dijkstra.ShortestPath(g, 0, -1)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
}

// ------------------------------------------------------------------------
// 2. Hand-checked graphs
// ------------------------------------------------------------------------

// triangle: 0-1 (1), 1-2 (2), 0-2 (5).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddBidirectionalEdge(0, 1, 1))
	require.NoError(t, g.AddBidirectionalEdge(1, 2, 2))
	require.NoError(t, g.AddBidirectionalEdge(0, 2, 5))

	return g
}

func TestShortestPath_Triangle(t *testing.T) {
	res, err := dijkstra.ShortestPath(triangle(t), 0, 2)
	require.NoError(t, err)

	assert.True(t, res.Reachable)
	assert.Equal(t, uint32(3), res.Distance)
	assert.Equal(t, []core.NodeID{0, 1, 2}, res.Path)
}

func TestShortestPath_SourceIsTarget(t *testing.T) {
	res, err := dijkstra.ShortestPath(triangle(t), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), res.Distance)
	assert.Equal(t, []core.NodeID{1}, res.Path)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(2, 0, 1)) // wrong direction for 0→2

	res, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.False(t, res.Reachable)
	assert.Equal(t, dijkstra.Infinity, res.Distance)
	assert.Nil(t, res.Path)
}

func TestShortestPath_Golden(t *testing.T) {
	g, err := builder.RandomConnected(5, 6, 10)
	require.NoError(t, err)

	st, err := dijkstra.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 7, 10, 10, 14}, st.Distances)
	assert.Equal(t, []bool{true, true, true, true, true}, st.Visited)

	res, err := dijkstra.ShortestPath(g, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 3, 4}, res.Path)
}

func TestShortestPath_MatrixTargets(t *testing.T) {
	// Distances 0 → n-1 on the default benchmark graphs.
	want := map[int]uint32{100: 49, 500: 71, 1000: 49, 2000: 43}

	cases := config.DefaultCases()
	require.Len(t, cases, len(want))
	for _, cs := range cases {
		g, err := builder.RandomConnected(cs.Nodes, cs.Edges, config.DefaultMaxWeight,
			builder.WithSeed(config.DefaultSeed))
		require.NoError(t, err)
		res, err := dijkstra.ShortestPath(g, 0, core.NodeID(cs.Nodes-1))
		require.NoError(t, err)
		assert.True(t, res.Reachable)
		assert.Equal(t, want[cs.Nodes], res.Distance, "nodes=%d", cs.Nodes)
	}
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestShortestPath_EarlyExitAgrees(t *testing.T) {
	g, err := builder.RandomConnected(300, 1500, 40)
	require.NoError(t, err)

	for _, target := range []core.NodeID{0, 1, 150, 299} {
		full, err := dijkstra.ShortestPath(g, 0, target)
		require.NoError(t, err)
		early, err := dijkstra.ShortestPath(g, 0, target, dijkstra.WithEarlyExit())
		require.NoError(t, err)
		assert.Equal(t, full, early, "target=%d", target)
	}
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g, err := builder.Path(5, builder.WithWeightFn(builder.ConstantWeightFn(2)))
	require.NoError(t, err)

	res, err := dijkstra.ShortestPath(g, 0, 4, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	// Node 3 (distance 6) is never settled, so node 4 is never discovered.
	assert.False(t, res.Reachable)

	res, err = dijkstra.ShortestPath(g, 0, 2, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, uint32(4), res.Distance)
}

// ------------------------------------------------------------------------
// 4. Building blocks
// ------------------------------------------------------------------------

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, uint32(7), dijkstra.SaturatingAdd(3, 4))
	assert.Equal(t, dijkstra.Infinity, dijkstra.SaturatingAdd(dijkstra.Infinity, 1))
	assert.Equal(t, dijkstra.Infinity, dijkstra.SaturatingAdd(dijkstra.Infinity-1, 5))
}

func TestPriorityQueue_Order(t *testing.T) {
	pq := dijkstra.NewPriorityQueue(0)
	for _, it := range []dijkstra.Item{
		{Node: 1, Distance: 5},
		{Node: 2, Distance: 3},
		{Node: 7, Distance: 3},
		{Node: 4, Distance: 9},
		{Node: 0, Distance: 0},
	} {
		pq.Push(it)
	}
	top, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, core.NodeID(0), top.Node)

	var order []core.NodeID
	for pq.Len() > 0 {
		it, _ := pq.Pop()
		order = append(order, it.Node)
	}
	// Ties on distance 3: larger id first.
	assert.Equal(t, []core.NodeID{0, 7, 2, 1, 4}, order)

	_, ok = pq.Pop()
	assert.False(t, ok)
}

func TestSettle_SkipsStale(t *testing.T) {
	g := triangle(t)
	st := dijkstra.NewState(g.NodeCount(), 0)
	pq := dijkstra.NewPriorityQueue(4)

	assert.True(t, st.Settle(g, pq, dijkstra.Item{Node: 0, Distance: 0}))
	assert.Equal(t, 2, pq.Len(), "both neighbours improved")
	assert.False(t, st.Settle(g, pq, dijkstra.Item{Node: 0, Distance: 0}), "already visited")
	assert.False(t, st.Settle(g, pq, dijkstra.Item{Node: 2, Distance: 9}), "worse than recorded")
}

func TestReconstruct_PartialState(t *testing.T) {
	st := dijkstra.NewState(3, 0)
	res := dijkstra.Reconstruct(st, 0, 2)
	assert.False(t, res.Reachable)
	assert.Equal(t, core.NodeID(2), res.Target)
}

// ------------------------------------------------------------------------
// 5. Reference agreement
// ------------------------------------------------------------------------

// bellmanFord is an O(VE) reference used only to cross-check distances.
func bellmanFord(g *core.Graph, source core.NodeID) []uint32 {
	dist := make([]uint32, g.NodeCount())
	for i := range dist {
		dist[i] = dijkstra.Infinity
	}
	dist[source] = 0
	for round := 0; round < g.NodeCount(); round++ {
		changed := false
		g.Edges(func(from core.NodeID, e core.Edge) bool {
			if dist[from] == dijkstra.Infinity {
				return true
			}
			if nd := dist[from] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				changed = true
			}
			return true
		})
		if !changed {
			break
		}
	}

	return dist
}

func TestRun_AgreesWithBellmanFord(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 12345} {
		g, err := builder.RandomConnected(150, 600, 25, builder.WithSeed(seed))
		require.NoError(t, err)

		st, err := dijkstra.Run(g, 0)
		require.NoError(t, err)
		assert.Equal(t, bellmanFord(g, 0), st.Distances, "seed=%d", seed)
	}
}
