package pathchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eventchains/builder"
	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
	"github.com/katalvlaran/eventchains/eventchain"
	"github.com/katalvlaran/eventchains/pathchain"
)

func TestVariants_AgreeWithBaseline(t *testing.T) {
	fixtures := map[string]func() (*core.Graph, error){
		"random": func() (*core.Graph, error) { return builder.RandomConnected(300, 1500, 40) },
		"path":   func() (*core.Graph, error) { return builder.Path(64) },
		"grid":   func() (*core.Graph, error) { return builder.Grid(8, 9) },
	}
	for fname, mk := range fixtures {
		g, err := mk()
		require.NoError(t, err)
		last := core.NodeID(g.NodeCount() - 1)

		for _, target := range []core.NodeID{0, last / 2, last} {
			want, err := dijkstra.ShortestPath(g, 0, target)
			require.NoError(t, err)

			for vname, run := range pathchain.Variants() {
				got, err := run(g, 0, target)
				require.NoError(t, err, "%s/%s", fname, vname)
				assert.Equal(t, want, got, "%s/%s target=%d", fname, vname, target)
			}
		}
	}
}

func TestWithMiddleware_Counts(t *testing.T) {
	g, err := builder.RandomConnected(50, 200, 10)
	require.NoError(t, err)
	want, err := dijkstra.ShortestPath(g, 0, 49)
	require.NoError(t, err)

	for _, n := range []int{-1, 0, 1, 3, 5, 10} {
		got, err := pathchain.WithMiddleware(g, 0, 49, n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestRunners_BadInput(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)

	_, err = pathchain.Bare(g, 9, 0)
	assert.ErrorIs(t, err, pathchain.ErrChainFailed)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
	assert.Contains(t, err.Error(), "FAILED")

	_, err = pathchain.Optimized(g, 0, 9)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)

	_, err = pathchain.Full(nil, 0, 0, false)
	assert.ErrorIs(t, err, pathchain.ErrChainFailed)
}

func TestFull_VerboseStillCorrect(t *testing.T) {
	g, err := builder.Path(5)
	require.NoError(t, err)

	res, err := pathchain.Full(g, 0, 4, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), res.Distance)

	res, err = pathchain.OptimizedWithMiddleware(g, 4, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{4, 3, 2, 1, 0}, res.Path)
}

func TestProcessNode_SettlesOneVertexPerCall(t *testing.T) {
	g, err := builder.RandomConnected(40, 160, 20)
	require.NoError(t, err)

	ec := eventchain.NewContext()
	ec.Set(pathchain.KeyGraph, g)
	require.NoError(t, pathchain.InitializeState{Source: 0, NodeCount: g.NodeCount()}.Execute(ec))
	require.NoError(t, pathchain.InitializePriorityQueue{}.Execute(ec))

	st := eventchain.MustValue[*dijkstra.State](ec, pathchain.KeyState)
	visited := func() int {
		n := 0
		for _, v := range st.Visited {
			if v {
				n++
			}
		}
		return n
	}

	for i := 1; i <= g.NodeCount(); i++ {
		require.NoError(t, pathchain.ProcessNode{}.Execute(ec))
		assert.Equal(t, i, visited(), "after %d calls", i)
	}

	// One more call drains any stale entries and settles nothing.
	require.NoError(t, pathchain.ProcessNode{}.Execute(ec))
	assert.Equal(t, g.NodeCount(), visited())
	assert.False(t, eventchain.MustValue[bool](ec, pathchain.KeyContinue))
}

func TestEvents_MissingKeys(t *testing.T) {
	ec := eventchain.NewContext()

	assert.ErrorIs(t, pathchain.InitializePriorityQueue{}.Execute(ec), eventchain.ErrMissingKey)
	assert.ErrorIs(t, pathchain.ProcessNode{}.Execute(ec), eventchain.ErrMissingKey)
	assert.ErrorIs(t, pathchain.ProcessAllNodes{}.Execute(ec), eventchain.ErrMissingKey)
	assert.ErrorIs(t, pathchain.FinalizeResult{Target: 0}.Execute(ec), eventchain.ErrMissingKey)

	ec.Set(pathchain.KeySource, 0) // int, not core.NodeID
	ec.Set(pathchain.KeyGraph, (*core.Graph)(nil))
	assert.ErrorIs(t, pathchain.InitializePriorityQueue{}.Execute(ec), eventchain.ErrTypeMismatch)

	ec.Set(pathchain.KeySource, core.NodeID(0))
	assert.ErrorIs(t, pathchain.InitializePriorityQueue{}.Execute(ec), dijkstra.ErrNilGraph)
}

func TestFinalizeResult_ConsumesState(t *testing.T) {
	ec := eventchain.NewContext()
	require.NoError(t, pathchain.InitializeState{Source: 1, NodeCount: 3}.Execute(ec))
	require.NoError(t, pathchain.FinalizeResult{Target: 1}.Execute(ec))

	assert.False(t, ec.Has(pathchain.KeyState))
	assert.False(t, ec.Has(pathchain.KeySource))
	res := eventchain.MustValue[dijkstra.Result](ec, pathchain.KeyResult)
	assert.Equal(t, []core.NodeID{1}, res.Path)
}
