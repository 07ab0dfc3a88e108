package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/eventchains/bench"
	"github.com/katalvlaran/eventchains/history"
)

// StoreSuite runs every test against a fresh database.
type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *history.Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	st, err := history.Open(filepath.Join(s.T().TempDir(), "nested", "history.db"))
	require.NoError(s.T(), err)
	s.store = st
}

func (s *StoreSuite) TearDownTest() {
	_ = s.store.Close()
}

// TestRecordPrevious checks that Previous skips the asking run and returns
// the newest other one.
func (s *StoreSuite) TestRecordPrevious() {
	t0 := time.Unix(1_700_000_000, 0)

	_, _, ok, err := s.store.Previous(s.ctx, "r1", "100n/500e", "tier1/baseline")
	s.Require().NoError(err)
	s.False(ok)

	first := history.Measurement{Case: "100n/500e", Series: "tier1/baseline",
		Mean: 100 * time.Microsecond, Median: 90 * time.Microsecond, P95: 150 * time.Microsecond,
		PeakMemory: 4096, Runs: 100}
	s.Require().NoError(s.store.Record(s.ctx, "r1", t0, first))

	second := first
	second.Mean = 120 * time.Microsecond
	s.Require().NoError(s.store.Record(s.ctx, "r2", t0.Add(time.Hour), second))

	got, prevRun, ok, err := s.store.Previous(s.ctx, "r3", "100n/500e", "tier1/baseline")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("r2", prevRun)
	s.Equal(second, got)

	got, prevRun, ok, err = s.store.Previous(s.ctx, "r2", "100n/500e", "tier1/baseline")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("r1", prevRun)
	s.Equal(first, got)

	runs, err := s.store.Runs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"r2", "r1"}, runs)
}

// TestRecordReplacesSameRun checks the (run, case, series) key.
func (s *StoreSuite) TestRecordReplacesSameRun() {
	m := history.Measurement{Case: "c", Series: "s", Mean: 10}
	s.Require().NoError(s.store.Record(s.ctx, "r1", time.Unix(1, 0), m))
	m.Mean = 20
	s.Require().NoError(s.store.Record(s.ctx, "r1", time.Unix(2, 0), m))

	got, _, ok, err := s.store.Previous(s.ctx, "other", "c", "s")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(time.Duration(20), got.Mean)

	runs, err := s.store.Runs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"r1"}, runs)
}

// TestDrift checks deltas, skipped new series and a zero previous mean.
func (s *StoreSuite) TestDrift() {
	s.Require().NoError(s.store.Record(s.ctx, "old", time.Unix(10, 0),
		history.Measurement{Case: "c", Series: "a", Mean: 200},
		history.Measurement{Case: "c", Series: "z", Mean: 0},
	))

	current := []history.Measurement{
		{Case: "c", Series: "a", Mean: 250},
		{Case: "c", Series: "new", Mean: 5},
		{Case: "c", Series: "z", Mean: 7},
	}
	drift, err := s.store.Drift(s.ctx, "now", current)
	s.Require().NoError(err)
	s.Require().Len(drift, 2)

	s.Equal("a", drift[0].Series)
	s.Equal("old", drift[0].PreviousRun)
	s.Equal(time.Duration(200), drift[0].Previous)
	s.Equal(time.Duration(250), drift[0].Current)
	s.InDelta(25.0, drift[0].DeltaPct, 1e-9)
	s.Zero(drift[1].DeltaPct)
}

// TestClosed checks every method on a closed store.
func (s *StoreSuite) TestClosed() {
	s.Require().NoError(s.store.Close())

	s.ErrorIs(s.store.Close(), history.ErrClosed)
	s.ErrorIs(s.store.Record(s.ctx, "r", time.Now()), history.ErrClosed)
	_, _, _, err := s.store.Previous(s.ctx, "r", "c", "s")
	s.ErrorIs(err, history.ErrClosed)
	_, err = s.store.Runs(s.ctx)
	s.ErrorIs(err, history.ErrClosed)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func TestFlatten(t *testing.T) {
	r := bench.CaseResult{
		Case: bench.Case{Nodes: 100, Edges: 500},
		Tiers: bench.TierResults{
			Tier1: bench.Pair{Baseline: bench.Metrics{Mean: 1}, Tested: bench.Metrics{Mean: 2}},
			Tier3: []bench.Scaling{{Middleware: 0}, {Middleware: 5, Metrics: bench.Metrics{Mean: 9, Runs: 3}}},
		},
	}
	ms := history.Flatten(r)
	require.Len(t, ms, 8)
	require.Equal(t, "100n/500e", ms[0].Case)
	require.Equal(t, "tier1/baseline", ms[0].Series)
	require.Equal(t, time.Duration(2), ms[1].Mean)
	require.Equal(t, "tier3/5", ms[5].Series)
	require.Equal(t, 3, ms[5].Runs)
	require.Equal(t, "tier4/eventchains", ms[7].Series)

	r.Comparison = &bench.Comparison{Optimized: bench.Metrics{Mean: 4}}
	ms = history.Flatten(r)
	require.Len(t, ms, 12)
	require.Equal(t, "compare/optimized", ms[11].Series)
	require.Equal(t, time.Duration(4), ms[11].Mean)
}
