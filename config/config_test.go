package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eventchains/bench"
	"github.com/katalvlaran/eventchains/config"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.Equal(t, uint32(100), cfg.MaxWeight)
	assert.Equal(t, []bench.Case{
		{Nodes: 100, Edges: 500, Runs: 100},
		{Nodes: 500, Edges: 2500, Runs: 50},
		{Nodes: 1000, Edges: 5000, Runs: 30},
		{Nodes: 2000, Edges: 10000, Runs: 20},
	}, cfg.Cases)
	assert.Equal(t, 1, cfg.Methodology.Warmup)
	assert.Zero(t, cfg.Methodology.TrimFraction)
	assert.Equal(t, []int{0, 1, 3, 5, 10}, cfg.MiddlewareCounts)
	assert.Equal(t, "results", cfg.OutputDir)
	assert.Equal(t, filepath.Join("results", "history.db"), cfg.HistoryPath)
}

func TestParse_OverridesDefaults(t *testing.T) {
	src := `
seed: 7
cases:
  - {nodes: 10, edges: 20, runs: 5}
methodology:
  warmup: 3
  runs: 9
  trim_fraction: 0.1
compare: true
`
	cfg, err := config.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, []bench.Case{{Nodes: 10, Edges: 20, Runs: 5}}, cfg.Cases)
	assert.Equal(t, 3, cfg.Methodology.Warmup)
	assert.Equal(t, 9, cfg.Methodology.Runs)
	assert.InDelta(t, 0.1, cfg.Methodology.TrimFraction, 1e-12)
	assert.True(t, cfg.Compare)
	// Untouched keys keep their defaults.
	assert.Equal(t, uint32(100), cfg.MaxWeight)
	assert.Equal(t, "results", cfg.OutputDir)
}

func TestParse_EmptyAndUnknown(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Parse(strings.NewReader("seeed: 1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse(strings.NewReader("seed: [\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParse_HistoryFollowsOutputDir(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("output_dir: /tmp/bench\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bench", cfg.OutputDir)
	assert.Equal(t, filepath.Join("/tmp/bench", "history.db"), cfg.HistoryPath)

	cfg, err = config.Parse(strings.NewReader("output_dir: /tmp/bench\nhistory_path: results/history.db\n"))
	require.NoError(t, err)
	assert.Equal(t, "results/history.db", cfg.HistoryPath)

	cfg, err = config.Parse(strings.NewReader("output_dir: /tmp/bench\nhistory_path: \"\"\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.HistoryPath)
}

func TestMoveOutputDir(t *testing.T) {
	cfg := config.Default()
	cfg.MoveOutputDir("/tmp/a")
	assert.Equal(t, "/tmp/a", cfg.OutputDir)
	assert.Equal(t, filepath.Join("/tmp/a", "history.db"), cfg.HistoryPath)

	cfg.HistoryPath = "/var/lib/h.db"
	cfg.MoveOutputDir("/tmp/b")
	assert.Equal(t, "/tmp/b", cfg.OutputDir)
	assert.Equal(t, "/var/lib/h.db", cfg.HistoryPath)
}

func TestLoad_RoundTrip(t *testing.T) {
	want := config.Default()
	want.Seed = 99
	want.Histogram = true
	want.Cases = want.Cases[:2]

	var buf bytes.Buffer
	require.NoError(t, want.Encode(&buf))

	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{
		config.EnvResultsDir: "/tmp/out",
		config.EnvLog:        "debug",
		config.EnvBacktrace:  "full",
	})))
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, filepath.Join("/tmp/out", "history.db"), cfg.HistoryPath)
	assert.Equal(t, 1, cfg.LogLevel)
	assert.True(t, cfg.Backtrace)

	// A custom history path is left alone.
	cfg = config.Default()
	cfg.HistoryPath = "/var/lib/h.db"
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{
		config.EnvResultsDir: "elsewhere",
		config.EnvLog:        "3",
		config.EnvBacktrace:  "0",
	})))
	assert.Equal(t, "/var/lib/h.db", cfg.HistoryPath)
	assert.Equal(t, 3, cfg.LogLevel)
	assert.False(t, cfg.Backtrace)

	// Nothing set changes nothing.
	cfg = config.Default()
	require.NoError(t, cfg.ApplyEnv(env(nil)))
	assert.Equal(t, config.Default(), cfg)
}

func TestApplyEnv_Invalid(t *testing.T) {
	for _, kv := range [][2]string{
		{config.EnvLog, "loud"},
		{config.EnvLog, "-1"},
		{config.EnvBacktrace, "sometimes"},
	} {
		cfg := config.Default()
		err := cfg.ApplyEnv(env(map[string]string{kv[0]: kv[1]}))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, "%s=%s", kv[0], kv[1])
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"max weight":   func(c *config.Config) { c.MaxWeight = 0 },
		"no cases":     func(c *config.Config) { c.Cases = nil },
		"tiny graph":   func(c *config.Config) { c.Cases = []bench.Case{{Nodes: 1, Edges: 0}} },
		"sparse graph": func(c *config.Config) { c.Cases = []bench.Case{{Nodes: 10, Edges: 5}} },
		"neg runs":     func(c *config.Config) { c.Cases = []bench.Case{{Nodes: 10, Edges: 9, Runs: -1}} },
		"trim":         func(c *config.Config) { c.Methodology.TrimFraction = 0.7 },
		"zero runs":    func(c *config.Config) { c.Methodology.Runs = 0; c.Cases = []bench.Case{{Nodes: 2, Edges: 1}} },
		"counts":       func(c *config.Config) { c.MiddlewareCounts = []int{1, -2} },
		"output":       func(c *config.Config) { c.OutputDir = "" },
		"log level":    func(c *config.Config) { c.LogLevel = -1 },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig, name)
	}

	// Case runs override a zero methodology default.
	cfg := config.Default()
	cfg.Methodology.Runs = 0
	assert.NoError(t, cfg.Validate())
}
