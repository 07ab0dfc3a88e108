// Package config loads the harness configuration: the test matrix, the
// measurement methodology and where results go.
//
// Precedence: built-in defaults, then the YAML file (unknown keys are
// rejected), then environment variables, then command-line flags applied
// by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eventchains/bench"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvResultsDir = "EVENTCHAINS_RESULTS_DIR"
	EnvLog        = "EVENTCHAINS_LOG"
	EnvBacktrace  = "EVENTCHAINS_BACKTRACE"
)

// Defaults.
const (
	DefaultSeed        uint64 = 12345
	DefaultMaxWeight   uint32 = 100
	DefaultRuns               = 30
	DefaultOutputDir          = "results"
	DefaultHistoryFile        = "history.db"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full harness configuration.
type Config struct {
	Seed      uint64 `yaml:"seed" json:"seed"`
	MaxWeight uint32 `yaml:"max_weight" json:"max_weight"`

	Cases            []bench.Case      `yaml:"cases" json:"cases"`
	Methodology      bench.Methodology `yaml:"methodology" json:"methodology"`
	MiddlewareCounts []int             `yaml:"middleware_counts" json:"middleware_counts"`

	// Compare also runs the legacy profiling comparison per case.
	Compare bool `yaml:"compare" json:"compare"`
	// Histogram prints a latency histogram per tier pair.
	Histogram bool `yaml:"histogram" json:"histogram"`

	OutputDir   string `yaml:"output_dir" json:"output_dir"`
	HistoryPath string `yaml:"history_path" json:"history_path"`

	// LogLevel is the glog verbosity.
	LogLevel int `yaml:"log_level" json:"log_level"`
	// Backtrace enables stack traces in recovered failures.
	Backtrace bool `yaml:"backtrace" json:"backtrace"`
}

// DefaultCases is the standard test matrix; smaller graphs get more runs.
func DefaultCases() []bench.Case {
	return []bench.Case{
		{Nodes: 100, Edges: 500, Runs: 100},
		{Nodes: 500, Edges: 2500, Runs: 50},
		{Nodes: 1000, Edges: 5000, Runs: 30},
		{Nodes: 2000, Edges: 10000, Runs: 20},
	}
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Seed:             DefaultSeed,
		MaxWeight:        DefaultMaxWeight,
		Cases:            DefaultCases(),
		Methodology:      bench.DefaultMethodology(DefaultRuns),
		MiddlewareCounts: []int{0, 1, 3, 5, 10},
		OutputDir:        DefaultOutputDir,
		HistoryPath:      filepath.Join(DefaultOutputDir, DefaultHistoryFile),
	}
}

// Parse decodes YAML from r over the defaults. An empty document yields
// the defaults. Without an explicit history_path the history database
// lives under output_dir.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var explicit struct {
		HistoryPath *string `yaml:"history_path"`
	}
	if err := yaml.Unmarshal(data, &explicit); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if explicit.HistoryPath == nil {
		cfg.HistoryPath = filepath.Join(cfg.OutputDir, DefaultHistoryFile)
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Encode writes cfg as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

// MoveOutputDir sets OutputDir to dir. A history path still at its
// default location under the old directory moves along.
func (c *Config) MoveOutputDir(dir string) {
	if c.HistoryPath == filepath.Join(c.OutputDir, DefaultHistoryFile) {
		c.HistoryPath = filepath.Join(dir, DefaultHistoryFile)
	}
	c.OutputDir = dir
}

// ApplyEnv overlays environment variables read through lookup
// (os.LookupEnv in production).
//
//   - EVENTCHAINS_RESULTS_DIR moves OutputDir; a history path still at its
//     default location follows it.
//   - EVENTCHAINS_LOG sets LogLevel: an integer or one of info, debug, trace.
//   - EVENTCHAINS_BACKTRACE enables backtraces: a boolean or "full".
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if dir, ok := lookup(EnvResultsDir); ok && dir != "" {
		c.MoveOutputDir(dir)
	}

	if v, ok := lookup(EnvLog); ok && v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}

	if v, ok := lookup(EnvBacktrace); ok && v != "" {
		if strings.EqualFold(v, "full") {
			c.Backtrace = true
		} else {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvBacktrace, v, err)
			}
			c.Backtrace = b
		}
	}

	return nil
}

func parseLevel(v string) (int, error) {
	switch strings.ToLower(v) {
	case "info", "warn", "error":
		return 0, nil
	case "debug":
		return 1, nil
	case "trace":
		return 2, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q is not a level", ErrInvalidConfig, EnvLog, v)
	}
	return n, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.MaxWeight == 0 {
		return fmt.Errorf("%w: max_weight must be >= 1", ErrInvalidConfig)
	}
	if len(c.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrInvalidConfig)
	}
	for i, cs := range c.Cases {
		if cs.Nodes < 2 {
			return fmt.Errorf("%w: cases[%d]: nodes=%d < 2", ErrInvalidConfig, i, cs.Nodes)
		}
		if cs.Edges < cs.Nodes-1 {
			return fmt.Errorf("%w: cases[%d]: edges=%d cannot connect %d nodes",
				ErrInvalidConfig, i, cs.Edges, cs.Nodes)
		}
		if cs.Runs < 0 {
			return fmt.Errorf("%w: cases[%d]: runs=%d < 0", ErrInvalidConfig, i, cs.Runs)
		}
		if err := cs.Apply(c.Methodology).Validate(); err != nil {
			return fmt.Errorf("%w: cases[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	for i, n := range c.MiddlewareCounts {
		if n < 0 {
			return fmt.Errorf("%w: middleware_counts[%d]=%d < 0", ErrInvalidConfig, i, n)
		}
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	}
	if c.LogLevel < 0 {
		return fmt.Errorf("%w: log_level=%d < 0", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}
