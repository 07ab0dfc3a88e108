package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eventchains/bench"
	"github.com/katalvlaran/eventchains/history"
)

// Export file names inside the results directory.
const (
	YAMLFile = "results.yaml"
	JSONFile = "results.json"
)

// Environment describes the machine a run was taken on.
type Environment struct {
	GoVersion string `yaml:"go_version" json:"go_version"`
	GOOS      string `yaml:"goos" json:"goos"`
	GOARCH    string `yaml:"goarch" json:"goarch"`
	NumCPU    int    `yaml:"num_cpu" json:"num_cpu"`
}

// CurrentEnvironment reads the running process' environment.
func CurrentEnvironment() Environment {
	return Environment{
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// Run is everything exported for one harness invocation.
type Run struct {
	ID          string             `yaml:"id" json:"id"`
	StartedAt   time.Time          `yaml:"started_at" json:"started_at"`
	Environment Environment        `yaml:"environment" json:"environment"`
	Seed        uint64             `yaml:"seed" json:"seed"`
	MaxWeight   uint32             `yaml:"max_weight" json:"max_weight"`
	Methodology bench.Methodology  `yaml:"methodology" json:"methodology"`
	Cases       []bench.CaseResult `yaml:"cases" json:"cases"`
	Drift       []history.Drift    `yaml:"drift,omitempty" json:"drift,omitempty"`
}

// Export writes run to dir/results.yaml and dir/results.json, creating dir.
func Export(dir string, run Run) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: mkdir %s: %w", dir, err)
	}

	y, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("report: yaml marshal: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, YAMLFile), y, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", YAMLFile, err)
	}

	j, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("report: json marshal: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, JSONFile), j, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", JSONFile, err)
	}

	return nil
}
