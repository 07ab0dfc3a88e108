// Command eventchains-bench measures the overhead of the event-chain
// pattern against direct Dijkstra implementations.
//
// With no arguments it runs the default matrix, prints the reports and
// writes results.yaml, results.json and the history database under
// ./results. Exit status is 0 on success and 1 on any failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/eventchains/bench"
	"github.com/katalvlaran/eventchains/config"
	"github.com/katalvlaran/eventchains/history"
	"github.com/katalvlaran/eventchains/report"
)

type options struct {
	configPath string
	outDir     string
	historyDB  string
	noHistory  bool
	compare    bool
	histogram  bool
	color      bool
	cpuProfile string
	memProfile string
}

func parseFlags() (options, map[string]bool) {
	var o options
	flag.StringVar(&o.configPath, "config", "", "YAML configuration file")
	flag.StringVar(&o.outDir, "out", "", "results directory (overrides config and "+config.EnvResultsDir+")")
	flag.StringVar(&o.historyDB, "history", "", "history database path (overrides config)")
	flag.BoolVar(&o.noHistory, "no-history", false, "do not record or compare with earlier runs")
	flag.BoolVar(&o.compare, "compare", false, "also run the legacy profiling comparison")
	flag.BoolVar(&o.histogram, "histogram", false, "print latency histograms")
	flag.BoolVar(&o.color, "color", true, "colored output when stdout is a terminal")
	flag.StringVar(&o.cpuProfile, "cpuprofile", "", "write a CPU profile to `file`")
	flag.StringVar(&o.memProfile, "memprofile", "", "write a heap profile to `file`")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return o, set
}

// loadConfig merges defaults, file, environment and flags.
func loadConfig(o options, set map[string]bool) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if set["out"] {
		cfg.MoveOutputDir(o.outDir)
	}
	if set["history"] {
		cfg.HistoryPath = o.historyDB
	}
	if set["compare"] {
		cfg.Compare = o.compare
	}
	if set["histogram"] {
		cfg.Histogram = o.histogram
	}
	if o.noHistory {
		cfg.HistoryPath = ""
	}

	return cfg, cfg.Validate()
}

// setupLogging maps the configured level onto glog unless -v was given.
func setupLogging(cfg config.Config, set map[string]bool) {
	if !set["logtostderr"] && !set["log_dir"] {
		_ = flag.Set("logtostderr", "true")
	}
	if !set["v"] && cfg.LogLevel > 0 {
		_ = flag.Set("v", strconv.Itoa(cfg.LogLevel))
	}
	if cfg.Backtrace {
		debug.SetTraceback("all")
	}
}

func progress() bench.Observer {
	return func(label string, run, runs int) {
		switch run {
		case 0:
			fmt.Printf("  Benchmarking %s (%d runs)...", label, runs)
		case runs:
			fmt.Println(" ✓")
		}
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	o, set := parseFlags()
	defer glog.Flush()

	cfg, err := loadConfig(o, set)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eventchains-bench:", err)
		return 1
	}
	setupLogging(cfg, set)

	if o.cpuProfile != "" {
		f, err := os.Create(o.cpuProfile)
		if err != nil {
			glog.Errorf("cpuprofile: %v", err)
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Errorf("cpuprofile: %v", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	pr := report.NewPrinter(os.Stdout, o.color)
	pr.Banner("EventChains Comprehensive Performance Analysis")
	fmt.Printf("\nseed=%d max_weight=%d warmup=%d trim=%.2f go=%s %s/%s\n",
		cfg.Seed, cfg.MaxWeight, cfg.Methodology.Warmup, cfg.Methodology.TrimFraction,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	pipe := newPipeline(cfg, progress())
	out := report.Run{
		ID:          started.UTC().Format("20060102T150405Z"),
		StartedAt:   started,
		Environment: report.CurrentEnvironment(),
		Seed:        cfg.Seed,
		MaxWeight:   cfg.MaxWeight,
		Methodology: cfg.Methodology,
	}

	for _, cs := range cfg.Cases {
		fmt.Printf("\n\n=== TEST CASE: %d nodes, %d edges, %d runs ===\n",
			cs.Nodes, cs.Edges, cs.Apply(cfg.Methodology).Runs)
		res, err := pipe.run(ctx, cs)
		if err != nil {
			glog.Errorf("%v", err)
			return 1
		}
		fmt.Printf("  source %d, target %d, distance %d\n", res.Source, res.Target, res.Distance)

		pr.Tiers(res.Tiers)
		if res.Comparison != nil {
			pr.LegacyComparison(cs, *res.Comparison)
		}
		if cfg.Histogram {
			if err := pr.Histograms(res.Tiers, report.DefaultBins); err != nil {
				glog.Errorf("%v", err)
				return 1
			}
		}
		pr.ExecutiveSummary(cs, res.Tiers)
		out.Cases = append(out.Cases, res)
	}
	glog.V(1).Infof("pipeline dispatched %d stages", pipe.stages.Count())

	if cfg.HistoryPath != "" {
		drift, err := recordHistory(ctx, cfg.HistoryPath, out)
		if err != nil {
			glog.Errorf("%v", err)
			return 1
		}
		out.Drift = drift
		pr.Drift(drift)
	}

	if err := report.Export(cfg.OutputDir, out); err != nil {
		glog.Errorf("%v", err)
		return 1
	}
	fmt.Printf("\nResults written to %s (%s)\n", cfg.OutputDir, time.Since(started).Round(time.Millisecond))

	if o.memProfile != "" {
		f, err := os.Create(o.memProfile)
		if err != nil {
			glog.Errorf("memprofile: %v", err)
			return 1
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			glog.Errorf("memprofile: %v", err)
			return 1
		}
	}

	return 0
}

// recordHistory stores every series of r and returns the drift against
// the previous run.
func recordHistory(ctx context.Context, path string, r report.Run) ([]history.Drift, error) {
	st, err := history.Open(path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	var current []history.Measurement
	for _, cr := range r.Cases {
		current = append(current, history.Flatten(cr)...)
	}
	drift, err := st.Drift(ctx, r.ID, current)
	if err != nil {
		return nil, err
	}
	if err := st.Record(ctx, r.ID, r.StartedAt, current...); err != nil {
		return nil, err
	}

	return drift, nil
}
