// Package bench is the measurement harness: it drives the baseline and
// pattern-based implementations over identical inputs and turns raw run
// times and allocator counters into comparable statistics.
//
// Methodology (fixed and exported with every result):
//
//   - Warmup unmeasured calls precede the measured runs (default 1).
//   - Each measured run is timed individually with the monotonic clock.
//   - With CollectMemory, runtime.MemStats is read around every run outside
//     the timed window; PeakMemory is the largest single-run allocation
//     volume, totals cover the whole measured loop.
//   - TrimFraction drops that share of samples from each end of the sorted
//     sample set before statistics (0 = keep everything).
//   - Median averages the middle pair on even counts; standard deviation is
//     the population value; P95/P99 take the sample at floor(n·p).
//
// Suites:
//
//   - RunTiers: Tier 1/2/4 baseline-vs-chain pairs and Tier 3 middleware scaling.
//   - Compare:  early-exit textbook Dijkstra vs bare, full and optimized chains.
//   - Verify:   every implementation must agree before anything is timed.
package bench
