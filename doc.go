// Package eventchains measures what the event-chain pattern costs.
//
// 🚀 What is being measured?
//
//	The same computation, Dijkstra's shortest path on a fixed seeded
//	random graph, written twice:
//		• directly, with typed state and monomorphic calls
//		• as an event chain: discrete events over a shared, dynamically
//		  typed context, dispatched through a middleware stack
//
//	The difference in time and memory is the pattern's overhead.
//
// ✨ Four tiers
//
//   - Tier 1: bare function calls vs the chain with no middleware
//   - Tier 2: an instrumented baseline with step tracking vs the same chain
//   - Tier 3: the chain with 0..N no-op middleware layers (cost per layer)
//   - Tier 4: manual logging and timing vs logging and timing middleware
//
// Packages:
//
//	core/         static weighted adjacency-list graph
//	builder/      deterministic RandomConnected, Path and Grid fixtures
//	dijkstra/     direct Dijkstra, typed priority queue, shared relaxation
//	baseline/     Tier 1, 2 and 4 baselines
//	eventchain/   Context, Event, Middleware, Chain and fault tolerance
//	middleware/   logging, timing, counters, no-op and recovery middleware
//	pathchain/    Dijkstra as events, plus every runner variant
//	bench/        methodology, measurement, statistics and suites
//	report/       terminal reports, histograms, YAML/JSON export
//	config/       YAML configuration with environment overrides
//	history/      SQLite log of past runs and drift
//
// Run the whole matrix:
//
//	go run ./cmd/eventchains-bench
//
// Results land in ./results (override with -out or EVENTCHAINS_RESULTS_DIR).
package eventchains
