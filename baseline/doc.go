// Package baseline holds the hand-written Dijkstra variants each EventChains
// configuration is compared with. Each tier adds exactly the features the
// matching pattern configuration provides, so the measured difference is
// the cost of the pattern and not of the features.
//
//   - Tier1: three direct steps in one function, no error handling.
//     Compared with the optimized chain without middleware.
//   - Tier2: the same steps plus step names, step results and error
//     propagation. Compared with the optimized chain.
//   - Tier4: Tier2 plus per-step timing and optional log lines.
//     Compared with the optimized chain with logging and timing middleware.
//
// Tier 3 has no baseline of its own: it measures how the chain scales with
// the number of middleware layers.
package baseline
