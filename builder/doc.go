// Package builder provides deterministic graph fixtures for the benchmark
// harness and its tests.
//
// The package offers the following key components:
//
//   - Randomness:
//     – SimpleRNG:        64-bit linear congruential generator; the same seed
//     always yields the same stream on every platform.
//   - Constructors:
//     – RandomConnected:  spanning tree plus random extra edges (benchmark input).
//     – Path:             0-1-...-(n-1), the worst case for queue depth.
//     – Grid:             rows×cols lattice with 4-neighbourhood.
//   - Configuration primitives:
//     – BuilderOption:    function that mutates builderConfig before use.
//     – WithSeed, WithWeightFn.
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same parameters and seed ⇒ identical graphs, arc by arc.
//   - Every generated edge is bidirectional; no self-loops, no parallel pairs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping ErrTooFewVertices / ErrBadWeight.
package builder
