// SPDX-License-Identifier: MIT
// Package: eventchains/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package builder

// BuilderOption customizes a constructor by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithSeed replaces DefaultSeed for the constructor's SimpleRNG.
// Complexity: O(1).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// For RandomConnected the override replaces the maxWeight-derived draw.
// Complexity: O(1).
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
