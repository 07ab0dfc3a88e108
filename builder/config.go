package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// seed initialises the constructor's SimpleRNG.
	seed uint64
	// weightFn draws edge weights; nil means "constructor default".
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weights resolves the effective WeightFn, falling back to def.
func (c builderConfig) weights(def WeightFn) WeightFn {
	if c.weightFn != nil {
		return c.weightFn
	}

	return def
}
