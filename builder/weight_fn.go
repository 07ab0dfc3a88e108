package builder

import "fmt"

// DefaultEdgeWeight is the weight used by Path and Grid when no WeightFn is set.
const DefaultEdgeWeight uint32 = 1

// WeightFn produces an edge weight from the constructor's RNG.
// It must only consume the RNG it is given so fixtures stay reproducible.
type WeightFn func(rng *SimpleRNG) uint32

// ConstantWeightFn returns a WeightFn that always yields value and never
// touches the RNG.
// Complexity: O(1).
func ConstantWeightFn(value uint32) WeightFn {
	return func(_ *SimpleRNG) uint32 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] as
// min + Next() % (max-min+1). Panics if max < min.
// A nil RNG yields min.
// Complexity: O(1).
func UniformWeightFn(min, max uint32) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := uint64(max) - uint64(min) + 1 // up to 2^32, fits in uint64

	return func(rng *SimpleRNG) uint32 {
		if rng == nil {
			return min
		}

		return min + uint32(rng.Next()%span)
	}
}
