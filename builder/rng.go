package builder

// DefaultSeed is the seed every benchmark fixture uses unless WithSeed says otherwise.
const DefaultSeed uint64 = 12345

// LCG constants (Knuth MMIX).
const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
	lcgOutShift          = 32
)

// SimpleRNG is a 64-bit linear congruential generator.
//
// It is deliberately tiny: fixtures must be bit-for-bit reproducible across
// Go releases, which math/rand does not promise for its stream.
// Not safe for concurrent use.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG returns a generator whose first output depends only on seed.
func NewSimpleRNG(seed uint64) *SimpleRNG {
	return &SimpleRNG{state: seed}
}

// Next advances the state and returns its upper 32 bits.
// Complexity: O(1).
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*lcgMultiplier + lcgIncrement // wraps mod 2^64

	return r.state >> lcgOutShift
}

// Intn returns Next() reduced modulo n. n must be > 0.
func (r *SimpleRNG) Intn(n int) int {
	return int(r.Next() % uint64(n))
}
