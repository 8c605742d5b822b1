package quiz

import "math/rand/v2"

// Random is the randomness the generator draws from. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a deterministic source for seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DefaultRandom returns a source seeded from the runtime's random state.
func DefaultRandom() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
