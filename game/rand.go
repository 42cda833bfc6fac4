package game

import "math/rand"

// Rand is the randomness the simulation consumes: serve angles and unbiased
// serve directions. Injected so tests can fix the seed or script draws.
type Rand interface {
	// Between returns a uniform float64 in [min, max).
	Between(min, max float64) float64
	// Bool returns a fair coin flip.
	Bool() bool
}

type mathRand struct {
	src *rand.Rand
}

// NewRand returns a math/rand backed source seeded with seed.
func NewRand(seed int64) Rand {
	return &mathRand{src: rand.New(rand.NewSource(seed))}
}

func (r *mathRand) Between(min, max float64) float64 {
	return min + r.src.Float64()*(max-min)
}

func (r *mathRand) Bool() bool {
	return r.src.Intn(2) == 0
}
