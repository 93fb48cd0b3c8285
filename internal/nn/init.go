package nn

import "math/rand"

// DefaultSeed seeds initialisation when no generator is supplied.
const DefaultSeed = 42

// Uniform draws n values from U(lo, hi).
func Uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	if rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		rng = rand.New(rand.NewSource(DefaultSeed))
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
