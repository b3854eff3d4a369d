package utils

import (
	"math"
	"math/rand"
	"time"
)

// RandSource is a seedable random number generator. Each engine or worker
// owns exactly one source so runs are reproducible per seed and independent
// streams never correlate.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed.
// A zero seed falls back to the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// StdNorm returns a standard normal deviate using the polar Box-Muller
// rejection transform: two uniform values in (-1, 1) are accepted when their
// sum of squares falls inside the unit circle, then mapped through a
// log/sqrt transform of the accepted pair.
func (r *RandSource) StdNorm() float64 {
	for {
		v1 := 2.0*r.rng.Float64() - 1.0
		v2 := 2.0*r.rng.Float64() - 1.0
		s := v1*v1 + v2*v2
		if s >= 1.0 || s == 0.0 {
			continue
		}
		return v1 * math.Sqrt(-2.0*math.Log(s)/s)
	}
}

// NormFloat64 returns a normally distributed random number with mean and stddev
func (r *RandSource) NormFloat64(mean, stddev float64) float64 {
	return mean + stddev*r.StdNorm()
}

// Global default random source
var defaultRand = NewRandSource(0)

// SetSeed sets the seed for the default random source
func SetSeed(seed int64) {
	defaultRand = NewRandSource(seed)
}

// Float64 returns a random float64 from the default source
func Float64() float64 {
	return defaultRand.Float64()
}

// Intn returns a random int from the default source
func Intn(n int) int {
	return defaultRand.Intn(n)
}

// NormFloat64 returns a normally distributed random number from the default source
func NormFloat64(mean, stddev float64) float64 {
	return defaultRand.NormFloat64(mean, stddev)
}

// UniformFloat64 returns a uniformly distributed random number from the default source
func UniformFloat64(min, max float64) float64 {
	return defaultRand.UniformFloat64(min, max)
}
