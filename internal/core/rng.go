package core

import (
	"math"
	"math/rand/v2"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// SineSource evaluates the sine of an angle in radians.
type SineSource interface {
	Sin(x float64) float64
}

// SineFunc adapts a plain function to SineSource.
type SineFunc func(x float64) float64

// Sin calls f(x).
func (f SineFunc) Sin(x float64) float64 { return f(x) }

// StdSine is the math.Sin backed SineSource.
var StdSine SineSource = SineFunc(math.Sin)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }
