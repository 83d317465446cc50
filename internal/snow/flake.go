package snow

import (
	"math"

	"mad-snow/internal/core"
)

// Flake is a single falling particle.
type Flake struct {
	X, Y   float64
	Seed   float64
	Radius float64
}

// Physics bundles the constants and services flakes move with.
type Physics struct {
	Bounds        core.Size
	Velocity      float64
	RadiusLow     float64
	RadiusHigh    float64
	RespawnJitter float64

	Osc  Oscillator
	Rand core.RandomSource
}

// Randomize places the flake uniformly inside the bounds with a fresh seed
// and spin radius.
func (f *Flake) Randomize(p *Physics) {
	f.X = p.Rand.Float64() * float64(p.Bounds.W)
	f.Y = p.Rand.Float64() * float64(p.Bounds.H)
	f.Seed = p.Osc.RandomSeed(p.Rand)
	f.Radius = p.Rand.Float64()*(p.RadiusHigh-p.RadiusLow) + p.RadiusLow
}

// Respawn randomizes the flake and lifts it just above the top edge.
func (f *Flake) Respawn(p *Physics) {
	f.Randomize(p)
	f.Y = -(p.Rand.Float64() * p.RespawnJitter)
}

// Advance applies one frame of fall and sway.
func (f *Flake) Advance(p *Physics) {
	f.Y += p.Velocity
	var s float64
	f.Seed, s = p.Osc.Advance(f.Seed)
	f.X += s * f.Radius
}

// Cell returns the pixel the flake occupies. Rows above the top edge pin to
// row 0 so flakes entering the buffer are drawn on it.
func (f *Flake) Cell() (int, int) {
	x := int(math.Floor(f.X))
	y := 0
	if f.Y > 0 {
		y = int(f.Y)
	}
	return x, y
}
