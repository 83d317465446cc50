package snow

import (
	"math"

	"mad-snow/internal/core"
)

// TableSize is the number of sine samples, one per hundredth of a radian over a full turn.
const TableSize = 628

// angleSpan is the range a raw-angle seed is drawn from.
const angleSpan = 6.28

// SineTable holds precomputed sine samples indexed by phase seed.
type SineTable []float64

// NewSineTable samples sine at i/100 radians for every index. With truncated
// set the angle is i/100 rounded down, which repeats seven values in runs of
// one hundred.
func NewSineTable(sine core.SineSource, size int, truncated bool) SineTable {
	if size <= 0 {
		size = TableSize
	}
	t := make(SineTable, size)
	for i := range t {
		angle := float64(i) / 100
		if truncated {
			angle = float64(i / 100)
		}
		t[i] = sine.Sin(angle)
	}
	return t
}

// Oscillator maps a flake's phase seed to lateral sway.
type Oscillator interface {
	// RandomSeed draws a fresh seed.
	RandomSeed(rng core.RandomSource) float64
	// Advance moves the seed forward by one frame and returns it with its sine.
	Advance(seed float64) (next, sine float64)
}

// TableOscillator steps an integral seed through a SineTable.
type TableOscillator struct {
	Table SineTable
	Speed int
}

// NewTableOscillator returns an oscillator stepping speed entries per frame.
func NewTableOscillator(table SineTable, speed int) *TableOscillator {
	return &TableOscillator{Table: table, Speed: speed}
}

// RandomSeed returns an index in [0, len(table)).
func (o *TableOscillator) RandomSeed(rng core.RandomSource) float64 {
	return math.Floor(rng.Float64() * float64(len(o.Table)))
}

// Advance returns (seed+speed) mod len(table) and the sample stored there.
func (o *TableOscillator) Advance(seed float64) (float64, float64) {
	n := len(o.Table)
	i := (int(seed) + o.Speed) % n
	if i < 0 {
		i += n
	}
	return float64(i), o.Table[i]
}

// AngleOscillator treats the seed as an angle in radians.
type AngleOscillator struct {
	Sine  core.SineSource
	Speed float64
}

// NewAngleOscillator returns an oscillator turning speed radians per frame.
func NewAngleOscillator(sine core.SineSource, speed float64) *AngleOscillator {
	return &AngleOscillator{Sine: sine, Speed: speed}
}

// RandomSeed returns an angle in [0, 6.28).
func (o *AngleOscillator) RandomSeed(rng core.RandomSource) float64 {
	return rng.Float64() * angleSpan
}

// Advance adds the turn rate and evaluates sine at the new angle.
func (o *AngleOscillator) Advance(seed float64) (float64, float64) {
	next := seed + o.Speed
	return next, o.Sine.Sin(next)
}
