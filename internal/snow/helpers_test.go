package snow

import "mad-snow/internal/core"

// scripted replays a fixed sequence of draws, cycling when exhausted.
type scripted struct {
	vals []float64
	n    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}

func smallConfig(w, h, flakes int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.FlakeCount = flakes
	return cfg
}

func tablePhysics(w, h int, rng core.RandomSource) *Physics {
	cfg := DefaultConfig()
	return &Physics{
		Bounds:        core.Size{W: w, H: h},
		Velocity:      cfg.TerminalVelocity,
		RadiusLow:     cfg.SpinRadiusLow,
		RadiusHigh:    cfg.SpinRadiusHigh,
		RespawnJitter: cfg.RespawnJitter,
		Osc:           NewTableOscillator(NewSineTable(core.StdSine, TableSize, false), cfg.SpinSpeed),
		Rand:          rng,
	}
}
