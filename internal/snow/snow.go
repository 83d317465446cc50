// Package snow simulates falling snow piling up into a snowbank.
//
// A Simulation owns an output framebuffer, the bank of settled snow, a fixed
// pool of flakes and the sine table driving their sway. Each Step copies the
// bank into the output buffer, then balances, moves and draws every flake.
// A Simulation is not safe for concurrent use.
package snow

import (
	"math"

	"mad-snow/internal/core"
)

// Simulation drives the flake pool over the bank.
type Simulation struct {
	cfg Config

	rng   core.RandomSource
	owned *core.RNG
	sine  core.SineSource

	table  SineTable
	phys   Physics
	out    *core.Framebuffer
	bank   *Bank
	flakes []Flake

	frame uint64
	stats FrameStats
	ready bool
}

// New returns a simulation drawing randomness and sine from the given sources.
// Nil sources fall back to a generator seeded from cfg.Seed and math.Sin.
// Init must run before the first Step; Step calls it if it has not.
func New(cfg Config, rng core.RandomSource, sine core.SineSource) *Simulation {
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	if sine == nil {
		sine = core.StdSine
	}
	if cfg.FlakeCount < 0 {
		cfg.FlakeCount = 0
	}
	s := &Simulation{
		cfg:    cfg,
		rng:    rng,
		sine:   sine,
		out:    core.NewFramebuffer(cfg.Width, cfg.Height),
		bank:   NewBank(cfg.Width, cfg.Height),
		flakes: make([]Flake, cfg.FlakeCount),
	}
	if owned, ok := rng.(*core.RNG); ok {
		s.owned = owned
	}
	return s
}

// NewWithSeed returns a simulation backed by a PCG generator seeded from cfg.Seed.
func NewWithSeed(cfg Config) *Simulation {
	return New(cfg, core.NewRNG(cfg.Seed), core.StdSine)
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "snow" }

// Size reports the buffer dimensions.
func (s *Simulation) Size() core.Size { return s.out.Size() }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Pixels exposes the output buffer, W*H packed RGBA pixels row-major from the top left.
func (s *Simulation) Pixels() []core.Color { return s.out.Pixels() }

// Output exposes the output framebuffer.
func (s *Simulation) Output() *core.Framebuffer { return s.out }

// Bank exposes the settled snow.
func (s *Simulation) Bank() *Bank { return s.bank }

// BankPixels exposes the bank's backing store.
func (s *Simulation) BankPixels() []core.Color { return s.bank.Pixels() }

// Flakes exposes the flake pool. Its length never changes.
func (s *Simulation) Flakes() []Flake { return s.flakes }

// Table exposes the sine table built by Init.
func (s *Simulation) Table() SineTable { return s.table }

// Stats returns the counters of the most recent Step.
func (s *Simulation) Stats() FrameStats { return s.stats }

// Status renders the latest counters as one line.
func (s *Simulation) Status() string { return s.stats.String() }

// Init builds the sine table, lays the base of the bank and scatters every flake.
func (s *Simulation) Init() {
	s.table = NewSineTable(s.sine, TableSize, s.cfg.TruncatedSine)

	var osc Oscillator = NewTableOscillator(s.table, s.cfg.SpinSpeed)
	if s.cfg.Sway == SwayAngle {
		osc = NewAngleOscillator(s.sine, s.cfg.SpinSpeedRadians)
	}
	s.phys = Physics{
		Bounds:        s.out.Size(),
		Velocity:      s.cfg.TerminalVelocity,
		RadiusLow:     s.cfg.SpinRadiusLow,
		RadiusHigh:    s.cfg.SpinRadiusHigh,
		RespawnJitter: s.cfg.RespawnJitter,
		Osc:           osc,
		Rand:          s.rng,
	}

	s.bank.Reset(s.cfg.BaseRows)
	for i := range s.flakes {
		s.flakes[i].Randomize(&s.phys)
	}
	s.out.Fill(core.ColorBackground)
	s.frame = 0
	s.stats = FrameStats{BankCells: s.bank.Cells()}
	s.ready = true
}

// Reset reseeds the owned generator and reinitializes. A zero seed falls back
// to the configured one. Sims built with an injected source only reinitialize.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	if s.owned != nil {
		s.owned.Reseed(seed)
	}
	s.Init()
}

// Step renders one frame.
func (s *Simulation) Step() {
	if !s.ready {
		s.Init()
	}
	// Same dimensions by construction.
	_ = s.out.CopyFrom(s.bank.Framebuffer)

	s.frame++
	st := FrameStats{Frame: s.frame}
	for i := range s.flakes {
		f := &s.flakes[i]
		switch s.bank.Balance(f, &s.phys) {
		case Airborne:
			f.Advance(&s.phys)
			st.Airborne++
		case Slid:
			st.Slid++
		case Settled:
			st.Settled++
		}

		x, y := f.Cell()
		if err := s.out.Set(x, y, core.ColorFlake); err != nil {
			f.Respawn(&s.phys)
			st.Respawned++
		}
	}
	st.BankCells = s.bank.Cells()
	s.stats = st
}

// PointerMove lifts flakes in the band of rows around y when pointer lift is
// enabled, holding them in the air under the cursor. Otherwise it does nothing.
func (s *Simulation) PointerMove(x, y int) {
	if !s.cfg.PointerLift || !s.ready {
		return
	}
	reach := s.cfg.PointerReach
	for i := range s.flakes {
		f := &s.flakes[i]
		row := int(math.Trunc(f.Y))
		if row > y-reach && row < y+reach {
			f.Y -= s.cfg.TerminalVelocity
		}
	}
}

func init() {
	core.Register("snow", func(cfg map[string]string) core.Sim {
		return NewWithSeed(FromMap(cfg))
	})
}
