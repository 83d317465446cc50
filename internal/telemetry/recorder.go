package telemetry

import (
	"log/slog"

	"mad-snow/internal/snow"
)

// Recorder writes every frame of a simulation and logs a Summary each time a
// window of frames fills.
type Recorder struct {
	sim    *snow.Simulation
	out    *Writer
	logger *slog.Logger
	every  int

	window  []snow.FrameStats
	profile []int
	last    Summary
}

// NewRecorder observes sim. out may be nil to skip CSV output; every <= 0
// disables summaries.
func NewRecorder(sim *snow.Simulation, out *Writer, logger *slog.Logger, every int) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{sim: sim, out: out, logger: logger, every: every}
	if every > 0 {
		r.window = make([]snow.FrameStats, 0, every)
	}
	return r
}

// Observe records the sim's latest frame. It is meant to run after each Step.
func (r *Recorder) Observe() error {
	stats := r.sim.Stats()
	if err := r.out.Write(stats); err != nil {
		return err
	}
	if r.every <= 0 {
		return nil
	}
	r.window = append(r.window, stats)
	if len(r.window) < r.every {
		return nil
	}
	r.Flush()
	return nil
}

// Flush summarizes and logs the frames collected so far.
func (r *Recorder) Flush() {
	if len(r.window) == 0 {
		return
	}
	r.profile = r.sim.Bank().Profile(r.profile)
	r.last = Summarize(r.window, r.profile)
	r.logger.Info("snowbank", "summary", r.last)
	r.window = r.window[:0]
}

// Last returns the most recent summary.
func (r *Recorder) Last() Summary { return r.last }
