package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"

	"mad-snow/internal/snow"
)

// Summary condenses a window of frames and the bank's column profile.
type Summary struct {
	FirstFrame uint64
	LastFrame  uint64

	SettledMean   float64
	SettledStd    float64
	SlidMean      float64
	RespawnedMean float64
	BankCells     int

	DepthMean float64
	DepthStd  float64 // roughness of the snow surface
	DepthP50  float64
	DepthMax  float64
}

// Summarize computes window statistics. profile holds column heights as
// returned by Bank.Profile.
func Summarize(frames []snow.FrameStats, profile []int) Summary {
	var s Summary
	if n := len(frames); n > 0 {
		s.FirstFrame = frames[0].Frame
		s.LastFrame = frames[n-1].Frame
		s.BankCells = frames[n-1].BankCells

		settled := make([]float64, n)
		slid := make([]float64, n)
		respawned := make([]float64, n)
		for i, f := range frames {
			settled[i] = float64(f.Settled)
			slid[i] = float64(f.Slid)
			respawned[i] = float64(f.Respawned)
		}
		s.SettledMean, s.SettledStd = stat.MeanStdDev(settled, nil)
		s.SlidMean = stat.Mean(slid, nil)
		s.RespawnedMean = stat.Mean(respawned, nil)
	}

	if len(profile) > 0 {
		depth := make([]float64, len(profile))
		for i, d := range profile {
			depth[i] = float64(d)
		}
		s.DepthMean, s.DepthStd = stat.MeanStdDev(depth, nil)
		slices.Sort(depth)
		s.DepthP50 = stat.Quantile(0.5, stat.Empirical, depth, nil)
		s.DepthMax = depth[len(depth)-1]
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("first_frame", s.FirstFrame),
		slog.Uint64("last_frame", s.LastFrame),
		slog.Float64("settled_mean", s.SettledMean),
		slog.Float64("settled_std", s.SettledStd),
		slog.Float64("slid_mean", s.SlidMean),
		slog.Float64("respawned_mean", s.RespawnedMean),
		slog.Int("bank_cells", s.BankCells),
		slog.Float64("depth_mean", s.DepthMean),
		slog.Float64("depth_std", s.DepthStd),
		slog.Float64("depth_p50", s.DepthP50),
		slog.Float64("depth_max", s.DepthMax),
	)
}
