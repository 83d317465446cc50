package snow

import (
	"fmt"
	"log/slog"
)

// FrameStats counts what happened to the flake pool during one Step.
type FrameStats struct {
	Frame     uint64 `csv:"frame"`
	Airborne  int    `csv:"airborne"`
	Slid      int    `csv:"slid"`
	Settled   int    `csv:"settled"`
	Respawned int    `csv:"respawned"` // draw fell outside the buffer
	BankCells int    `csv:"bank_cells"`
}

// String renders the stats as a single status line.
func (s FrameStats) String() string {
	return fmt.Sprintf("frame %d  airborne %d  slid %d  settled %d  respawned %d  bank %d",
		s.Frame, s.Airborne, s.Slid, s.Settled, s.Respawned, s.BankCells)
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frame", s.Frame),
		slog.Int("airborne", s.Airborne),
		slog.Int("slid", s.Slid),
		slog.Int("settled", s.Settled),
		slog.Int("respawned", s.Respawned),
		slog.Int("bank_cells", s.BankCells),
	)
}
