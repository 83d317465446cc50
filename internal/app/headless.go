package app

import (
	"context"

	"mad-snow/internal/core"
)

// RunHeadless steps sim without presenting it, calling onFrame after each
// Step. It stops after frames steps, or when ctx is cancelled if frames is 0.
func RunHeadless(ctx context.Context, sim core.Sim, frames int, onFrame func() error) error {
	for i := 0; frames == 0 || i < frames; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		sim.Step()
		if onFrame != nil {
			if err := onFrame(); err != nil {
				return err
			}
		}
	}
	return nil
}
