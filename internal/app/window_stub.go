//go:build !ebiten

package app

import (
	"errors"

	"mad-snow/internal/core"
)

// ErrNoWindow reports a window host requested from a build without ebiten.
var ErrNoWindow = errors.New("the window host requires building with the 'ebiten' tag; rerun with -tags ebiten or pick -host term")

// RunWindow always fails in builds without the ebiten tag.
func RunWindow(core.Sim, *Options, func() error) error {
	return ErrNoWindow
}
