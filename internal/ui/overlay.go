//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"mad-snow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPad   = 6
	lineHeight = 14
)

// Overlay draws the status panel and owns the view toggles.
type Overlay struct {
	sim       core.Sim
	showPanel bool
	bankOnly  bool
	pixel     *ebiten.Image
	params    []string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterProvider); ok {
		o.params = provider.Parameters().Lines()
	}
	return o
}

// BankOnly reports whether falling flakes should be hidden.
func (o *Overlay) BankOnly() bool { return o.bankOnly }

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPanel = !o.showPanel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.bankOnly = !o.bankOnly
	}
}

// Draw renders the panel in the top-left corner when enabled.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.showPanel {
		return
	}
	lines := append([]string{o.sim.Name(), status, ""}, o.params...)
	width := 0
	for _, l := range lines {
		if n := len(l); n > width {
			width = n
		}
	}
	panelW := float64(width*7 + 2*panelPad)
	panelH := float64(len(lines)*lineHeight + 2*panelPad)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelW, panelH)
	op.ColorScale.Scale(0, 0, 0, 0.65)
	screen.DrawImage(o.pixel, op)

	text.Draw(screen, strings.Join(lines, "\n"), basicfont.Face7x13, panelPad, panelPad+11, color.White)
}
