//go:build ebiten

package app

import (
	"errors"
	"time"

	"mad-snow/internal/core"
	"mad-snow/internal/render"
	"mad-snow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type layeredSim interface {
	BankPixels() []core.Color
}

type statusSim interface {
	Status() string
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FramePainter
	overlay *ui.Overlay
	onFrame func() error

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	frames   int
	limit    int

	lastX, lastY int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewFramePainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
		scale:   scale,
		seed:    seed,
		lastX:   -1,
		lastY:   -1,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if sink, ok := g.sim.(core.PointerSink); ok {
		x, y := ebiten.CursorPosition()
		if x != g.lastX || y != g.lastY {
			g.lastX, g.lastY = x, y
			sink.PointerMove(x/g.scale, y/g.scale)
		}
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.frames++
		if g.onFrame != nil {
			if err := g.onFrame(); err != nil {
				return err
			}
		}
		if g.limit > 0 && g.frames >= g.limit {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var bank []core.Color
	if l, ok := g.sim.(layeredSim); ok {
		bank = l.BankPixels()
	}
	g.painter.Blit(screen, g.sim.Pixels(), bank, g.overlay.BankOnly(), g.scale)

	status := ""
	if s, ok := g.sim.(statusSim); ok {
		status = s.Status()
	}
	g.overlay.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// RunWindow opens a window and runs sim until the user quits or the frame
// limit in opts is reached.
func RunWindow(sim core.Sim, opts *Options, onFrame func() error) error {
	game := New(sim, opts.Scale, opts.Seed)
	game.onFrame = onFrame
	game.limit = opts.Frames
	size := sim.Size()

	ebiten.SetWindowTitle("mad-snow: " + sim.Name())
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
