// Package term presents a simulation's framebuffer in a terminal using tcell.
//
// Every terminal cell shows two vertically stacked samples with an upper half
// block: the foreground paints the top sample and the background the bottom.
// The last row holds a status line.
package term

import (
	"context"
	"fmt"
	"time"

	"mad-snow/internal/core"
	"mad-snow/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	halfBlock      = '▀'
	redrawInterval = time.Second / 30
	maxCatchUp     = 4
)

type statusSim interface {
	Status() string
}

// Options controls the terminal host.
type Options struct {
	TPS     int
	Frames  int // 0 runs until quit
	Seed    int64
	OnFrame func() error
}

// Host drives a sim and mirrors its pixels onto a tcell screen.
type Host struct {
	screen tcell.Screen
	sim    core.Sim
	opts   Options

	clock    *core.FixedStep
	samples  []uint8
	paused   bool
	tickOnce bool
	frames   int
}

// New wraps an initialized screen. Run takes ownership and finalizes it.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Host {
	return &Host{
		screen: screen,
		sim:    sim,
		opts:   opts,
		clock:  core.NewFixedStep(opts.TPS),
	}
}

// Run opens the default terminal screen and runs sim on it until the user
// quits, the frame limit is reached or ctx is cancelled.
func Run(ctx context.Context, sim core.Sim, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	return New(screen, sim, opts).Run(ctx)
}

// Run is the host loop. Input is read on its own goroutine and handed to the
// loop, which is the only caller of the sim.
func (h *Host) Run(ctx context.Context) error {
	defer h.screen.Fini()
	h.screen.HideCursor()
	if _, ok := h.sim.(core.PointerSink); ok {
		h.screen.EnableMouse(tcell.MouseMotionEvents)
	}
	h.screen.Clear()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			done, err := h.advance()
			if err != nil {
				return err
			}
			h.draw()
			if done {
				return nil
			}
		}
	}
}

// handle applies one input event and reports whether the host should exit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			h.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				h.paused = !h.paused
			case 'n':
				h.tickOnce = true
			case 'r':
				h.sim.Reset(h.opts.Seed)
			case 's':
				h.sim.Reset(time.Now().UnixNano())
			}
		}
	case *tcell.EventMouse:
		if sink, ok := h.sim.(core.PointerSink); ok {
			x, y := ev.Position()
			px, py := h.toPixel(x, y)
			sink.PointerMove(px, py)
		}
	}
	return false
}

// advance runs the ticks that fell due since the last redraw and reports
// whether the frame limit was reached.
func (h *Host) advance() (bool, error) {
	due := h.clock.Due(maxCatchUp)
	if h.paused {
		due = 0
		if h.tickOnce {
			due = 1
		}
	}
	h.tickOnce = false
	for i := 0; i < due; i++ {
		h.sim.Step()
		h.frames++
		if h.opts.OnFrame != nil {
			if err := h.opts.OnFrame(); err != nil {
				return true, err
			}
		}
		if h.opts.Frames > 0 && h.frames >= h.opts.Frames {
			return true, nil
		}
	}
	return false, nil
}

// viewport returns the cell area used for pixels, leaving the status row.
func (h *Host) viewport() (int, int) {
	cols, rows := h.screen.Size()
	if rows > 1 {
		rows--
	}
	return cols, rows
}

func (h *Host) toPixel(x, y int) (int, int) {
	cols, rows := h.viewport()
	size := h.sim.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return x * size.W / cols, y * size.H / rows
}

func (h *Host) draw() {
	cols, rows := h.viewport()
	if cols <= 0 || rows <= 0 {
		return
	}
	size := h.sim.Size()
	h.samples = render.Coverage(h.samples, h.sim.Pixels(), size.W, size.H, cols, rows*2)
	for cy := 0; cy < rows; cy++ {
		top := h.samples[(2*cy)*cols : (2*cy+1)*cols]
		bottom := h.samples[(2*cy+1)*cols : (2*cy+2)*cols]
		for cx := 0; cx < cols; cx++ {
			h.screen.SetContent(cx, cy, halfBlock, nil, cellStyle(top[cx], bottom[cx]))
		}
	}
	h.drawStatus(rows, cols)
	h.screen.Show()
}

func (h *Host) drawStatus(row, cols int) {
	line := h.sim.Name()
	if s, ok := h.sim.(statusSim); ok {
		line = s.Status()
	}
	if h.paused {
		line += "  [paused]"
	}
	line += "  q quit  space pause  n step  r reset"
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		h.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		h.screen.SetContent(x, row, ' ', nil, style)
	}
}

func cellStyle(top, bottom uint8) tcell.Style {
	return tcell.StyleDefault.
		Foreground(grey(top)).
		Background(grey(bottom))
}

func grey(v uint8) tcell.Color {
	c := int32(v)
	return tcell.NewRGBColor(c, c, c)
}
