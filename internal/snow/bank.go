package snow

import "mad-snow/internal/core"

// Outcome reports what balancing did to a flake this frame.
type Outcome uint8

const (
	// Airborne means nothing solid is below; the flake should advance.
	Airborne Outcome = iota
	// Slid means the flake shifted one pixel sideways off a slope.
	Slid
	// Settled means the flake joined the bank and was respawned.
	Settled
)

func (o Outcome) String() string {
	switch o {
	case Airborne:
		return "airborne"
	case Slid:
		return "slid"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Bank is the framebuffer of settled snow.
type Bank struct {
	*core.Framebuffer
	cells int
}

// NewBank allocates an empty bank.
func NewBank(w, h int) *Bank {
	return &Bank{Framebuffer: core.NewFramebuffer(w, h)}
}

// Reset clears the bank and lays baseRows of solid snow along the bottom.
func (b *Bank) Reset(baseRows int) {
	b.Fill(core.ColorBackground)
	b.FillRows(b.H-baseRows, b.H, core.ColorFlake)
	b.cells = b.Count(core.ColorFlake)
}

// Cells returns the number of settled pixels.
func (b *Bank) Cells() int { return b.cells }

// Solid reports whether (x, y) holds snow. Coordinates outside the bank count
// as solid so the edges hold piles in.
func (b *Bank) Solid(x, y int) bool {
	c, err := b.Get(x, y)
	if err != nil {
		return true
	}
	return c == core.ColorFlake
}

// Deposit writes snow at (x, y). It reports whether the pixel was empty before.
func (b *Bank) Deposit(x, y int) bool {
	c, err := b.Get(x, y)
	if err != nil || c == core.ColorFlake {
		return false
	}
	_ = b.Set(x, y, core.ColorFlake)
	b.cells++
	return true
}

// Balance decides whether the flake has landed. A flake resting on snow slides
// one pixel toward an empty diagonal, trying a randomly chosen side first. With
// both diagonals full it settles into the bank and is respawned above the top.
func (b *Bank) Balance(f *Flake, p *Physics) Outcome {
	x, y := f.Cell()
	below, err := b.Get(x, y+1)
	if err != nil || below != core.ColorFlake {
		return Airborne
	}

	openLeft := !b.Solid(x-1, y+1)
	openRight := !b.Solid(x+1, y+1)

	leftFirst := p.Rand.Float64() < 0.5
	switch {
	case leftFirst && openLeft:
		f.X--
		return Slid
	case openRight:
		f.X++
		return Slid
	case openLeft:
		f.X--
		return Slid
	}

	b.Deposit(x, y)
	f.Respawn(p)
	return Settled
}

// Profile returns the snow height of every column, measured as the number of
// rows from the topmost settled pixel to the bottom edge. dst is reused when
// large enough.
func (b *Bank) Profile(dst []int) []int {
	if cap(dst) < b.W {
		dst = make([]int, b.W)
	}
	dst = dst[:b.W]
	px := b.Pixels()
	for x := 0; x < b.W; x++ {
		dst[x] = 0
		for y := 0; y < b.H; y++ {
			if px[b.Index(x, y)] == core.ColorFlake {
				dst[x] = b.H - y
				break
			}
		}
	}
	return dst
}
