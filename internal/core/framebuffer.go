package core

import "errors"

// Color is a packed 32-bit RGBA pixel. The red channel sits in the lowest byte.
type Color uint32

const (
	// ColorFlake is opaque white.
	ColorFlake Color = 0xFFFFFFFF
	// ColorBackground is fully transparent black.
	ColorBackground Color = 0x00000000
)

// RGBA splits the packed value into its channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

var (
	// ErrOutOfBounds reports a coordinate outside the framebuffer.
	ErrOutOfBounds = errors.New("core: coordinates out of bounds")
	// ErrSizeMismatch reports a copy between framebuffers of different sizes.
	ErrSizeMismatch = errors.New("core: framebuffer size mismatch")
)

// Framebuffer stores a 2D grid of pixels in row-major order.
type Framebuffer struct {
	W, H int
	data []Color
}

// NewFramebuffer allocates a framebuffer with the given dimensions.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Framebuffer{W: w, H: h, data: make([]Color, w*h)}
}

// Pixels exposes the backing slice for hosts that blit it directly.
func (f *Framebuffer) Pixels() []Color { return f.data }

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() Size { return Size{W: f.W, H: f.H} }

// Index returns the linear slice index for coordinates (x, y).
func (f *Framebuffer) Index(x, y int) int { return x + y*f.W }

// InBounds reports whether (x, y) addresses a pixel. Columns past the right
// edge do not wrap into the following row.
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.W && y < f.H
}

// Get returns the pixel at (x, y).
func (f *Framebuffer) Get(x, y int) (Color, error) {
	if !f.InBounds(x, y) {
		return ColorBackground, ErrOutOfBounds
	}
	return f.data[f.Index(x, y)], nil
}

// Set writes the pixel at (x, y).
func (f *Framebuffer) Set(x, y int, c Color) error {
	if !f.InBounds(x, y) {
		return ErrOutOfBounds
	}
	f.data[f.Index(x, y)] = c
	return nil
}

// CopyFrom overwrites the framebuffer with the contents of src.
func (f *Framebuffer) CopyFrom(src *Framebuffer) error {
	if src.W != f.W || src.H != f.H {
		return ErrSizeMismatch
	}
	copy(f.data, src.data)
	return nil
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c Color) {
	for i := range f.data {
		f.data[i] = c
	}
}

// FillRows sets rows [y0, y1) to c. The range is clipped to the buffer.
func (f *Framebuffer) FillRows(y0, y1 int, c Color) {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > f.H {
		y1 = f.H
	}
	if y0 >= y1 {
		return
	}
	row := f.data[y0*f.W : y1*f.W]
	for i := range row {
		row[i] = c
	}
}

// Count returns the number of pixels equal to c.
func (f *Framebuffer) Count(c Color) int {
	n := 0
	for _, v := range f.data {
		if v == c {
			n++
		}
	}
	return n
}
