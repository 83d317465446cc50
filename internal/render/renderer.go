//go:build ebiten

package render

import (
	"image/color"

	"mad-snow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads framebuffer pixels into a single RGBA image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	Settled color.Color
	Falling color.Color
	Off     color.Color
}

// NewFramePainter allocates a painter for a w*h framebuffer.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		Settled: color.RGBA{R: 225, G: 235, B: 255, A: 255},
		Falling: color.White,
		Off:     color.Black,
	}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit draws the output pixels, tinting those already in the bank.
func (fp *FramePainter) Blit(dst *ebiten.Image, px, bank []core.Color, bankOnly bool, scale int) {
	if len(px) != fp.w*fp.h {
		return
	}
	if bank == nil {
		FillRGBA(fp.buf, px)
	} else {
		FillLayered(fp.buf, px, bank, fp.Settled, fp.Falling, fp.Off, bankOnly)
	}
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
