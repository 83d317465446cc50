package render

import (
	"image/color"

	"mad-snow/internal/core"
)

// FillRGBA unpacks framebuffer pixels into an RGBA byte buffer.
func FillRGBA(buf []byte, px []core.Color) {
	for i, c := range px {
		base := i * 4
		buf[base+0], buf[base+1], buf[base+2], buf[base+3] = c.RGBA()
	}
}

// FillLayered colors pixels by layer: snow present in the bank is painted
// settled, other snow pixels falling, everything else off. When bankOnly is
// set falling snow is hidden.
func FillLayered(buf []byte, px, bank []core.Color, settled, falling, off color.Color, bankOnly bool) {
	rS, gS, bS, aS := settled.RGBA()
	rF, gF, bF, aF := falling.RGBA()
	rO, gO, bO, aO := off.RGBA()
	for i, c := range px {
		base := i * 4
		switch {
		case i < len(bank) && bank[i] == core.ColorFlake:
			buf[base+0] = uint8(rS >> 8)
			buf[base+1] = uint8(gS >> 8)
			buf[base+2] = uint8(bS >> 8)
			buf[base+3] = uint8(aS >> 8)
		case c == core.ColorFlake && !bankOnly:
			buf[base+0] = uint8(rF >> 8)
			buf[base+1] = uint8(gF >> 8)
			buf[base+2] = uint8(bF >> 8)
			buf[base+3] = uint8(aF >> 8)
		default:
			buf[base+0] = uint8(rO >> 8)
			buf[base+1] = uint8(gO >> 8)
			buf[base+2] = uint8(bO >> 8)
			buf[base+3] = uint8(aO >> 8)
		}
	}
}
