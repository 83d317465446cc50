package render

import "mad-snow/internal/core"

// Coverage shrinks a w*h framebuffer to cols*rows cells. Each cell holds the
// share of snow pixels in its source block scaled to 0..255. dst is reused
// when large enough.
func Coverage(dst []uint8, px []core.Color, w, h, cols, rows int) []uint8 {
	if cols <= 0 || rows <= 0 || w <= 0 || h <= 0 {
		return dst[:0]
	}
	n := cols * rows
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]

	for cy := 0; cy < rows; cy++ {
		y0, y1 := span(cy, rows, h)
		for cx := 0; cx < cols; cx++ {
			x0, x1 := span(cx, cols, w)
			snow, total := 0, 0
			for y := y0; y < y1; y++ {
				row := px[y*w : y*w+w]
				for x := x0; x < x1; x++ {
					if row[x] == core.ColorFlake {
						snow++
					}
					total++
				}
			}
			dst[cy*cols+cx] = uint8(snow * 255 / total)
		}
	}
	return dst
}

// span returns the source range covered by cell i of n over length size.
// Every cell covers at least one source index.
func span(i, n, size int) (int, int) {
	lo := i * size / n
	hi := (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	if hi > size {
		hi = size
		if lo >= hi {
			lo = hi - 1
		}
	}
	return lo, hi
}
