package core

import (
	"errors"
	"slices"
	"testing"
)

func TestFramebufferBoundsByIndex(t *testing.T) {
	sizes := []Size{{W: 1, H: 1}, {W: 3, H: 2}, {W: 7, H: 5}, {W: 600, H: 800}}
	for _, sz := range sizes {
		fb := NewFramebuffer(sz.W, sz.H)
		total := sz.W * sz.H
		probes := [][2]int{
			{0, sz.H},
			{sz.W - 1, sz.H},
			{0, sz.H + 3},
			{sz.W - 1, sz.H - 1 + 1},
			{total, 0},
			{sz.W, sz.H - 1},
		}
		for _, p := range probes {
			x, y := p[0], p[1]
			if _, err := fb.Get(x, y); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("%dx%d: Get(%d,%d) err=%v, want ErrOutOfBounds", sz.W, sz.H, x, y, err)
			}
			if err := fb.Set(x, y, ColorFlake); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("%dx%d: Set(%d,%d) err=%v, want ErrOutOfBounds", sz.W, sz.H, x, y, err)
			}
		}
		if fb.Count(ColorFlake) != 0 {
			t.Fatalf("%dx%d: failed writes must not touch the buffer", sz.W, sz.H)
		}
	}
}

func TestFramebufferRejectsNegativeAndWrappedCoordinates(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	cases := [][2]int{{-1, 0}, {0, -1}, {-1, 2}, {4, 0}, {5, 1}}
	for _, c := range cases {
		if err := fb.Set(c[0], c[1], ColorFlake); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err=%v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestFramebufferGetSet(t *testing.T) {
	fb := NewFramebuffer(5, 3)
	if err := fb.Set(4, 2, ColorFlake); err != nil {
		t.Fatalf("Set in bounds: %v", err)
	}
	got, err := fb.Get(4, 2)
	if err != nil || got != ColorFlake {
		t.Fatalf("Get(4,2) = %#x, %v", got, err)
	}
	if idx := fb.Index(4, 2); fb.Pixels()[idx] != ColorFlake || idx != 14 {
		t.Fatalf("pixel (4,2) should live at index 14, got %d", idx)
	}
	if got, _ := fb.Get(0, 0); got != ColorBackground {
		t.Fatalf("untouched pixel should be background, got %#x", got)
	}
}

func TestFramebufferCopyFromRoundTrip(t *testing.T) {
	src := NewFramebuffer(6, 4)
	src.FillRows(2, 4, ColorFlake)
	_ = src.Set(1, 1, ColorFlake)

	dst := NewFramebuffer(6, 4)
	dst.Fill(Color(0x12345678))
	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if !slices.Equal(src.Pixels(), dst.Pixels()) {
		t.Fatal("copy should reproduce the source pixels exactly")
	}

	if err := dst.CopyFrom(NewFramebuffer(4, 6)); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestFramebufferFillRowsClips(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	fb.FillRows(-2, 1, ColorFlake)
	fb.FillRows(2, 10, ColorFlake)
	if got := fb.Count(ColorFlake); got != 6 {
		t.Fatalf("expected rows 0 and 2 filled (6 px), got %d", got)
	}
	fb.FillRows(2, 1, ColorBackground)
	if got := fb.Count(ColorFlake); got != 6 {
		t.Fatalf("empty range must be a no-op, got %d", got)
	}
}

func TestColorChannels(t *testing.T) {
	r, g, b, a := Color(0x80402010).RGBA()
	if r != 0x10 || g != 0x20 || b != 0x40 || a != 0x80 {
		t.Fatalf("unexpected channels %x %x %x %x", r, g, b, a)
	}
	if _, _, _, a := ColorBackground.RGBA(); a != 0 {
		t.Fatal("background must be transparent")
	}
}

func TestNewFramebufferClampsDimensions(t *testing.T) {
	fb := NewFramebuffer(0, -3)
	if fb.W != 1 || fb.H != 1 || len(fb.Pixels()) != 1 {
		t.Fatalf("expected 1x1 buffer, got %dx%d", fb.W, fb.H)
	}
}
