package snow

import (
	"math"
	"testing"
)

func TestFlakeRandomizeDrawOrder(t *testing.T) {
	p := tablePhysics(600, 800, &scripted{vals: []float64{0.5, 0.25, 0.1, 0}})
	var f Flake
	f.Randomize(p)

	if f.X != 300 || f.Y != 200 {
		t.Fatalf("position = (%v,%v), want (300,200)", f.X, f.Y)
	}
	if f.Seed != 62 {
		t.Fatalf("seed = %v, want 62", f.Seed)
	}
	if f.Radius != 0.2 {
		t.Fatalf("radius = %v, want 0.2", f.Radius)
	}
}

func TestFlakeRadiusRange(t *testing.T) {
	p := tablePhysics(600, 800, &scripted{vals: []float64{0.1, 0.2, 0.3, 0.9999}})
	var f Flake
	f.Randomize(p)
	if f.Radius < 0.2 || f.Radius > 0.5 {
		t.Fatalf("radius %v outside [0.2, 0.5]", f.Radius)
	}
}

func TestFlakeRespawnAboveTop(t *testing.T) {
	draws := [][]float64{
		{0.0, 0.5, 0.5, 0.5, 0.01},
		{0.999, 0.1, 0.2, 0.3, 0.5},
		{0.42, 0.9, 0.9, 0.9, 0.999},
	}
	for _, d := range draws {
		p := tablePhysics(600, 800, &scripted{vals: d})
		var f Flake
		f.Respawn(p)
		if f.Y >= 0 || f.Y <= -p.RespawnJitter {
			t.Fatalf("respawn y = %v, want in (-%v, 0)", f.Y, p.RespawnJitter)
		}
		if f.X < 0 || f.X >= 600 {
			t.Fatalf("respawn x = %v, want in [0,600)", f.X)
		}
		if x, y := f.Cell(); y != 0 || x < 0 || x >= 600 {
			t.Fatalf("respawned flake should occupy the top row, got (%d,%d)", x, y)
		}
	}
}

func TestFlakeAdvance(t *testing.T) {
	p := tablePhysics(600, 800, &scripted{vals: []float64{0}})
	table := p.Osc.(*TableOscillator).Table
	f := Flake{X: 10, Y: 20, Seed: 99, Radius: 0.4}
	f.Advance(p)

	if f.Y != 20+p.Velocity {
		t.Fatalf("y = %v, want %v", f.Y, 20+p.Velocity)
	}
	if f.Seed != 100 {
		t.Fatalf("seed = %v, want 100", f.Seed)
	}
	if want := 10 + table[100]*0.4; math.Abs(f.X-want) > 1e-12 {
		t.Fatalf("x = %v, want %v", f.X, want)
	}
}

func TestFlakeCell(t *testing.T) {
	cases := []struct {
		x, y   float64
		cx, cy int
	}{
		{3.7, 9.9, 3, 9},
		{0, 0, 0, 0},
		{-0.2, 4, -1, 4},
		{5, -3.5, 5, 0},
		{599.99, 799.5, 599, 799},
	}
	for _, c := range cases {
		f := Flake{X: c.x, Y: c.y}
		if cx, cy := f.Cell(); cx != c.cx || cy != c.cy {
			t.Fatalf("Cell(%v,%v) = (%d,%d), want (%d,%d)", c.x, c.y, cx, cy, c.cx, c.cy)
		}
	}
}
