package snow

import (
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"mad-snow/internal/core"
)

func TestBankResetLaysBase(t *testing.T) {
	b := NewBank(8, 6)
	b.Reset(2)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			want := y >= 4
			if got := b.Solid(x, y); got != want {
				t.Fatalf("cell (%d,%d) solid=%v, want %v", x, y, got, want)
			}
		}
	}
	if b.Cells() != 16 {
		t.Fatalf("expected 16 base cells, got %d", b.Cells())
	}
}

func TestBankSolidOutsideEdges(t *testing.T) {
	b := NewBank(4, 4)
	b.Reset(0)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, 4}, {0, -1}} {
		if !b.Solid(p[0], p[1]) {
			t.Fatalf("out of bounds (%d,%d) should read as solid", p[0], p[1])
		}
	}
	if b.Solid(1, 1) {
		t.Fatal("empty interior cell should not be solid")
	}
}

func TestBalanceAirborne(t *testing.T) {
	b := NewBank(10, 10)
	b.Reset(1)
	p := tablePhysics(10, 10, &scripted{vals: []float64{0.3}})

	f := Flake{X: 4.5, Y: 3.2}
	if got := b.Balance(&f, p); got != Airborne {
		t.Fatalf("flake over empty cell should be airborne, got %v", got)
	}
	if f.X != 4.5 || f.Y != 3.2 {
		t.Fatal("airborne flake must not be moved by balancing")
	}

	bottom := Flake{X: 4.5, Y: 9.2}
	if got := b.Balance(&bottom, p); got != Airborne {
		t.Fatalf("probe below the last row is out of bounds and should be airborne, got %v", got)
	}
}

func TestBalanceSlidesTowardOpenSide(t *testing.T) {
	cases := []struct {
		name    string
		coin    float64
		fill    [][2]int
		wantDX  float64
		outcome Outcome
	}{
		{"left first, left open", 0.1, nil, -1, Slid},
		{"right first, right open", 0.9, nil, 1, Slid},
		{"left first, only right open", 0.1, [][2]int{{2, 4}}, 1, Slid},
		{"right first, only left open", 0.9, [][2]int{{4, 4}}, -1, Slid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBank(7, 5)
			b.Reset(0)
			_ = b.Set(3, 4, core.ColorFlake)
			for _, p := range c.fill {
				_ = b.Set(p[0], p[1], core.ColorFlake)
			}
			p := tablePhysics(7, 5, &scripted{vals: []float64{c.coin}})
			f := Flake{X: 3.5, Y: 3.5}
			if got := b.Balance(&f, p); got != c.outcome {
				t.Fatalf("outcome %v, want %v", got, c.outcome)
			}
			if f.X != 3.5+c.wantDX || f.Y != 3.5 {
				t.Fatalf("flake moved to (%v,%v), want (%v,3.5)", f.X, f.Y, 3.5+c.wantDX)
			}
		})
	}
}

func TestBalanceSettlesOnPeak(t *testing.T) {
	b := NewBank(7, 5)
	b.Reset(1)
	before := b.Cells()
	p := tablePhysics(7, 5, &scripted{vals: []float64{0.4, 0.5, 0.5, 0.5, 0.5, 0.6}})

	f := Flake{X: 3.5, Y: 3.5}
	if got := b.Balance(&f, p); got != Settled {
		t.Fatalf("flake between full diagonals should settle, got %v", got)
	}
	if !b.Solid(3, 3) {
		t.Fatal("settled flake must be written into the bank")
	}
	if b.Cells() != before+1 {
		t.Fatalf("bank cells = %d, want %d", b.Cells(), before+1)
	}
	if f.Y >= 0 || f.Y <= -p.RespawnJitter {
		t.Fatalf("settled flake should respawn above the top, y=%v", f.Y)
	}
}

func TestBalanceEdgesActAsWalls(t *testing.T) {
	b := NewBank(5, 5)
	b.Reset(1)
	p := tablePhysics(5, 5, &scripted{vals: []float64{0.1, 0.5, 0.5, 0.5, 0.5, 0.5}})

	// Column 0 with the left diagonal outside the bank and the right one full.
	f := Flake{X: 0.5, Y: 3.5}
	if got := b.Balance(&f, p); got != Settled {
		t.Fatalf("flake against the left wall should settle, got %v", got)
	}
	if !b.Solid(0, 3) {
		t.Fatal("expected snow at (0,3)")
	}
}

func TestBalanceSymmetry(t *testing.T) {
	const trials = 4000
	rng := core.NewRNG(2024)
	p := tablePhysics(5, 5, rng)
	b := NewBank(5, 5)
	b.Reset(0)
	_ = b.Set(2, 3, core.ColorFlake)

	left := 0
	for i := 0; i < trials; i++ {
		f := Flake{X: 2.5, Y: 2.5}
		if got := b.Balance(&f, p); got != Slid {
			t.Fatalf("trial %d: outcome %v, want slid", i, got)
		}
		if f.Y != 2.5 {
			t.Fatalf("trial %d: sliding must not change y, got %v", i, f.Y)
		}
		switch f.X {
		case 1.5:
			left++
		case 3.5:
		default:
			t.Fatalf("trial %d: flake moved to x=%v, want exactly one pixel", i, f.X)
		}
	}

	dist := distuv.Binomial{N: trials, P: 0.5}
	if cdf := dist.CDF(float64(left)); cdf < 1e-4 || cdf > 1-1e-4 {
		t.Fatalf("left slides %d of %d is implausible for a fair coin (cdf %v)", left, trials, cdf)
	}
}

func TestBankProfile(t *testing.T) {
	b := NewBank(4, 6)
	b.Reset(2)
	_ = b.Set(1, 1, core.ColorFlake)
	_ = b.Set(3, 3, core.ColorFlake)

	got := b.Profile(nil)
	want := []int{2, 5, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("profile = %v, want %v", got, want)
		}
	}

	reused := b.Profile(make([]int, 0, 16))
	if len(reused) != 4 {
		t.Fatalf("reused profile length %d", len(reused))
	}
}

func TestDepositIgnoresFullCells(t *testing.T) {
	b := NewBank(3, 3)
	b.Reset(1)
	if b.Deposit(0, 2) {
		t.Fatal("depositing on existing snow should report false")
	}
	if b.Deposit(5, 5) {
		t.Fatal("depositing out of bounds should report false")
	}
	if !b.Deposit(0, 0) || b.Cells() != 4 {
		t.Fatalf("deposit into empty cell should count, cells=%d", b.Cells())
	}
}
