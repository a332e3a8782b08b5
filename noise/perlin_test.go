package noise

import (
	"math"
	"testing"
)

func TestNoiseDeterminism(t *testing.T) {
	a := NewPerlin(42)
	b := NewPerlin(42)

	points := [][3]float64{
		{0, 0, 0},
		{0.5, 0.25, 0.75},
		{1.9, -3.4, 7.2},
		{100.1, 200.2, 300.3},
		{-55.5, 0.001, 12345.678},
	}

	for _, pt := range points {
		v1 := a.Noise3D(pt[0], pt[1], pt[2])
		v2 := a.Noise3D(pt[0], pt[1], pt[2])
		v3 := b.Noise3D(pt[0], pt[1], pt[2])
		if v1 != v2 {
			t.Errorf("repeated call at %v differs: %v vs %v", pt, v1, v2)
		}
		if v1 != v3 {
			t.Errorf("same-seed generator at %v differs: %v vs %v", pt, v1, v3)
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a := NewPerlin(1)
	b := NewPerlin(2)

	same := true
	for i := 0; i < 16; i++ {
		x := float64(i) * 0.37
		if a.Noise3D(x, x*1.3, x*0.7) != b.Noise3D(x, x*1.3, x*0.7) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise fields")
	}
}

func TestNoiseRange(t *testing.T) {
	p := NewPerlin(7)

	for i := 0; i < 2000; i++ {
		x := float64(i)*0.173 - 150
		y := float64(i)*0.091 + 3
		z := float64(i) * 0.047
		v := p.Noise3D(x, y, z)
		if v < -1 || v > 1 {
			t.Fatalf("Noise3D(%v,%v,%v) = %v out of [-1,1]", x, y, z, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Noise3D(%v,%v,%v) = %v not finite", x, y, z, v)
		}
	}
}

func TestNoiseContinuityAtLatticeBoundary(t *testing.T) {
	p := NewPerlin(99)

	// Sample just below and just above integer lattice lines; a continuous
	// field must not jump across the boundary.
	const eps = 1e-6
	for i := -3; i <= 3; i++ {
		b := float64(i)
		below := p.Noise3D(b-eps, 0.4, 0.6)
		above := p.Noise3D(b+eps, 0.4, 0.6)
		if math.Abs(below-above) > 1e-3 {
			t.Errorf("discontinuity at x=%v: %v vs %v", b, below, above)
		}
	}
}

func TestNoiseLargeMagnitudeInputs(t *testing.T) {
	p := NewPerlin(3)

	big := []float64{1e6, -1e6, 1e9, -1e9, 123456789.5}
	for _, x := range big {
		v := p.Noise3D(x, -x, x*0.5)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Noise3D with magnitude %v not finite: %v", x, v)
		}
	}
}

func TestNoise2DIsZeroPlaneOf3D(t *testing.T) {
	p := NewPerlin(11)

	if got, want := p.Noise2D(1.5, 2.5), p.Noise3D(1.5, 2.5, 0); got != want {
		t.Errorf("Noise2D(1.5,2.5) = %v, want %v", got, want)
	}
}

func TestFBMReducesToPlainNoise(t *testing.T) {
	p := NewPerlin(5)

	if got, want := p.FBM3D(0.3, 0.6, 0.9, 1, 2.0, 0.5), p.Noise3D(0.3, 0.6, 0.9); got != want {
		t.Errorf("FBM3D octaves=1 = %v, want Noise3D = %v", got, want)
	}
}

func TestFBMBounded(t *testing.T) {
	p := NewPerlin(13)

	for i := 0; i < 500; i++ {
		x := float64(i) * 0.21
		v := p.FBM3D(x, x*0.5, -x, 4, 2.0, 0.5)
		if v < -1.001 || v > 1.001 {
			t.Fatalf("FBM3D at %v = %v out of normalized range", x, v)
		}
	}
}

func TestWarpComponentsDecorrelated(t *testing.T) {
	p := NewPerlin(17)

	allEqual := true
	for i := 0; i < 32; i++ {
		x := float64(i) * 0.29
		w := p.Warp(x, x, x, 1, 2.0, 0.5)
		if w.X != w.Y || w.Y != w.Z {
			allEqual = false
		}
		if math.IsNaN(w.X) || math.IsNaN(w.Y) || math.IsNaN(w.Z) {
			t.Fatalf("Warp produced NaN at %v", x)
		}
	}
	if allEqual {
		t.Error("warp components are identical; axis fields are correlated")
	}
}
