package surface

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func vecAlmostEqual(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestPointFinite(t *testing.T) {
	for i := 0; i <= 40; i++ {
		for j := 0; j <= 40; j++ {
			u, v := UV(i, j, 40, 40)
			p := Point(u, v, 1.0, r3.Vec{}, 0)
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) ||
				math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsInf(p.Z, 0) {
				t.Fatalf("non-finite point at u=%v v=%v: %+v", u, v, p)
			}
		}
	}
}

func TestPointPeriodicContinuation(t *testing.T) {
	// The full period of the figure-8 immersion is 4pi in u (the u/2 terms)
	// and 2pi in v. Out-of-range parameters must land on the same surface.
	tests := []struct {
		name   string
		u1, v1 float64
		u2, v2 float64
	}{
		{"v plus 2pi", 1.3, 0.7, 1.3, 0.7 + 2*math.Pi},
		{"u plus 4pi", 2.1, 1.9, 2.1 + 4*math.Pi, 1.9},
		{"negative v", 0.5, -1.1, 0.5, -1.1 + 2*math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1 := Point(tt.u1, tt.v1, 1.0, r3.Vec{}, 0)
			p2 := Point(tt.u2, tt.v2, 1.0, r3.Vec{}, 0)
			if !vecAlmostEqual(p1, p2, 1e-9) {
				t.Errorf("periodic points differ: %+v vs %+v", p1, p2)
			}
		})
	}
}

func TestPointScaleAndOffset(t *testing.T) {
	u, v := 1.0, 2.0
	base := Point(u, v, 1.0, r3.Vec{}, 0)
	scaled := Point(u, v, 2.5, r3.Vec{}, 0)
	if !vecAlmostEqual(scaled, r3.Scale(2.5, base), 1e-12) {
		t.Errorf("scale 2.5: got %+v, want %+v", scaled, r3.Scale(2.5, base))
	}

	off := r3.Vec{X: 1, Y: -2, Z: 3}
	moved := Point(u, v, 1.0, off, 0)
	if !vecAlmostEqual(moved, r3.Add(base, off), 1e-12) {
		t.Errorf("offset: got %+v, want %+v", moved, r3.Add(base, off))
	}
}

func TestPointRotationPreservesZAndRadius(t *testing.T) {
	u, v := 0.8, 2.4
	base := Point(u, v, 1.0, r3.Vec{}, 0)
	rot := Point(u, v, 1.0, r3.Vec{}, math.Pi/3)

	if math.Abs(base.Z-rot.Z) > 1e-12 {
		t.Errorf("rotation about z changed z: %v vs %v", base.Z, rot.Z)
	}

	rBase := math.Hypot(base.X, base.Y)
	rRot := math.Hypot(rot.X, rot.Y)
	if math.Abs(rBase-rRot) > 1e-12 {
		t.Errorf("rotation changed xy radius: %v vs %v", rBase, rRot)
	}
}

func TestPointFullRotationIsIdentity(t *testing.T) {
	u, v := 2.2, 0.3
	base := Point(u, v, 1.0, r3.Vec{}, 0)
	full := Point(u, v, 1.0, r3.Vec{}, 2*math.Pi)
	if !vecAlmostEqual(base, full, 1e-9) {
		t.Errorf("2pi rotation moved point: %+v vs %+v", base, full)
	}
}

func TestUVRange(t *testing.T) {
	u0, v0 := UV(0, 0, 30, 30)
	if u0 != 0 || v0 != 0 {
		t.Errorf("UV(0,0) = (%v,%v), want (0,0)", u0, v0)
	}
	uN, vN := UV(30, 30, 30, 30)
	if math.Abs(uN-2*math.Pi) > 1e-12 || math.Abs(vN-2*math.Pi) > 1e-12 {
		t.Errorf("UV(seam) = (%v,%v), want (2pi,2pi)", uN, vN)
	}
}
