package camera

import (
	"math"
	"testing"
)

func TestNew_ClampsDistance(t *testing.T) {
	c := New(1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance %f, want clamped to %f", c.Distance, c.MaxDistance)
	}

	c = New(0.1)
	if c.Distance != c.MinDistance {
		t.Errorf("distance %f, want clamped to %f", c.Distance, c.MinDistance)
	}
}

func TestPosition_StaysOnOrbitSphere(t *testing.T) {
	c := New(10)
	c.SetTarget(1, 2, 3)

	for _, yaw := range []float32{0, 1, 2, 3, 4, 5, 6} {
		c.Yaw = yaw
		x, y, z := c.Position()
		dx := float64(x - c.TargetX)
		dy := float64(y - c.TargetY)
		dz := float64(z - c.TargetZ)
		r := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if math.Abs(r-10) > 1e-4 {
			t.Errorf("yaw %f: orbit radius %f, want 10", yaw, r)
		}
	}
}

func TestOrbit_ClampsPitch(t *testing.T) {
	c := New(10)

	c.Orbit(0, 10)
	if c.Pitch > pitchLimit {
		t.Errorf("pitch %f exceeds limit %f", c.Pitch, pitchLimit)
	}
	c.Orbit(0, -20)
	if c.Pitch < -pitchLimit {
		t.Errorf("pitch %f below limit %f", c.Pitch, -pitchLimit)
	}
}

func TestOrbit_WrapsYaw(t *testing.T) {
	c := New(10)
	c.Yaw = 0
	c.Orbit(-0.5, 0)
	if c.Yaw < 0 || c.Yaw > 2*math.Pi {
		t.Errorf("yaw %f outside [0, 2pi]", c.Yaw)
	}
	c.Orbit(2*math.Pi, 0)
	if c.Yaw < 0 || c.Yaw > 2*math.Pi {
		t.Errorf("yaw %f outside [0, 2pi] after full turn", c.Yaw)
	}
}

func TestDolly_Clamps(t *testing.T) {
	c := New(10)
	c.Dolly(100)
	if c.Distance != c.MaxDistance {
		t.Errorf("dolly out: distance %f, want %f", c.Distance, c.MaxDistance)
	}
	c.Dolly(0.0001)
	if c.Distance != c.MinDistance {
		t.Errorf("dolly in: distance %f, want %f", c.Distance, c.MinDistance)
	}
}

func TestReset(t *testing.T) {
	c := New(10)
	c.SetTarget(5, 5, 5)
	c.Orbit(1, 0.3)
	c.Dolly(2)
	c.Reset()

	if c.TargetX != 0 || c.TargetY != 0 || c.TargetZ != 0 {
		t.Error("reset did not recenter target")
	}
	if c.Distance != 14.0 {
		t.Errorf("reset distance %f, want 14", c.Distance)
	}
}
