package holonomy

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"

	"github.com/pthm-cable/baryon/physics"
)

func TestBaseAngles(t *testing.T) {
	states := States(physics.Proton, 0, false)

	wantThetas := []float64{2 * math.Pi / 3, 2 * math.Pi / 3, 4 * math.Pi / 3}
	for i, want := range wantThetas {
		if math.Abs(states[i].Theta-want) > 1e-12 {
			t.Errorf("slot %d theta = %v, want %v", i, states[i].Theta, want)
		}
	}
}

func TestOrthogonalAxes(t *testing.T) {
	states := States(physics.Neutron, 0.3, true)

	for i, s := range states {
		comps := []float64{s.Q.Imag, s.Q.Jmag, s.Q.Kmag}
		for axis, c := range comps {
			if axis == i && c == 0 {
				t.Errorf("slot %d: expected non-zero component on axis %d", i, axis)
			}
			if axis != i && c != 0 {
				t.Errorf("slot %d: unexpected component %v on axis %d", i, c, axis)
			}
		}
	}
}

func TestColorNeutralityClosedForm(t *testing.T) {
	// With corrections disabled every slot quaternion is exactly unit, so
	// the product magnitude must be 1 to well under the 1e-6 test bound.
	for _, b := range []physics.Baryon{physics.Proton, physics.Neutron} {
		states := States(b, 0, false)
		mag := quat.Abs(Product(states))
		if math.Abs(mag-1) > 1e-6 {
			t.Errorf("%s: holonomy product magnitude = %v, want 1", b.Name, mag)
		}
		if !ColorNeutral(states) {
			t.Errorf("%s: expected color-neutral at progress 0", b.Name)
		}
	}
}

func TestCorrectionsVanishAtZeroProgress(t *testing.T) {
	plain := States(physics.Proton, 0, false)
	corrected := States(physics.Proton, 0, true)

	for i := range plain {
		if math.Abs(plain[i].Theta-corrected[i].Theta) > 1e-15 {
			t.Errorf("slot %d: corrections did not cancel at progress=0: %v vs %v",
				i, plain[i].Theta, corrected[i].Theta)
		}
	}
}

func TestCorrectionsShiftAngles(t *testing.T) {
	plain := States(physics.Proton, 1, false)
	corrected := States(physics.Proton, 1, true)

	moved := false
	for i := range plain {
		if plain[i].Theta != corrected[i].Theta {
			moved = true
		}
	}
	if !moved {
		t.Error("corrections at progress=1 changed no angle")
	}
}

func TestConfinementPeaksAtMidMerge(t *testing.T) {
	states := States(physics.Proton, 0.5, false)

	mid := ConfinementStrength(states, 0.5, 1.0)
	early := ConfinementStrength(states, 0.1, 1.0)
	late := ConfinementStrength(states, 0.9, 1.0)

	if mid <= early || mid <= late {
		t.Errorf("confinement not peaked at 0.5: early=%v mid=%v late=%v", early, mid, late)
	}
	if got := ConfinementStrength(states, 0, 1.0); got != 0 {
		t.Errorf("confinement at progress=0 = %v, want 0", got)
	}
	if got := ConfinementStrength(states, 1, 1.0); got != 0 {
		t.Errorf("confinement at progress=1 = %v, want 0", got)
	}
}

func TestConfinementDecaysWithDistance(t *testing.T) {
	states := States(physics.Proton, 0.5, false)

	near := ConfinementStrength(states, 0.5, 0.5)
	far := ConfinementStrength(states, 0.5, 5.0)
	if near <= far {
		t.Errorf("confinement should decay with distance: near=%v far=%v", near, far)
	}
}

func TestConfinementEmptyStates(t *testing.T) {
	if got := ConfinementStrength(nil, 0.5, 1.0); got != 0 {
		t.Errorf("empty states confinement = %v, want 0", got)
	}
}
