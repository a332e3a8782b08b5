// Package holonomy derives per-quark holonomy descriptors and the
// composite-level stability metrics built from them.
package holonomy

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/pthm-cable/baryon/physics"
)

// NeutralityTol is the floating tolerance for the color-neutrality check on
// the holonomy product magnitude.
const NeutralityTol = 1e-10

// State is the holonomy descriptor of one quark slot in a composite.
type State struct {
	Flavor    string
	Theta     float64     // Base angle K*2pi/3 plus the charge correction
	AxisIndex int         // Which imaginary axis carries sin(theta/2): 0=i, 1=j, 2=k
	Q         quat.Number // cos(theta/2) + axis * sin(theta/2)
}

// States computes the holonomy descriptors for the baryon's three quark
// slots at the given merge progress. With corrections disabled the angles
// reduce to the pure Z3 base angles K*2pi/3; otherwise each angle picks up a
// small term proportional to the quark's charge and the current progress.
// Slot index selects the quaternion axis so the three slots stay orthogonal.
func States(b physics.Baryon, progress float64, corrections bool) []State {
	states := make([]State, len(b.Quarks))
	for i, q := range b.Quarks {
		theta := float64(q.HolonomyK) * 2 * math.Pi / 3
		if corrections {
			theta += q.Delta * q.Charge * progress
		}

		s, c := math.Sincos(theta / 2)
		num := quat.Number{Real: c}
		switch i % 3 {
		case 0:
			num.Imag = s
		case 1:
			num.Jmag = s
		case 2:
			num.Kmag = s
		}

		states[i] = State{
			Flavor:    q.Flavor,
			Theta:     theta,
			AxisIndex: i % 3,
			Q:         num,
		}
	}
	return states
}

// Product multiplies the holonomy quaternions in slot order.
func Product(states []State) quat.Number {
	prod := quat.Number{Real: 1}
	for _, s := range states {
		prod = quat.Mul(prod, s.Q)
	}
	return prod
}

// ColorNeutral reports whether the holonomy product has unit magnitude
// within NeutralityTol. This is the composite-level stability invariant.
func ColorNeutral(states []State) bool {
	return math.Abs(quat.Abs(Product(states))-1) <= NeutralityTol
}

// ConfinementStrength summarizes how strongly the quark slots are bound:
// the mean of |sin(theta/2)| across slots, scaled by a progress envelope
// that peaks at half merge, and attenuated by the mean pairwise anchor
// distance.
func ConfinementStrength(states []State, progress, avgPairDistance float64) float64 {
	if len(states) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range states {
		sum += math.Abs(math.Sin(s.Theta / 2))
	}
	mean := sum / float64(len(states))

	envelope := 4 * progress * (1 - progress)
	if envelope < 0 {
		envelope = 0
	}

	return mean * envelope / (1 + avgPairDistance)
}
