// Package physics holds the quark and baryon constants the visualization is
// parameterized by, plus the derivations that map them onto visual tunables.
package physics

import (
	"fmt"
	"math"
)

// FineStructure is the electromagnetic coupling constant alpha.
const FineStructure = 1.0 / 137.036

// Quark describes one quark flavor's physical and topological parameters.
type Quark struct {
	Flavor    string  // "u" or "d"
	MassMeV   float64 // Rest mass in MeV/c^2
	Charge    float64 // Electric charge in units of e
	HolonomyK int     // Z3 holonomy class index (base angle = K * 2pi/3)
	Delta     float64 // Charge-coupled holonomy correction coefficient
}

// The two quark flavors the supported baryons are built from.
var (
	Up   = Quark{Flavor: "u", MassMeV: 2.3, Charge: 2.0 / 3.0, HolonomyK: 1, Delta: 0.10}
	Down = Quark{Flavor: "d", MassMeV: 4.8, Charge: -1.0 / 3.0, HolonomyK: 2, Delta: -0.20}
)

// Baryon describes a three-quark composite configuration.
type Baryon struct {
	Name             string
	Symbol           string
	Quarks           [3]Quark
	TotalMassMeV     float64
	BindingEnergyMeV float64
	TotalCharge      float64
}

var (
	Proton = Baryon{
		Name:             "proton",
		Symbol:           "p+",
		Quarks:           [3]Quark{Up, Up, Down},
		TotalMassMeV:     938.3,
		BindingEnergyMeV: -928.7,
		TotalCharge:      1.0,
	}
	Neutron = Baryon{
		Name:             "neutron",
		Symbol:           "n0",
		Quarks:           [3]Quark{Up, Down, Down},
		TotalMassMeV:     939.6,
		BindingEnergyMeV: -930.4,
		TotalCharge:      0.0,
	}
)

// BaryonByName returns the baryon configuration for "proton" or "neutron".
func BaryonByName(name string) (Baryon, error) {
	switch name {
	case "proton":
		return Proton, nil
	case "neutron":
		return Neutron, nil
	default:
		return Baryon{}, fmt.Errorf("physics: unknown baryon %q", name)
	}
}

// MassScale maps a quark's inverse mass into the [0.6, 1.4] visualization
// range: lighter quarks get larger bottles (uncertainty-principle scaling,
// dx ~ 1/m). Normalization is over the two supported flavors.
func (q Quark) MassScale() float64 {
	maxInv := 1.0 / Up.MassMeV   // lightest flavor
	minInv := 1.0 / Down.MassMeV // heaviest flavor
	inv := 1.0 / q.MassMeV
	return 0.6 + 0.8*(inv-minInv)/(maxInv-minInv)
}

// FluxArrows returns the flux line count for the quark, proportional to
// charge magnitude with a floor of 3 for visibility.
func (q Quark) FluxArrows() int {
	n := int(12 * math.Abs(q.Charge))
	if n < 3 {
		n = 3
	}
	return n
}

// FluxLength returns the flux arrow length, |Q| * sqrt(alpha) scaled onto a
// 0.4 base length.
func (q Quark) FluxLength() float64 {
	return 0.4 * math.Abs(q.Charge) * math.Sqrt(FineStructure)
}

// RotationSpeeds derives the per-quark surface spin rates from the baryon's
// binding energy: speed scales with sqrt of the per-quark energy/mass ratio,
// and lighter quarks spin faster.
func (b Baryon) RotationSpeeds() [3]float64 {
	const baseSpeed = 0.08
	bindMag := math.Abs(b.BindingEnergyMeV)

	var speeds [3]float64
	for i, q := range b.Quarks {
		energyMassRatio := bindMag / (3 * q.MassMeV)
		speed := baseSpeed * math.Sqrt(energyMassRatio/100)
		massFactor := 1.0 / math.Sqrt(q.MassMeV/Up.MassMeV)
		speeds[i] = speed * massFactor
	}
	return speeds
}
