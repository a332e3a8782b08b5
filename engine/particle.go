package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/baryon/physics"
)

// Particle is one deforming quark surface inside a composite. Anchor and
// RotationPhase are recomputed every tick from the frame clock; the rest is
// fixed at composite selection time.
type Particle struct {
	Index         int
	Quark         physics.Quark
	InitialAnchor r3.Vec  // Anchor at progress 0
	Anchor        r3.Vec  // Current interpolated anchor
	BaseScale     float64 // Inverse-mass visualization scale
	RotationSpeed float64 // Surface spin rate (rad per frame-second)
	RotationPhase float64 // Current spin angle about the particle axis
	NoiseOffset   r3.Vec  // Fixed per-particle decorrelation offset
}

// newParticles builds the three quark surfaces for a baryon, anchored at the
// given initial positions. Noise offsets are large fixed strides so sibling
// noise fields never overlap in lattice space.
func newParticles(b physics.Baryon, anchors []r3.Vec) []*Particle {
	speeds := b.RotationSpeeds()

	particles := make([]*Particle, len(anchors))
	for i := range anchors {
		q := b.Quarks[i%len(b.Quarks)]
		particles[i] = &Particle{
			Index:         i,
			Quark:         q,
			InitialAnchor: anchors[i],
			Anchor:        anchors[i],
			BaseScale:     q.MassScale(),
			RotationSpeed: speeds[i%len(speeds)],
			NoiseOffset: r3.Vec{
				X: float64(i) * 37.41,
				Y: float64(i) * 91.73,
				Z: float64(i) * 53.29,
			},
		}
	}
	return particles
}

// advance interpolates the anchor toward the merge target and recomputes the
// spin phase for the given frame time. Both values derive from (time,
// progress) rather than accumulating, so scrubbing and replay are exact.
func (p *Particle) advance(time, progress float64, target r3.Vec) {
	t := smoothstep(progress)
	p.Anchor = r3.Add(r3.Scale(1-t, p.InitialAnchor), r3.Scale(t, target))
	p.RotationPhase = math.Mod(p.RotationSpeed*time*60, 2*math.Pi)
}

// smoothstep is the cubic ease t^2 (3 - 2t) on [0,1].
func smoothstep(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
