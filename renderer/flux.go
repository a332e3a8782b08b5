package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/baryon/engine"
)

// FluxRenderer draws the radial charge-flux arrows around each particle
// anchor. Arrow count and length encode the quark's electric charge.
type FluxRenderer struct{}

// NewFluxRenderer creates a new flux renderer.
func NewFluxRenderer() *FluxRenderer {
	return &FluxRenderer{}
}

// Draw renders the flux arrows for one particle. Positive charge points
// outward, negative inward. Must be called between BeginMode3D and
// EndMode3D.
func (r *FluxRenderer) Draw(p *engine.Particle, col rl.Color) {
	count := p.Quark.FluxArrows()
	length := p.Quark.FluxLength()
	if count == 0 || length <= 0 {
		return
	}

	anchor := rl.Vector3{
		X: float32(p.Anchor.X),
		Y: float32(p.Anchor.Y),
		Z: float32(p.Anchor.Z),
	}
	// Arrows spin with the surface so charge direction reads at a glance.
	baseRadius := float32(p.BaseScale) * 1.2

	for a := 0; a < count; a++ {
		angle := p.RotationPhase + 2*math.Pi*float64(a)/float64(count)
		dir := rl.Vector3{
			X: float32(math.Cos(angle)),
			Y: float32(math.Sin(angle) * 0.4),
			Z: float32(math.Sin(angle)),
		}

		inner := rl.Vector3{
			X: anchor.X + dir.X*baseRadius,
			Y: anchor.Y + dir.Y*baseRadius,
			Z: anchor.Z + dir.Z*baseRadius,
		}
		outer := rl.Vector3{
			X: inner.X + dir.X*float32(length),
			Y: inner.Y + dir.Y*float32(length),
			Z: inner.Z + dir.Z*float32(length),
		}

		if p.Quark.Charge >= 0 {
			rl.DrawLine3D(inner, outer, col)
			rl.DrawSphere(outer, 0.03, col)
		} else {
			rl.DrawLine3D(outer, inner, col)
			rl.DrawSphere(inner, 0.03, col)
		}
	}
}
