package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/baryon/field"
	"github.com/pthm-cable/baryon/noise"
	"github.com/pthm-cable/baryon/surface"
)

// Fixed amplitude coefficients for the bounded deformation contributions.
// Every term below is a product of a [0,1] tunable and bounded trigonometric
// or exponential factors, so displacement magnitude never grows with elapsed
// time.
const (
	breatheAmp  = 0.15
	tensionAmp  = 0.05
	warpAmp     = 0.25
	bulgeGain   = 0.15
	bulgeCap    = 0.3 // of deform intensity
	vertexEps   = 1e-9
	vortexAxisZ = 1.0
)

// Deformer computes per-vertex displaced positions for a particle surface.
// It is stateless apart from the seeded noise field, so identical inputs
// always produce identical output.
type Deformer struct {
	noise *noise.Perlin
}

// NewDeformer creates a deformer with a noise field seeded once for its
// lifetime.
func NewDeformer(seed int64) *Deformer {
	return &Deformer{noise: noise.NewPerlin(seed)}
}

// Deform evaluates the displaced position of the surface vertex at (u, v)
// for particle p at the given animation time. Contributions are applied as
// an ordered sum on top of the parametric base point:
//
//	breathing + proximity pull + tension + noise warp + wiggle,
//	scaled by (1 + bulge), translated by the particle anchor.
func (d *Deformer) Deform(p *Particle, u, v, time float64, tun Tunables, prox *field.Matrix) r3.Vec {
	base := surface.Point(u, v, p.BaseScale, r3.Vec{}, p.RotationPhase)
	intensity := tun.DeformIntensity

	// Sinusoidal breathing: bounded by intensity, continuous in time.
	disp := r3.Vec{
		X: breatheAmp * intensity * math.Sin(2*u+time) * math.Cos(v),
		Y: breatheAmp * intensity * math.Sin(v+1.3*time) * math.Cos(u),
		Z: breatheAmp * intensity * 0.7 * math.Sin(u+v+0.7*time),
	}

	// Proximity-driven pull toward, away from, or around sibling anchors.
	world := r3.Add(base, p.Anchor)
	for j := 0; j < prox.N(); j++ {
		if j == p.Index {
			continue
		}
		pair := prox.At(p.Index, j)
		if pair.Influence == 0 {
			continue
		}

		otherAnchor := r3.Add(p.Anchor, r3.Scale(pair.Distance, pair.Direction))
		toAnchor := r3.Sub(otherAnchor, world)
		dist := r3.Norm(toAnchor)
		if dist < vertexEps {
			continue
		}
		dir := r3.Scale(1/dist, toAnchor)

		amp := intensity * tun.Viscosity * pair.Influence * math.Exp(-dist)
		switch j % 3 {
		case 0: // attract
			disp = r3.Add(disp, r3.Scale(amp, dir))
		case 1: // repel
			disp = r3.Sub(disp, r3.Scale(amp, dir))
		default: // vortex: tangential swirl about the z axis
			tangent := r3.Cross(dir, r3.Vec{Z: vortexAxisZ})
			tn := r3.Norm(tangent)
			if tn > vertexEps {
				disp = r3.Add(disp, r3.Scale(amp/tn, tangent))
			}
		}
	}

	// Surface tension correction.
	tension := tun.Tension * tensionAmp
	disp.X += tension * math.Sin(4*u) * math.Cos(4*v)
	disp.Y += tension * math.Cos(4*u) * math.Sin(4*v)
	disp.Z += tension * math.Sin(4*u) * math.Sin(4*v)

	// Time-varying Perlin warp, decorrelated per particle via NoiseOffset.
	np := r3.Add(r3.Scale(tun.NoiseScale, base), p.NoiseOffset)
	nt := time * tun.NoiseTimeSpeed
	warp := d.noise.Warp(np.X+nt, np.Y+nt, np.Z+nt, tun.NoiseOctaves, tun.NoiseLacunarity, tun.NoiseGain)
	disp = r3.Add(disp, r3.Scale(warpAmp*intensity, warp))

	// Independent per-particle wiggle, phase-shifted by index so siblings
	// visibly desynchronize.
	phase := float64(p.Index) * math.Pi / 3
	wig := tun.WiggleAmplitude * math.Sin(time*tun.WiggleFrequency+phase)
	disp.X += wig * math.Cos(u)
	disp.Y += wig * math.Sin(v)
	disp.Z += 0.5 * wig * math.Sin(u+phase)

	// Local bulge: grows with proximity influence, capped at a fixed
	// fraction of the intensity so the surface cannot self-collapse.
	bulge := bulgeGain * prox.InfluenceSum(p.Index)
	if limit := bulgeCap * intensity; bulge > limit {
		bulge = limit
	}

	out := r3.Scale(1+bulge, r3.Add(base, disp))
	return r3.Add(out, p.Anchor)
}

// DeformGrid fills dst (a flat x,y,z buffer of (uSeg+1)*(vSeg+1) vertices)
// with the displaced surface and returns the max displacement from the
// undeformed, anchor-translated base surface.
func (d *Deformer) DeformGrid(dst []float64, p *Particle, uSeg, vSeg int, time float64, tun Tunables, prox *field.Matrix) float64 {
	maxDisp := 0.0
	k := 0
	for i := 0; i <= uSeg; i++ {
		for j := 0; j <= vSeg; j++ {
			u, v := surface.UV(i, j, uSeg, vSeg)
			pt := d.Deform(p, u, v, time, tun, prox)

			baseWorld := r3.Add(surface.Point(u, v, p.BaseScale, r3.Vec{}, p.RotationPhase), p.Anchor)
			if disp := r3.Norm(r3.Sub(pt, baseWorld)); disp > maxDisp {
				maxDisp = disp
			}

			dst[k] = pt.X
			dst[k+1] = pt.Y
			dst[k+2] = pt.Z
			k += 3
		}
	}
	return maxDisp
}
