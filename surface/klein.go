// Package surface evaluates the parametric Klein bottle immersion each
// particle's deformable mesh is built from.
package surface

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ringRadius is the figure-8 immersion's central ring radius. It sets the
// unscaled bottle proportions and is not a tunable.
const ringRadius = 2.0

// Point evaluates the figure-8 immersion of the Klein bottle at parameters
// (u, v), both nominally in [0, 2pi). Out-of-range parameters produce the
// periodic continuation of the surface; the trigonometric form needs no
// clamping. The surface is scaled by scale, rotated by rotation about the
// z-axis (x,y components only), then translated by offset.
func Point(u, v, scale float64, offset r3.Vec, rotation float64) r3.Vec {
	su, cu := math.Sincos(u / 2)
	sv, cv := math.Sincos(v)
	s2v := 2 * sv * cv // sin(2v)

	r := ringRadius + cu*sv - su*s2v

	sinU, cosU := math.Sincos(u)
	x := r * cosU
	y := r * sinU
	z := su*sv + cu*s2v

	if rotation != 0 {
		sr, cr := math.Sincos(rotation)
		x, y = x*cr-y*sr, x*sr+y*cr
	}

	return r3.Vec{
		X: x*scale + offset.X,
		Y: y*scale + offset.Y,
		Z: z*scale + offset.Z,
	}
}

// UV maps grid indices (i, j) on a (uSegments x vSegments) grid to parameter
// space. Both parameters sweep the full [0, 2pi] period inclusive of the
// closing seam row/column.
func UV(i, j, uSegments, vSegments int) (u, v float64) {
	u = 2 * math.Pi * float64(i) / float64(uSegments)
	v = 2 * math.Pi * float64(j) / float64(vSegments)
	return u, v
}
