package engine

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/baryon/holonomy"
)

// Metrics is the per-frame scalar summary of the composite, handed to the
// UI layer as a concrete record rather than an untyped blob.
type Metrics struct {
	ConfinementStrength float64
	IsColorNeutral      bool
	BordismClass        int // 0 = stable parity, 1 = unstable
	IsStable            bool
	Holonomies          []holonomy.State
	Composition         []string // Sorted quark flavors, e.g. [d u u]
	Barycenter          r3.Vec
	MaxDisplacement     float64
	BridgeCount         int
}

// minoritySignFraction is the minimum share of the minority curvature sign
// needed for a surface to count as a valid (mixed-curvature) bottle. A
// surface deformed until its curvature collapses to one sign fails the
// predicate.
const minoritySignFraction = 0.2

// curvatureValid is the discrete topological-validity predicate: it samples
// the umbrella operator (vertex minus ring average) over interior grid
// vertices, takes the sign of its radial component relative to the particle
// anchor, and requires both curvature signs to be meaningfully present.
func curvatureValid(buf []float64, uSeg, vSeg int, anchor r3.Vec) bool {
	cols := vSeg + 1
	vertexAt := func(i, j int) r3.Vec {
		k := 3 * (i*cols + j)
		return r3.Vec{X: buf[k], Y: buf[k+1], Z: buf[k+2]}
	}

	pos, neg := 0, 0
	for i := 1; i < uSeg; i++ {
		for j := 1; j < vSeg; j++ {
			v := vertexAt(i, j)
			ring := r3.Scale(0.25, r3.Add(
				r3.Add(vertexAt(i-1, j), vertexAt(i+1, j)),
				r3.Add(vertexAt(i, j-1), vertexAt(i, j+1)),
			))
			umbrella := r3.Sub(ring, v)
			radial := r3.Sub(v, anchor)

			if r3.Dot(umbrella, radial) >= 0 {
				pos++
			} else {
				neg++
			}
		}
	}

	total := pos + neg
	if total == 0 {
		return false
	}
	minority := pos
	if neg < minority {
		minority = neg
	}
	return float64(minority) >= minoritySignFraction*float64(total)
}

// bordismClass returns the parity of how many particle surfaces pass the
// curvature-validity predicate: an even count is class 0 (stable), an odd
// count class 1.
func bordismClass(buffers [][]float64, particles []*Particle, uSeg, vSeg int) int {
	passes := 0
	for i, p := range particles {
		if curvatureValid(buffers[i], uSeg, vSeg, p.Anchor) {
			passes++
		}
	}
	return passes % 2
}

// sortedComposition returns the composite's quark flavors in sorted order.
func sortedComposition(particles []*Particle) []string {
	flavors := make([]string, len(particles))
	for i, p := range particles {
		flavors[i] = p.Quark.Flavor
	}
	sort.Strings(flavors)
	return flavors
}

// barycenter returns the mean of the current anchor positions.
func barycenter(particles []*Particle) r3.Vec {
	if len(particles) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range particles {
		sum = r3.Add(sum, p.Anchor)
	}
	return r3.Scale(1/float64(len(particles)), sum)
}
