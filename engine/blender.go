package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/baryon/field"
)

// relaxFactor is how far one relaxation pass pulls each blended vertex
// toward the midpoint of its A/B counterparts.
const relaxFactor = 0.5

// Blend interpolates two flat vertex buffers by mergeProgress. The factor is
// eased twice (smoothstep, then cubic ease-in-out) and scaled by the blend
// intensity, then the result is relaxed toward the per-vertex A/B midpoint
// for the configured number of smoothing passes.
//
// Mismatched buffer lengths are not an error: the shorter side is sampled by
// index ratio so every output vertex has a counterpart on both sides.
func Blend(a, b []float64, mergeProgress float64, tun Tunables) []float64 {
	na := len(a) / 3
	nb := len(b) / 3
	n := na
	if nb > n {
		n = nb
	}
	out := make([]float64, 3*n)
	if n == 0 {
		return out
	}

	p := clamp01(mergeProgress)
	t := cubicEaseInOut(smoothstep(p)) * tun.BlendIntensity

	// Relaxation acts only mid-transition: the envelope vanishes at both
	// endpoints so blend(A,B,0) stays A and blend(A,B,1) stays B.
	relax := relaxFactor * 4 * p * (1 - p)

	for k := 0; k < n; k++ {
		va := sampleVertex(a, na, k, n)
		vb := sampleVertex(b, nb, k, n)

		v := r3.Add(r3.Scale(1-t, va), r3.Scale(t, vb))

		mid := r3.Scale(0.5, r3.Add(va, vb))
		for pass := 0; pass < tun.SmoothingIterations; pass++ {
			v = r3.Add(v, r3.Scale(relax, r3.Sub(mid, v)))
		}

		out[3*k] = v.X
		out[3*k+1] = v.Y
		out[3*k+2] = v.Z
	}
	return out
}

// sampleVertex reads vertex k of an n-vertex output from a buffer holding
// src vertices, using nearest-neighbor index-ratio lookup when sizes differ.
func sampleVertex(buf []float64, src, k, n int) r3.Vec {
	if src == 0 {
		return r3.Vec{}
	}
	idx := k
	if src != n && n > 1 {
		idx = int(math.Round(float64(k) * float64(src-1) / float64(n-1)))
	}
	if idx >= src {
		idx = src - 1
	}
	return r3.Vec{X: buf[3*idx], Y: buf[3*idx+1], Z: buf[3*idx+2]}
}

// mergePass pulls each pair of surfaces toward each other once their anchors
// are inside the bridge activation range. The pull strength follows the pair
// influence and the merge progress, so surfaces flow together instead of
// popping.
func mergePass(buffers [][]float64, prox *field.Matrix, progress float64, tun Tunables) {
	if tun.BlendIntensity == 0 {
		return
	}
	for i := 0; i < len(buffers); i++ {
		for j := i + 1; j < len(buffers); j++ {
			pair := prox.At(i, j)
			if pair.Distance >= tun.BridgeActivation || pair.Influence == 0 {
				continue
			}

			w := tun.BlendIntensity * smoothstep(progress) * pair.Influence
			if w <= 0 {
				continue
			}
			if w > 0.5 {
				w = 0.5 // symmetric pull never crosses the midpoint
			}
			pullToward(buffers[i], buffers[j], w)
			pullToward(buffers[j], buffers[i], w)
		}
	}
}

// pullToward moves each vertex of dst fraction w toward its index-ratio
// counterpart in src.
func pullToward(dst, src []float64, w float64) {
	nd := len(dst) / 3
	ns := len(src) / 3
	if nd == 0 || ns == 0 {
		return
	}
	for k := 0; k < nd; k++ {
		v := r3.Vec{X: dst[3*k], Y: dst[3*k+1], Z: dst[3*k+2]}
		s := sampleVertex(src, ns, k, nd)
		v = r3.Add(v, r3.Scale(w, r3.Sub(s, v)))
		dst[3*k] = v.X
		dst[3*k+1] = v.Y
		dst[3*k+2] = v.Z
	}
}

// cubicEaseInOut is the standard cubic ease on [0,1].
func cubicEaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// MaxVertexDisplacement returns the largest per-vertex distance between two
// equally sized buffers. Used by the topological-integrity check: a value
// past the safety bound signals a deformation-parameter misconfiguration.
func MaxVertexDisplacement(original, deformed []float64) float64 {
	n := len(original)
	if len(deformed) < n {
		n = len(deformed)
	}
	maxSq := 0.0
	for k := 0; k+2 < n; k += 3 {
		dx := deformed[k] - original[k]
		dy := deformed[k+1] - original[k+1]
		dz := deformed[k+2] - original[k+2]
		if sq := dx*dx + dy*dy + dz*dz; sq > maxSq {
			maxSq = sq
		}
	}
	return math.Sqrt(maxSq)
}

// AllFinite reports whether every coordinate in the buffer is finite.
func AllFinite(buf []float64) bool {
	for _, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
