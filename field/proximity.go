// Package field computes pairwise proximity influence between particle anchors.
package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// coincidentEps is the distance below which two anchors are treated as
// coincident: direction is the zero vector and influence is exactly zero,
// so no division by a vanishing norm can occur.
const coincidentEps = 1e-9

// Params holds the influence decay parameters.
type Params struct {
	Threshold     float64 // Influence is exactly 0 at or past this distance
	DecayRate     float64 // Exponential decay base within the threshold
	BaseInfluence float64 // Influence scale at zero distance
}

// Pair describes the relationship between two anchors (i -> j).
type Pair struct {
	Distance    float64 // |anchors[j] - anchors[i]|
	Direction   r3.Vec  // Unit vector i -> j; zero for coincident anchors
	Influence   float64 // In [0, BaseInfluence], non-increasing with distance
	ForceVector r3.Vec  // Direction * Influence
}

// Matrix holds the full ordered pairwise proximity state for one frame.
type Matrix struct {
	n     int
	pairs []Pair
}

// Compute evaluates every ordered anchor pair. It runs in O(n^2) and never
// fails: degenerate geometry (coincident anchors, huge separations) yields
// zero influence rather than an error.
func Compute(anchors []r3.Vec, p Params) *Matrix {
	n := len(anchors)
	m := &Matrix{n: n, pairs: make([]Pair, n*n)}
	m.Recompute(anchors, p)
	return m
}

// Recompute refills the matrix in place from current anchor positions.
// The anchor count must match the count the matrix was built with.
func (m *Matrix) Recompute(anchors []r3.Vec, p Params) {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				m.pairs[i*m.n+j] = Pair{}
				continue
			}
			m.pairs[i*m.n+j] = makePair(anchors[i], anchors[j], p)
		}
	}
}

func makePair(from, to r3.Vec, p Params) Pair {
	delta := r3.Sub(to, from)
	d := r3.Norm(delta)

	if d < coincidentEps {
		// Coincident anchors: no defined direction, no influence.
		return Pair{}
	}

	pair := Pair{
		Distance:  d,
		Direction: r3.Scale(1/d, delta),
	}

	if p.Threshold <= 0 || d >= p.Threshold {
		return pair
	}

	pair.Influence = p.BaseInfluence * (1 - d/p.Threshold) * math.Pow(p.DecayRate, d)
	pair.ForceVector = r3.Scale(pair.Influence, pair.Direction)
	return pair
}

// N returns the anchor count.
func (m *Matrix) N() int { return m.n }

// At returns the pair (i -> j). The diagonal is the zero Pair.
func (m *Matrix) At(i, j int) Pair {
	return m.pairs[i*m.n+j]
}

// InfluenceSum returns the total influence acting on anchor i from all others.
func (m *Matrix) InfluenceSum(i int) float64 {
	sum := 0.0
	for j := 0; j < m.n; j++ {
		sum += m.pairs[i*m.n+j].Influence
	}
	return sum
}

// AvgDistance returns the mean distance over unordered anchor pairs.
// It returns 0 for fewer than two anchors.
func (m *Matrix) AvgDistance() float64 {
	if m.n < 2 {
		return 0
	}
	sum := 0.0
	count := 0
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			sum += m.pairs[i*m.n+j].Distance
			count++
		}
	}
	return sum / float64(count)
}

// MaxInfluence returns the largest influence in the matrix.
func (m *Matrix) MaxInfluence() float64 {
	best := 0.0
	for _, p := range m.pairs {
		if p.Influence > best {
			best = p.Influence
		}
	}
	return best
}
