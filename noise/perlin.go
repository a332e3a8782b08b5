// Package noise provides deterministic gradient noise for organic surface warping.
package noise

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// grads is the classic 16-entry gradient set: the 12 edge midpoints of a
// cube plus 4 repeats for a power-of-two hash.
var grads = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// Perlin generates coherent gradient noise. It is deterministic for a fixed
// seed: the permutation table is shuffled once at construction and repeated
// calls with identical inputs return identical outputs.
type Perlin struct {
	perm [512]int
}

// NewPerlin creates a new Perlin noise generator seeded once for its lifetime.
func NewPerlin(seed int64) *Perlin {
	rng := rand.New(rand.NewSource(seed))

	table := make([]int, 256)
	for i := range table {
		table[i] = i
	}
	rng.Shuffle(256, func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})

	p := &Perlin{}
	// Doubled so lattice hashing never indexes out of range.
	copy(p.perm[:256], table)
	copy(p.perm[256:], table)
	return p
}

// hash folds a lattice corner into the permutation table.
func (p *Perlin) hash(xi, yi, zi int) int {
	return p.perm[p.perm[p.perm[xi]+yi]+zi]
}

// dotGrad returns the dot product of the hashed corner gradient with the
// offset from that corner.
func dotGrad(h int, dx, dy, dz float64) float64 {
	g := grads[h&15]
	return g[0]*dx + g[1]*dy + g[2]*dz
}

// Noise3D returns a noise value in [-1, 1] for 3D coordinates. It is
// continuous across integer lattice boundaries and accepts any finite input;
// lattice coordinates wrap via floor + masking.
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi := int(fx) & 255
	yi := int(fy) & 255
	zi := int(fz) & 255
	dx := x - fx
	dy := y - fy
	dz := z - fz

	fu := fade(dx)
	fv := fade(dy)
	fw := fade(dz)

	// Dot products at the 8 cube corners.
	c000 := dotGrad(p.hash(xi, yi, zi), dx, dy, dz)
	c100 := dotGrad(p.hash(xi+1, yi, zi), dx-1, dy, dz)
	c010 := dotGrad(p.hash(xi, yi+1, zi), dx, dy-1, dz)
	c110 := dotGrad(p.hash(xi+1, yi+1, zi), dx-1, dy-1, dz)
	c001 := dotGrad(p.hash(xi, yi, zi+1), dx, dy, dz-1)
	c101 := dotGrad(p.hash(xi+1, yi, zi+1), dx-1, dy, dz-1)
	c011 := dotGrad(p.hash(xi, yi+1, zi+1), dx, dy-1, dz-1)
	c111 := dotGrad(p.hash(xi+1, yi+1, zi+1), dx-1, dy-1, dz-1)

	// Trilinear blend along x, then y, then z.
	x00 := mix(fu, c000, c100)
	x10 := mix(fu, c010, c110)
	x01 := mix(fu, c001, c101)
	x11 := mix(fu, c011, c111)
	y0 := mix(fv, x00, x10)
	y1 := mix(fv, x01, x11)
	return mix(fw, y0, y1)
}

// Noise2D returns a noise value for 2D coordinates.
func (p *Perlin) Noise2D(x, y float64) float64 {
	return p.Noise3D(x, y, 0)
}

// FBM3D sums octaves of Noise3D with the given lacunarity and gain.
// With octaves <= 1 it reduces to plain Noise3D.
func (p *Perlin) FBM3D(x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	if octaves <= 1 {
		return p.Noise3D(x, y, z)
	}
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for o := 0; o < octaves; o++ {
		sum += amp * p.Noise3D(x*freq, y*freq, z*freq)
		norm += amp
		freq *= lacunarity
		amp *= gain
	}
	return sum / norm
}

// Warp samples three decorrelated noise fields, one per axis, at the given
// point. The fixed per-axis offsets keep the components independent so the
// resulting warp vector has no preferred direction.
func (p *Perlin) Warp(x, y, z float64, octaves int, lacunarity, gain float64) r3.Vec {
	return r3.Vec{
		X: p.FBM3D(x, y, z, octaves, lacunarity, gain),
		Y: p.FBM3D(x+31.416, y+47.853, z+12.793, octaves, lacunarity, gain),
		Z: p.FBM3D(x-17.234, y+88.611, z-41.507, octaves, lacunarity, gain),
	}
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func mix(t, a, b float64) float64 {
	return a + t*(b-a)
}
