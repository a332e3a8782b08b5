// Package renderer draws the deformed quark surfaces, bridge geometry and
// flux arrows with raylib's 3D primitives.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SurfaceRenderer draws a particle's vertex buffer as a wireframe grid.
// Vertices arrive as flat float64 x,y,z triples from the engine; conversion
// to float32 happens here, at the GPU boundary.
type SurfaceRenderer struct{}

// NewSurfaceRenderer creates a new surface renderer.
func NewSurfaceRenderer() *SurfaceRenderer {
	return &SurfaceRenderer{}
}

// Draw renders the wireframe for one particle surface. Must be called
// between BeginMode3D and EndMode3D.
func (r *SurfaceRenderer) Draw(buf []float64, uSeg, vSeg int, col rl.Color) {
	cols := vSeg + 1
	vertexAt := func(i, j int) rl.Vector3 {
		k := 3 * (i*cols + j)
		return rl.Vector3{
			X: float32(buf[k]),
			Y: float32(buf[k+1]),
			Z: float32(buf[k+2]),
		}
	}

	for i := 0; i <= uSeg; i++ {
		for j := 0; j <= vSeg; j++ {
			v := vertexAt(i, j)
			if i < uSeg {
				rl.DrawLine3D(v, vertexAt(i+1, j), col)
			}
			if j < vSeg {
				rl.DrawLine3D(v, vertexAt(i, j+1), col)
			}
		}
	}
}

// DrawAnchor marks a particle anchor with a small sphere.
func (r *SurfaceRenderer) DrawAnchor(x, y, z float64, col rl.Color) {
	rl.DrawSphere(rl.Vector3{X: float32(x), Y: float32(y), Z: float32(z)}, 0.08, col)
}
