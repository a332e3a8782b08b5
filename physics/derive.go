package physics

import "math"

// Performance targets for real-time rendering of three deforming surfaces.
const (
	targetVerticesPerFrame = 10000
	minGridSegments        = 20
	maxGridSegments        = 50
)

// OptimalGridSegments derives a square grid resolution from the per-frame
// vertex budget split across the three quark surfaces, clamped to keep
// enough samples for the bottle topology without hurting frame rate.
func OptimalGridSegments() int {
	verticesPerQuark := targetVerticesPerFrame / 3
	segments := int(math.Sqrt(float64(verticesPerQuark))) - 1
	if segments < minGridSegments {
		segments = minGridSegments
	}
	if segments > maxGridSegments {
		segments = maxGridSegments
	}
	return segments
}

// AnimationPhases breaks a merge cycle into its four phases.
type AnimationPhases struct {
	Separation    int // Initial separation hold
	Approach      int // Quarks approaching
	Merger        int // Active merging
	Stabilization int // Final stabilization
}

// OptimalFrameCount derives the merge cycle length from a 60 fps target over
// a 10 second animation, scaled down by 10x for interactive playback.
func OptimalFrameCount() int {
	const fpsTarget = 60
	const durationSec = 10
	return fpsTarget * durationSec / 10
}

// PhaseBreakdown splits totalFrames into the canonical merge phases
// (20% separation, 50% approach, 20% merger, 10% stabilization).
func PhaseBreakdown(totalFrames int) AnimationPhases {
	return AnimationPhases{
		Separation:    int(0.2 * float64(totalFrames)),
		Approach:      int(0.5 * float64(totalFrames)),
		Merger:        int(0.2 * float64(totalFrames)),
		Stabilization: int(0.1 * float64(totalFrames)),
	}
}
