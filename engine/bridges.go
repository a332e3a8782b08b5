package engine

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Bridge is the tapered connective geometry between two converging anchors.
type Bridge struct {
	I, J   int     // Anchor indices
	Center r3.Vec  // Midpoint between the anchors
	Axis   r3.Vec  // Unit vector from anchor I to anchor J
	Length float64 // Anchor separation
	Radius float64 // Cylinder radius at the center
	Taper  float64 // End taper in [0,1]; higher = pointier ends
}

// ComputeBridges emits a bridge for every anchor pair that is both inside
// the distance cutoff and past its activation point. Activation depends on
// progress as well as distance: closer pairs activate earlier, and no bridge
// appears before the pair is genuinely close, which prevents geometry
// snapping into view.
func ComputeBridges(anchors []r3.Vec, progress float64, tun Tunables) []Bridge {
	var bridges []Bridge
	if tun.BridgeCutoff <= 0 || tun.BridgeActivation <= 0 {
		return bridges
	}

	for i := 0; i < len(anchors); i++ {
		for j := i + 1; j < len(anchors); j++ {
			delta := r3.Sub(anchors[j], anchors[i])
			d := r3.Norm(delta)
			if d >= tun.BridgeCutoff || d < 1e-9 {
				continue
			}

			// A pair at the activation boundary needs full progress; a
			// coincident pair needs none.
			if progress <= d/tun.BridgeActivation {
				continue
			}

			// Radius shrinks as the merge advances and as the pair closes:
			// the neck thins into the fused composite.
			radius := tun.BridgeBaseRadius * (1 - 0.6*progress) * (0.4 + 0.6*d/tun.BridgeCutoff)
			if radius < 0.02 {
				radius = 0.02
			}

			bridges = append(bridges, Bridge{
				I:      i,
				J:      j,
				Center: r3.Add(anchors[i], r3.Scale(0.5, delta)),
				Axis:   r3.Scale(1/d, delta),
				Length: d,
				Radius: radius,
				Taper:  clamp01(progress),
			})
		}
	}
	return bridges
}
