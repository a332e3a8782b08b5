package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/baryon/engine"
)

// BridgeRenderer draws the connective geometry between converging anchors.
type BridgeRenderer struct{}

// NewBridgeRenderer creates a new bridge renderer.
func NewBridgeRenderer() *BridgeRenderer {
	return &BridgeRenderer{}
}

// Draw renders each bridge as a tapered cylinder between its anchor pair.
// Must be called between BeginMode3D and EndMode3D.
func (r *BridgeRenderer) Draw(bridges []engine.Bridge, col rl.Color) {
	for _, b := range bridges {
		half := rl.Vector3{
			X: float32(b.Axis.X * b.Length / 2),
			Y: float32(b.Axis.Y * b.Length / 2),
			Z: float32(b.Axis.Z * b.Length / 2),
		}
		center := rl.Vector3{
			X: float32(b.Center.X),
			Y: float32(b.Center.Y),
			Z: float32(b.Center.Z),
		}
		start := rl.Vector3{X: center.X - half.X, Y: center.Y - half.Y, Z: center.Z - half.Z}
		end := rl.Vector3{X: center.X + half.X, Y: center.Y + half.Y, Z: center.Z + half.Z}

		// Ends taper toward the anchors as the merge advances. Two half
		// cylinders share the thick center, thinning toward each anchor.
		endRadius := float32(b.Radius) * (1 - 0.8*float32(b.Taper))
		if endRadius < 0.005 {
			endRadius = 0.005
		}

		rl.DrawCylinderEx(center, start, float32(b.Radius), endRadius, 8, col)
		rl.DrawCylinderEx(center, end, float32(b.Radius), endRadius, 8, col)
	}
}
