package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/baryon/ui"
)

// Per-flavor wireframe colors: up quarks warm, down quarks cool.
var flavorColors = map[string]rl.Color{
	"u": {R: 245, G: 120, B: 66, A: 255},
	"d": {R: 66, G: 135, B: 245, A: 255},
}

var bridgeColor = rl.Color{R: 240, G: 220, B: 130, A: 200}

// Draw renders one display frame. Only called in graphical mode.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 12, B: 20, A: 255})

	camX, camY, camZ := v.cam.Position()
	cam3d := rl.Camera3D{
		Position:   rl.Vector3{X: camX, Y: camY, Z: camZ},
		Target:     rl.Vector3{X: v.cam.TargetX, Y: v.cam.TargetY, Z: v.cam.TargetZ},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam3d)
	rl.DrawGrid(16, 1)

	uSeg, vSeg := v.eng.GridSize()
	for i, p := range v.eng.Particles() {
		col, ok := flavorColors[p.Quark.Flavor]
		if !ok {
			col = rl.Gray
		}
		v.surfaces.Draw(v.eng.VertexBuffer(i), uSeg, vSeg, col)
		v.surfaces.DrawAnchor(p.Anchor.X, p.Anchor.Y, p.Anchor.Z, col)
		v.flux.Draw(p, rl.Fade(col, 0.7))
	}

	v.bridges.Draw(v.eng.Bridges(), bridgeColor)
	rl.EndMode3D()

	v.hud.Draw(ui.HUDData{
		Baryon:       v.eng.Baryon().Name,
		Frame:        v.driver.FrameIndex(),
		TotalFrames:  v.cfg.Animation.TotalFrames,
		Progress:     v.driver.Progress(),
		State:        v.driver.State(),
		Metrics:      v.eng.Metrics(),
		FPS:          rl.GetFPS(),
		ScreenWidth:  int32(v.cfg.Screen.Width),
		ScreenHeight: int32(v.cfg.Screen.Height),
	})

	tun, act := v.panel.Draw(v.tun, v.driver.State())
	v.SetTunables(tun)
	v.applyActions(act)

	rl.EndDrawing()
	v.perf.RecordFrame()
}
