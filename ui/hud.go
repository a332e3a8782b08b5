package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/baryon/engine"
)

// HUDData holds all the data needed to render the heads-up display.
type HUDData struct {
	Baryon       string
	Frame        int
	TotalFrames  int
	Progress     float64
	State        engine.PlayState
	Metrics      engine.Metrics
	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	m := data.Metrics

	rl.DrawText(
		fmt.Sprintf("%s  [%s]", strings.ToUpper(data.Baryon), strings.Join(m.Composition, " ")),
		10, 10, 20, rl.White,
	)

	rl.DrawText(
		fmt.Sprintf("Frame: %d/%d | Progress: %.0f%% | FPS: %d",
			data.Frame, data.TotalFrames, data.Progress*100, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Confinement: %.3f | Bridges: %d | Max disp: %.2f",
			m.ConfinementStrength, m.BridgeCount, m.MaxDisplacement),
		10, 55, 16, rl.LightGray,
	)

	stability := "UNSTABLE"
	stabilityColor := rl.Orange
	if m.IsStable {
		stability = "STABLE"
		stabilityColor = rl.Green
	}
	rl.DrawText(
		fmt.Sprintf("%s | color neutral: %v | bordism class: %d",
			stability, m.IsColorNeutral, m.BordismClass),
		10, 75, 16, stabilityColor,
	)

	rl.DrawText(data.State.String(), 10, 95, 16, rl.Yellow)

	h.drawProgressBar(data)
}

// drawProgressBar renders the merge progress strip along the bottom edge.
func (h *HUD) drawProgressBar(data HUDData) {
	barY := data.ScreenHeight - 18
	barW := data.ScreenWidth - 20

	rl.DrawRectangle(10, barY, barW, 8, rl.Color{R: 40, G: 40, B: 50, A: 200})
	rl.DrawRectangle(10, barY, int32(float64(barW)*data.Progress), 8, rl.SkyBlue)
	rl.DrawRectangleLines(10, barY, barW, 8, rl.DarkGray)
}

// ProgressBarSeek maps a mouse click on the progress strip to a progress
// value, or -1 when the click is outside the strip.
func (h *HUD) ProgressBarSeek(mouseX, mouseY, screenW, screenH int32) float64 {
	barY := screenH - 18
	barW := screenW - 20
	if mouseY < barY-4 || mouseY > barY+12 || mouseX < 10 || mouseX > 10+barW {
		return -1
	}
	return float64(mouseX-10) / float64(barW)
}
