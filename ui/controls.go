// Package ui renders the tunables panel and heads-up display.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/baryon/engine"
)

// ControlsPanel renders the right-side sliders for the live tunables.
// Changed values take effect on the next tick; the panel never mutates the
// snapshot mid-frame.
type ControlsPanel struct {
	x, y    int32
	width   int32
	visible bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width, visible: true}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// slider draws one labeled slider row and returns the (possibly unchanged)
// value.
func (c *ControlsPanel) slider(y *float32, label string, value, min, max float32) float32 {
	px := float32(c.x)
	rl.DrawText(label, c.x, int32(*y), 14, rl.Gray)
	*y += 18
	got := gui.SliderBar(
		rl.Rectangle{X: px, Y: *y, Width: float32(c.width - 70), Height: 20},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", got), c.x+c.width-60, int32(*y+2), 16, rl.DarkGray)
	*y += 30
	return got
}

// Draw renders the panel and returns the edited tunables. Playback buttons
// report their presses through the returned Actions.
func (c *ControlsPanel) Draw(tun engine.Tunables, state engine.PlayState) (engine.Tunables, Actions) {
	var act Actions
	if !c.visible {
		return tun, act
	}

	y := float32(c.y)
	rl.DrawText("Tunables", c.x, int32(y), 20, rl.DarkGray)
	y += 30

	tun.DeformIntensity = float64(c.slider(&y, "Deform intensity", float32(tun.DeformIntensity), 0, 1))
	tun.Viscosity = float64(c.slider(&y, "Viscosity", float32(tun.Viscosity), 0, 1))
	tun.Tension = float64(c.slider(&y, "Surface tension", float32(tun.Tension), 0, 1))
	tun.WiggleAmplitude = float64(c.slider(&y, "Wiggle amplitude", float32(tun.WiggleAmplitude), 0, 1))
	tun.WiggleFrequency = float64(c.slider(&y, "Wiggle frequency", float32(tun.WiggleFrequency), 0, 8))
	tun.NoiseScale = float64(c.slider(&y, "Noise scale", float32(tun.NoiseScale), 0.1, 5))
	tun.NoiseTimeSpeed = float64(c.slider(&y, "Noise time speed", float32(tun.NoiseTimeSpeed), 0, 2))
	tun.ProximityThreshold = float64(c.slider(&y, "Proximity threshold", float32(tun.ProximityThreshold), 0.5, 10))
	tun.ProximityDecay = float64(c.slider(&y, "Proximity decay", float32(tun.ProximityDecay), 0, 1))
	tun.BlendIntensity = float64(c.slider(&y, "Blend intensity", float32(tun.BlendIntensity), 0, 1))
	tun.BridgeCutoff = float64(c.slider(&y, "Bridge cutoff", float32(tun.BridgeCutoff), 0.5, 6))
	tun.BridgeBaseRadius = float64(c.slider(&y, "Bridge radius", float32(tun.BridgeBaseRadius), 0.05, 1))

	smoothing := c.slider(&y, "Smoothing passes", float32(tun.SmoothingIterations), 0, 8)
	tun.SmoothingIterations = int(smoothing + 0.5)

	y += 10
	px := float32(c.x)
	playLabel := "Play"
	if state == engine.Running {
		playLabel = "Pause"
	}
	if gui.Button(rl.Rectangle{X: px, Y: y, Width: 90, Height: 28}, playLabel) {
		act.TogglePlay = true
	}
	if gui.Button(rl.Rectangle{X: px + 100, Y: y, Width: 90, Height: 28}, "Reset") {
		act.Reset = true
	}
	y += 38
	if gui.Button(rl.Rectangle{X: px, Y: y, Width: 90, Height: 28}, "Proton") {
		act.SelectBaryon = "proton"
	}
	if gui.Button(rl.Rectangle{X: px + 100, Y: y, Width: 90, Height: 28}, "Neutron") {
		act.SelectBaryon = "neutron"
	}

	return tun, act
}

// Actions carries the button presses from one panel draw.
type Actions struct {
	TogglePlay   bool
	Reset        bool
	SelectBaryon string // Empty when no selection was made
}
