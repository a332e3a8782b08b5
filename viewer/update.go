package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/baryon/engine"
	"github.com/pthm-cable/baryon/telemetry"
	"github.com/pthm-cable/baryon/ui"
)

// UpdateHeadless advances the animation without any graphics work.
func (v *Viewer) UpdateHeadless() {
	for i := 0; i < v.stepsPerUpdate; i++ {
		v.step()
	}
}

// Update handles input and advances the animation for one display frame.
func (v *Viewer) Update() {
	v.handleInput()
	v.step()
}

// step runs one driver tick plus telemetry bookkeeping.
func (v *Viewer) step() {
	v.perf.StartTick()

	v.driver.Tick(v.tun)

	v.perf.StartPhase(telemetry.PhaseTelemetry)
	if v.driver.State() == engine.Running {
		v.tick++
		v.recordFrame()
	}

	v.perf.EndTick()
}

// recordFrame pushes the frame's metrics into the collector and flushes the
// window when due.
func (v *Viewer) recordFrame() {
	m := v.eng.Metrics()
	v.collector.Record(telemetry.FrameSample{
		Frame:             v.tick,
		Time:              v.driver.Time(),
		Progress:          v.driver.Progress(),
		Confinement:       m.ConfinementStrength,
		MaxDisplacement:   m.MaxDisplacement,
		BridgeCount:       m.BridgeCount,
		ColorNeutral:      m.IsColorNeutral,
		BordismClass:      m.BordismClass,
		Stable:            m.IsStable,
		AvgAnchorDistance: v.eng.AvgAnchorDistance(),
	})

	if !v.collector.ShouldFlush(v.tick) {
		return
	}

	stats := v.collector.Flush(v.tick)
	if v.logStats {
		stats.LogStats()
		v.perf.Stats().LogStats()
	}
	if err := v.output.WriteTelemetry(stats); err == nil {
		v.output.WritePerf(v.perf.Stats(), v.tick)
	}
}

// handleInput maps mouse and keyboard input onto the camera and driver.
// Only called in graphical mode.
func (v *Viewer) handleInput() {
	// Orbit with right mouse drag.
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		v.cam.Orbit(delta.X*0.005, -delta.Y*0.005)
	}

	// Dolly with the wheel.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.Dolly(1 - wheel*0.1)
	}

	// Scrub by clicking the progress strip.
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		p := v.hud.ProgressBarSeek(int32(pos.X), int32(pos.Y),
			int32(v.cfg.Screen.Width), int32(v.cfg.Screen.Height))
		if p >= 0 {
			v.driver.Seek(p, v.tun)
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		v.togglePlay()
	case rl.IsKeyPressed(rl.KeyR):
		v.driver.Reset()
		v.driver.Seek(0, v.tun)
	case rl.IsKeyPressed(rl.KeyC):
		v.cam.Reset()
	case rl.IsKeyPressed(rl.KeyTab):
		v.panel.Toggle()
	case rl.IsKeyPressed(rl.KeyRight):
		v.driver.Seek(v.driver.Progress()+0.01, v.tun)
	case rl.IsKeyPressed(rl.KeyLeft):
		v.driver.Seek(v.driver.Progress()-0.01, v.tun)
	}
}

func (v *Viewer) togglePlay() {
	if v.driver.State() == engine.Running {
		v.driver.Pause()
	} else {
		v.driver.Play()
	}
}

// applyActions executes the control-panel button presses.
func (v *Viewer) applyActions(act ui.Actions) {
	if act.TogglePlay {
		v.togglePlay()
	}
	if act.Reset {
		v.driver.Reset()
		v.driver.Seek(0, v.tun)
	}
	if act.SelectBaryon != "" && act.SelectBaryon != v.eng.Baryon().Name {
		if err := v.eng.SelectComposite(act.SelectBaryon, v.cfg.Composite.Anchors); err == nil {
			v.driver.Reset()
			v.driver.Seek(0, v.tun)
		}
	}
}
