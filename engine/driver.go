package engine

import (
	"fmt"
)

// PlayState is the driver's animation state.
type PlayState int

const (
	Stopped PlayState = iota
	Running
	Paused
)

// String returns the state name for logs and HUD display.
func (s PlayState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Driver advances the frame clock and invokes the engine pipeline on every
// scheduling tick. It owns the clock exclusively; all other components read
// progress through the tunables snapshot handed to Step.
type Driver struct {
	engine      *Engine
	state       PlayState
	frameIndex  int
	totalFrames int
	step        int
	dt          float64
}

// NewDriver creates a stopped driver over the given engine.
func NewDriver(e *Engine, totalFrames, step int, dt float64) (*Driver, error) {
	if totalFrames < 2 {
		return nil, fmt.Errorf("engine: totalFrames must be at least 2, got %d", totalFrames)
	}
	if step < 1 {
		step = 1
	}
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return &Driver{
		engine:      e,
		state:       Stopped,
		totalFrames: totalFrames,
		step:        step,
		dt:          dt,
	}, nil
}

// Play starts or resumes the animation.
func (d *Driver) Play() {
	d.state = Running
}

// Pause suspends scheduling without losing the frame position.
func (d *Driver) Pause() {
	if d.state == Running {
		d.state = Paused
	}
}

// Reset stops the animation and rewinds to frame zero from any state.
func (d *Driver) Reset() {
	d.state = Stopped
	d.frameIndex = 0
}

// State returns the current play state.
func (d *Driver) State() PlayState {
	return d.state
}

// FrameIndex returns the current frame within [0, totalFrames).
func (d *Driver) FrameIndex() int {
	return d.frameIndex
}

// Progress returns the normalized merge progress in [0, 1).
func (d *Driver) Progress() float64 {
	return float64(d.frameIndex) / float64(d.totalFrames)
}

// Time returns the animation clock in seconds, derived from the frame index
// rather than accumulated, so scrubbing is exact.
func (d *Driver) Time() float64 {
	return float64(d.frameIndex) * d.dt
}

// Tick advances the clock by the configured step and runs the pipeline.
// It does nothing unless the driver is Running.
func (d *Driver) Tick(tun Tunables) {
	if d.state != Running {
		return
	}
	d.frameIndex = (d.frameIndex + d.step) % d.totalFrames
	d.engine.Step(d.Time(), d.Progress(), tun)
}

// Seek jumps to the given progress and re-runs the pipeline exactly once.
// Seeking works in any state and never resumes playback by itself.
func (d *Driver) Seek(progress float64, tun Tunables) {
	progress = clamp01(progress)
	d.frameIndex = int(progress * float64(d.totalFrames))
	if d.frameIndex >= d.totalFrames {
		d.frameIndex = d.totalFrames - 1
	}
	d.engine.Step(d.Time(), d.Progress(), tun)
}

// SetStep changes the frames advanced per tick (minimum 1).
func (d *Driver) SetStep(step int) {
	if step < 1 {
		step = 1
	}
	d.step = step
}

// SetTotalFrames changes the cycle length, clamping the current frame into
// the new range.
func (d *Driver) SetTotalFrames(totalFrames int) error {
	if totalFrames < 2 {
		return fmt.Errorf("engine: totalFrames must be at least 2, got %d", totalFrames)
	}
	d.totalFrames = totalFrames
	if d.frameIndex >= totalFrames {
		d.frameIndex = totalFrames - 1
	}
	return nil
}
