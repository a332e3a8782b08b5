// Package engine drives the per-frame surface deformation pipeline: anchor
// interpolation, proximity influence, vertex displacement, merge blending,
// bridge geometry, and the composite stability metrics.
package engine

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/baryon/config"
	"github.com/pthm-cable/baryon/field"
	"github.com/pthm-cable/baryon/holonomy"
	"github.com/pthm-cable/baryon/physics"
)

// Engine owns the particle set and their vertex buffers. It is explicitly
// constructed and caller-owned; instances are independent, so tests can run
// engines in parallel without shared state.
type Engine struct {
	baryon      physics.Baryon
	particles   []*Particle
	uSeg, vSeg  int
	buffers     [][]float64
	deformer    *Deformer
	prox        *field.Matrix
	bridges     []Bridge
	metrics     Metrics
	mergeTarget r3.Vec
	phaseHook   func(name string)
}

// SetPhaseHook installs a callback invoked at the start of each pipeline
// phase within Step. Used by the viewer to attribute tick time.
func (e *Engine) SetPhaseHook(hook func(name string)) {
	e.phaseHook = hook
}

func (e *Engine) phase(name string) {
	if e.phaseHook != nil {
		e.phaseHook(name)
	}
}

// New builds an engine from a validated config. The seed fixes the noise
// field for the engine's lifetime.
func New(cfg *config.Config, seed int64) (*Engine, error) {
	e := &Engine{
		deformer:    NewDeformer(seed),
		mergeTarget: r3.Vec{},
	}
	if err := e.SetGrid(cfg.Grid.USegments, cfg.Grid.VSegments); err != nil {
		return nil, err
	}
	if err := e.SelectComposite(cfg.Composite.Baryon, cfg.Composite.Anchors); err != nil {
		return nil, err
	}
	return e, nil
}

// SelectComposite replaces the particle set with the named baryon's quarks
// anchored at the given initial positions. Existing buffers are rebuilt.
func (e *Engine) SelectComposite(baryonName string, anchors [][3]float64) error {
	if len(anchors) == 0 {
		return fmt.Errorf("engine: composite requires at least one anchor")
	}
	b, err := physics.BaryonByName(baryonName)
	if err != nil {
		return err
	}

	vecs := make([]r3.Vec, len(anchors))
	for i, a := range anchors {
		vecs[i] = r3.Vec{X: a[0], Y: a[1], Z: a[2]}
	}

	e.baryon = b
	e.particles = newParticles(b, vecs)
	e.prox = field.Compute(vecs, field.Params{})
	e.allocBuffers()
	return nil
}

// SetGrid changes the surface resolution. This is a quality knob, not a
// correctness one, but degenerate grids are rejected at this boundary.
func (e *Engine) SetGrid(uSeg, vSeg int) error {
	if uSeg < 2 || vSeg < 2 {
		return fmt.Errorf("engine: grid resolution must be at least 2x2, got %dx%d", uSeg, vSeg)
	}
	e.uSeg = uSeg
	e.vSeg = vSeg
	e.allocBuffers()
	return nil
}

func (e *Engine) allocBuffers() {
	if len(e.particles) == 0 {
		e.buffers = nil
		return
	}
	n := 3 * (e.uSeg + 1) * (e.vSeg + 1)
	e.buffers = make([][]float64, len(e.particles))
	for i := range e.buffers {
		e.buffers[i] = make([]float64, n)
	}
}

// Step runs the per-frame pipeline for the given animation time and merge
// progress. Ordering matters within the tick: anchors advance first, the
// proximity field is rebuilt from the advanced anchors, deformation reads
// that field, and blending and bridges read the deformed buffers.
func (e *Engine) Step(time, progress float64, tun Tunables) {
	tun.Clamp()

	e.phase("advance")
	anchors := make([]r3.Vec, len(e.particles))
	for i, p := range e.particles {
		p.advance(time, progress, e.mergeTarget)
		anchors[i] = p.Anchor
	}

	e.phase("proximity")
	e.prox.Recompute(anchors, field.Params{
		Threshold:     tun.ProximityThreshold,
		DecayRate:     tun.ProximityDecay,
		BaseInfluence: tun.BaseInfluence,
	})

	e.phase("deform")
	maxDisp := 0.0
	for i, p := range e.particles {
		if d := e.deformer.DeformGrid(e.buffers[i], p, e.uSeg, e.vSeg, time, tun, e.prox); d > maxDisp {
			maxDisp = d
		}
	}

	e.phase("blend")
	mergePass(e.buffers, e.prox, progress, tun)

	e.phase("bridges")
	e.bridges = ComputeBridges(anchors, progress, tun)

	e.phase("metrics")
	states := holonomy.States(e.baryon, progress, true)
	neutral := holonomy.ColorNeutral(states)
	bordism := bordismClass(e.buffers, e.particles, e.uSeg, e.vSeg)

	e.metrics = Metrics{
		ConfinementStrength: holonomy.ConfinementStrength(states, progress, e.prox.AvgDistance()),
		IsColorNeutral:      neutral,
		BordismClass:        bordism,
		IsStable:            neutral && bordism == 0,
		Holonomies:          states,
		Composition:         sortedComposition(e.particles),
		Barycenter:          barycenter(e.particles),
		MaxDisplacement:     maxDisp,
		BridgeCount:         len(e.bridges),
	}
}

// VertexBuffer returns particle i's flat x,y,z buffer. The slice is a
// read-only snapshot valid until the next Step.
func (e *Engine) VertexBuffer(i int) []float64 {
	return e.buffers[i]
}

// ParticleCount returns the number of particles in the composite.
func (e *Engine) ParticleCount() int {
	return len(e.particles)
}

// Particles returns the live particle set for rendering.
func (e *Engine) Particles() []*Particle {
	return e.particles
}

// Metrics returns the most recent frame's scalar metrics.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// Bridges returns the bridge geometry from the most recent frame; empty when
// no pair is inside activation range.
func (e *Engine) Bridges() []Bridge {
	return e.bridges
}

// AvgAnchorDistance returns the mean pairwise anchor distance as of the
// most recent Step.
func (e *Engine) AvgAnchorDistance() float64 {
	return e.prox.AvgDistance()
}

// Baryon returns the selected composite configuration.
func (e *Engine) Baryon() physics.Baryon {
	return e.baryon
}

// GridSize returns the current (uSegments, vSegments) resolution.
func (e *Engine) GridSize() (int, int) {
	return e.uSeg, e.vSeg
}
