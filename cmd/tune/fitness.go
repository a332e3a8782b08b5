package main

import (
	"math"

	"github.com/pthm-cable/baryon/config"
	"github.com/pthm-cable/baryon/engine"
	"github.com/pthm-cable/baryon/telemetry"
)

// Displacement safety band: candidates whose max per-vertex displacement
// leaves this range are heavily penalized.
const (
	dispFloor = 0.1
	dispCeil  = 10.0
)

// FitnessEvaluator runs headless merge cycles and scores the animation
// quality of a tunables candidate. Lower fitness is better.
type FitnessEvaluator struct {
	params     *ParamVector
	seeds      []int64
	baseConfig *config.Config

	lastQuality float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	return fe.lastQuality
}

// Evaluate computes fitness for a raw parameter vector, averaged over the
// configured seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	cfg.Refresh()

	total := 0.0
	quality := 0.0
	for _, seed := range fe.seeds {
		f, q := fe.runOnce(cfg, seed)
		total += f
		quality += q
	}
	n := float64(len(fe.seeds))
	fe.lastQuality = quality / n
	return total / n
}

// runOnce plays a full merge cycle headlessly and scores it.
func (fe *FitnessEvaluator) runOnce(cfg *config.Config, seed int64) (fitness, quality float64) {
	eng, err := engine.New(cfg, seed)
	if err != nil {
		return 1e9, 0
	}
	tun := engine.TunablesFromConfig(cfg)

	frames := cfg.Animation.TotalFrames
	dt := cfg.Derived.DT

	confinements := make([]float64, 0, frames)
	displacements := make([]float64, 0, frames)
	bridgeFrames := 0
	blownFrames := 0
	peakDisp := 0.0

	for f := 0; f < frames; f++ {
		progress := float64(f) / float64(frames)
		eng.Step(float64(f)*dt, progress, tun)

		m := eng.Metrics()
		confinements = append(confinements, m.ConfinementStrength)
		displacements = append(displacements, m.MaxDisplacement)

		if m.BridgeCount > 0 {
			bridgeFrames++
		}
		if m.MaxDisplacement > peakDisp {
			peakDisp = m.MaxDisplacement
		}
		if m.MaxDisplacement >= dispCeil || math.IsNaN(m.MaxDisplacement) {
			blownFrames++
		}
	}

	// Penalty terms, each normalized to roughly [0,1]:
	//  - blown: any frame past the displacement ceiling is disqualifying
	//  - flat: peak displacement far below the floor reads as a dead animation
	//  - popping: confinement should evolve smoothly over the cycle
	//  - bridgeless: the merge should visibly connect the surfaces
	blown := float64(blownFrames) / float64(frames)
	flat := 0.0
	if peakDisp < dispFloor {
		flat = 1 - peakDisp/dispFloor
	}
	popping := telemetry.Smoothness(confinements)
	bridgeless := 1 - float64(bridgeFrames)/float64(frames/3)
	if bridgeless < 0 {
		bridgeless = 0
	}

	_, _, _, dispP90, _ := telemetry.ComputeSampleStats(displacements)

	fitness = 100*blown + 10*flat + 5*popping + 3*bridgeless + 0.1*dispP90
	quality = 1 / (1 + fitness)
	return fitness, quality
}

// copyConfig clones the base config so candidate edits never leak between
// evaluations.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cp := *fe.baseConfig
	return &cp
}
