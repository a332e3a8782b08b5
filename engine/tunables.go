package engine

import "github.com/pthm-cable/baryon/config"

// Tunables is the immutable per-tick parameter snapshot handed down the
// pipeline. The driver owns the authoritative copy; consumers never mutate
// shared state mid-frame.
type Tunables struct {
	// Deformation
	DeformIntensity float64 // [0,1] overall deformation strength
	Viscosity       float64 // [0,1] damping on proximity pull
	Tension         float64 // [0,1] surface tension correction
	WiggleAmplitude float64 // [0,1] per-particle desync oscillation
	WiggleFrequency float64 // rad/s

	// Noise warp
	NoiseScale      float64
	NoiseTimeSpeed  float64
	NoiseOctaves    int
	NoiseLacunarity float64
	NoiseGain       float64

	// Proximity
	ProximityThreshold float64
	ProximityDecay     float64
	BaseInfluence      float64

	// Blending / bridges
	BlendIntensity      float64 // [0,1]
	SmoothingIterations int
	BridgeCutoff        float64
	BridgeActivation    float64
	BridgeBaseRadius    float64
}

// TunablesFromConfig builds a snapshot from a validated config.
func TunablesFromConfig(c *config.Config) Tunables {
	return Tunables{
		DeformIntensity:     c.Deform.Intensity,
		Viscosity:           c.Deform.Viscosity,
		Tension:             c.Deform.Tension,
		WiggleAmplitude:     c.Deform.WiggleAmplitude,
		WiggleFrequency:     c.Deform.WiggleFrequency,
		NoiseScale:          c.Noise.Scale,
		NoiseTimeSpeed:      c.Noise.TimeSpeed,
		NoiseOctaves:        c.Noise.Octaves,
		NoiseLacunarity:     c.Noise.Lacunarity,
		NoiseGain:           c.Noise.Gain,
		ProximityThreshold:  c.Proximity.Threshold,
		ProximityDecay:      c.Proximity.DecayRate,
		BaseInfluence:       c.Proximity.BaseInfluence,
		BlendIntensity:      c.Blend.Intensity,
		SmoothingIterations: c.Blend.SmoothingIterations,
		BridgeCutoff:        c.Blend.BridgeCutoff,
		BridgeActivation:    c.Derived.BridgeActivation,
		BridgeBaseRadius:    c.Blend.BridgeBaseRadius,
	}
}

// Clamp forces every tunable into its documented range. Called at the
// setter boundary so the per-vertex loop never needs range checks.
func (t *Tunables) Clamp() {
	t.DeformIntensity = clamp01(t.DeformIntensity)
	t.Viscosity = clamp01(t.Viscosity)
	t.Tension = clamp01(t.Tension)
	t.WiggleAmplitude = clamp01(t.WiggleAmplitude)
	if t.WiggleFrequency < 0 {
		t.WiggleFrequency = 0
	}
	if t.NoiseScale < 0 {
		t.NoiseScale = 0
	}
	if t.NoiseTimeSpeed < 0 {
		t.NoiseTimeSpeed = 0
	}
	if t.NoiseOctaves < 1 {
		t.NoiseOctaves = 1
	}
	t.ProximityThreshold = maxf(t.ProximityThreshold, 0)
	t.ProximityDecay = clamp01(t.ProximityDecay)
	t.BaseInfluence = maxf(t.BaseInfluence, 0)
	t.BlendIntensity = clamp01(t.BlendIntensity)
	if t.SmoothingIterations < 0 {
		t.SmoothingIterations = 0
	}
	if t.SmoothingIterations > 16 {
		t.SmoothingIterations = 16
	}
	t.BridgeCutoff = maxf(t.BridgeCutoff, 0)
	t.BridgeActivation = maxf(t.BridgeActivation, 0)
	t.BridgeBaseRadius = maxf(t.BridgeBaseRadius, 0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
