// Package main provides CMA-ES search for deformation tunables that produce
// smooth, bounded merge animations.
package main

import (
	"github.com/pthm-cable/baryon/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable tunables.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Deformation
			{Name: "deform_intensity", Path: "deform.intensity", Min: 0.1, Max: 1.0, Default: 0.6},
			{Name: "viscosity", Path: "deform.viscosity", Min: 0.2, Max: 1.0, Default: 0.85},
			{Name: "tension", Path: "deform.tension", Min: 0.0, Max: 1.0, Default: 0.4},
			{Name: "wiggle_amplitude", Path: "deform.wiggle_amplitude", Min: 0.0, Max: 0.5, Default: 0.12},
			{Name: "wiggle_frequency", Path: "deform.wiggle_frequency", Min: 0.5, Max: 6.0, Default: 2.0},
			// Noise warp
			{Name: "noise_scale", Path: "noise.scale", Min: 0.3, Max: 4.0, Default: 1.5},
			{Name: "noise_time_speed", Path: "noise.time_speed", Min: 0.05, Max: 1.5, Default: 0.4},
			// Proximity
			{Name: "proximity_threshold", Path: "proximity.threshold", Min: 2.0, Max: 8.0, Default: 4.0},
			{Name: "proximity_decay", Path: "proximity.decay_rate", Min: 0.5, Max: 0.99, Default: 0.92},
			// Blending / bridges
			{Name: "blend_intensity", Path: "blend.intensity", Min: 0.3, Max: 1.0, Default: 0.8},
			{Name: "bridge_cutoff", Path: "blend.bridge_cutoff", Min: 1.0, Max: 5.0, Default: 2.5},
			{Name: "bridge_base_radius", Path: "blend.bridge_base_radius", Min: 0.05, Max: 0.8, Default: 0.3},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	i := 0
	cfg.Deform.Intensity = clamped[i]
	i++
	cfg.Deform.Viscosity = clamped[i]
	i++
	cfg.Deform.Tension = clamped[i]
	i++
	cfg.Deform.WiggleAmplitude = clamped[i]
	i++
	cfg.Deform.WiggleFrequency = clamped[i]
	i++
	cfg.Noise.Scale = clamped[i]
	i++
	cfg.Noise.TimeSpeed = clamped[i]
	i++
	cfg.Proximity.Threshold = clamped[i]
	i++
	cfg.Proximity.DecayRate = clamped[i]
	i++
	cfg.Blend.Intensity = clamped[i]
	i++
	cfg.Blend.BridgeCutoff = clamped[i]
	i++
	cfg.Blend.BridgeBaseRadius = clamped[i]
}
