// Package config provides configuration loading and access for the visualization.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualization configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Animation AnimationConfig `yaml:"animation"`
	Grid      GridConfig      `yaml:"grid"`
	Deform    DeformConfig    `yaml:"deform"`
	Noise     NoiseConfig     `yaml:"noise"`
	Proximity ProximityConfig `yaml:"proximity"`
	Blend     BlendConfig     `yaml:"blend"`
	Composite CompositeConfig `yaml:"composite"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// AnimationConfig holds merge animation timing parameters.
type AnimationConfig struct {
	TotalFrames int `yaml:"total_frames"` // Frames for one full merge cycle
	FrameStep   int `yaml:"frame_step"`   // Frames advanced per tick (>= 1)
}

// GridConfig holds parametric surface resolution.
// Vertex count per particle is (u_segments+1) * (v_segments+1).
type GridConfig struct {
	USegments int `yaml:"u_segments"`
	VSegments int `yaml:"v_segments"`
}

// DeformConfig holds surface deformation tunables. All intensities live in [0,1].
type DeformConfig struct {
	Intensity       float64 `yaml:"intensity"`        // Overall deformation strength
	Viscosity       float64 `yaml:"viscosity"`        // Damping applied to proximity pull
	Tension         float64 `yaml:"tension"`          // Surface tension correction strength
	WiggleAmplitude float64 `yaml:"wiggle_amplitude"` // Per-particle desync oscillation
	WiggleFrequency float64 `yaml:"wiggle_frequency"` // Oscillation frequency (rad/s)
}

// NoiseConfig holds Perlin warp field parameters.
type NoiseConfig struct {
	Scale      float64 `yaml:"scale"`      // Base noise frequency
	TimeSpeed  float64 `yaml:"time_speed"` // Speed of noise animation (0 = static)
	Octaves    int     `yaml:"octaves"`    // FBM octaves (1 = plain Perlin)
	Lacunarity float64 `yaml:"lacunarity"` // Frequency multiplier per octave
	Gain       float64 `yaml:"gain"`       // Amplitude multiplier per octave
}

// ProximityConfig holds inter-anchor influence parameters.
type ProximityConfig struct {
	Threshold     float64 `yaml:"threshold"`      // Distance past which influence is exactly 0
	DecayRate     float64 `yaml:"decay_rate"`     // Exponential decay base within threshold
	BaseInfluence float64 `yaml:"base_influence"` // Influence scale at zero distance
}

// BlendConfig holds merge blending and bridge parameters.
type BlendConfig struct {
	Intensity           float64 `yaml:"intensity"`            // Blend strength in [0,1]
	SmoothingIterations int     `yaml:"smoothing_iterations"` // Laplacian relaxation passes
	BridgeCutoff        float64 `yaml:"bridge_cutoff"`        // Max anchor distance for bridges
	BridgeActivation    float64 `yaml:"bridge_activation"`    // Anchor distance enabling bridges (0 = derive)
	BridgeBaseRadius    float64 `yaml:"bridge_base_radius"`   // Bridge radius at activation
}

// CompositeConfig selects the baryon configuration to animate.
type CompositeConfig struct {
	Baryon  string       `yaml:"baryon"`  // "proton" or "neutron"
	Anchors [][3]float64 `yaml:"anchors"` // Initial anchor positions, one per quark
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	VertexCount      int     // (USegments+1) * (VSegments+1)
	BufferLen        int     // 3 * VertexCount
	DT               float64 // Seconds per tick at target FPS
	BridgeActivation float64 // Effective bridge activation distance
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations that cannot enter the per-frame pipeline
// and clamps soft tunables into their documented ranges.
func (c *Config) Validate() error {
	if c.Grid.USegments < 2 || c.Grid.VSegments < 2 {
		return fmt.Errorf("config: grid resolution must be at least 2x2, got %dx%d",
			c.Grid.USegments, c.Grid.VSegments)
	}
	if c.Animation.TotalFrames < 2 {
		return fmt.Errorf("config: total_frames must be at least 2, got %d", c.Animation.TotalFrames)
	}
	if c.Animation.FrameStep < 1 {
		c.Animation.FrameStep = 1
	}
	if len(c.Composite.Anchors) == 0 {
		return fmt.Errorf("config: composite requires at least one anchor")
	}
	if c.Composite.Baryon != "proton" && c.Composite.Baryon != "neutron" {
		return fmt.Errorf("config: unknown baryon %q", c.Composite.Baryon)
	}

	// Soft tunables are clamped, not rejected: the interactive panel may push
	// values out of range mid-animation and the loop has to keep running.
	c.Deform.Intensity = clamp01(c.Deform.Intensity)
	c.Deform.Viscosity = clamp01(c.Deform.Viscosity)
	c.Deform.Tension = clamp01(c.Deform.Tension)
	c.Blend.Intensity = clamp01(c.Blend.Intensity)
	c.Proximity.Threshold = maxf(c.Proximity.Threshold, 0)
	c.Proximity.DecayRate = clamp01(c.Proximity.DecayRate)
	c.Proximity.BaseInfluence = maxf(c.Proximity.BaseInfluence, 0)
	c.Blend.BridgeCutoff = maxf(c.Blend.BridgeCutoff, 0)
	c.Blend.BridgeBaseRadius = maxf(c.Blend.BridgeBaseRadius, 0)
	if c.Blend.SmoothingIterations < 0 {
		c.Blend.SmoothingIterations = 0
	}
	if c.Blend.SmoothingIterations > 16 {
		c.Blend.SmoothingIterations = 16
	}
	if c.Noise.Octaves < 1 {
		c.Noise.Octaves = 1
	}
	return nil
}

// Refresh recomputes derived values after programmatic edits, e.g. by the
// tuner applying a candidate parameter vector.
func (c *Config) Refresh() {
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.VertexCount = (c.Grid.USegments + 1) * (c.Grid.VSegments + 1)
	c.Derived.BufferLen = 3 * c.Derived.VertexCount
	if c.Screen.TargetFPS > 0 {
		c.Derived.DT = 1.0 / float64(c.Screen.TargetFPS)
	} else {
		c.Derived.DT = 1.0 / 60.0
	}

	// The bridge activation distance and the proximity threshold are
	// independent knobs; when activation is unset it derives from the
	// threshold so bridges never appear before proximity influence exists.
	c.Derived.BridgeActivation = c.Blend.BridgeActivation
	if c.Derived.BridgeActivation <= 0 {
		c.Derived.BridgeActivation = 0.75 * c.Proximity.Threshold
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
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
