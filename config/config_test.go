package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Grid.USegments != 30 || cfg.Grid.VSegments != 30 {
		t.Errorf("expected 30x30 grid, got %dx%d", cfg.Grid.USegments, cfg.Grid.VSegments)
	}
	if cfg.Animation.TotalFrames != 100 {
		t.Errorf("expected 100 total frames, got %d", cfg.Animation.TotalFrames)
	}
	if cfg.Composite.Baryon != "proton" {
		t.Errorf("expected default baryon proton, got %q", cfg.Composite.Baryon)
	}
	if len(cfg.Composite.Anchors) != 3 {
		t.Fatalf("expected 3 default anchors, got %d", len(cfg.Composite.Anchors))
	}
	if cfg.Proximity.Threshold != 4.0 {
		t.Errorf("expected proximity threshold 4.0, got %f", cfg.Proximity.Threshold)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("grid:\n  u_segments: 12\n  v_segments: 8\ncomposite:\n  baryon: neutron\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Grid.USegments != 12 || cfg.Grid.VSegments != 8 {
		t.Errorf("expected 12x8 grid, got %dx%d", cfg.Grid.USegments, cfg.Grid.VSegments)
	}
	if cfg.Composite.Baryon != "neutron" {
		t.Errorf("expected baryon neutron, got %q", cfg.Composite.Baryon)
	}
	// Fields absent from the file keep their defaults
	if cfg.Animation.TotalFrames != 100 {
		t.Errorf("expected default total frames 100, got %d", cfg.Animation.TotalFrames)
	}
	if cfg.Blend.Intensity != 0.8 {
		t.Errorf("expected default blend intensity 0.8, got %f", cfg.Blend.Intensity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error loading missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid too small", func(c *Config) { c.Grid.USegments = 1 }},
		{"degenerate v segments", func(c *Config) { c.Grid.VSegments = 0 }},
		{"single frame cycle", func(c *Config) { c.Animation.TotalFrames = 1 }},
		{"no anchors", func(c *Config) { c.Composite.Anchors = nil }},
		{"unknown baryon", func(c *Config) { c.Composite.Baryon = "lambda" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateClampsSoftTunables(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Deform.Intensity = 1.8
	cfg.Deform.Viscosity = -0.3
	cfg.Blend.SmoothingIterations = 99
	cfg.Proximity.Threshold = -2
	cfg.Noise.Octaves = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("soft tunables should clamp, not reject: %v", err)
	}
	if cfg.Deform.Intensity != 1.0 {
		t.Errorf("expected intensity clamped to 1.0, got %f", cfg.Deform.Intensity)
	}
	if cfg.Deform.Viscosity != 0.0 {
		t.Errorf("expected viscosity clamped to 0.0, got %f", cfg.Deform.Viscosity)
	}
	if cfg.Blend.SmoothingIterations != 16 {
		t.Errorf("expected smoothing clamped to 16, got %d", cfg.Blend.SmoothingIterations)
	}
	if cfg.Proximity.Threshold != 0 {
		t.Errorf("expected threshold clamped to 0, got %f", cfg.Proximity.Threshold)
	}
	if cfg.Noise.Octaves != 1 {
		t.Errorf("expected octaves raised to 1, got %d", cfg.Noise.Octaves)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	wantVerts := 31 * 31
	if cfg.Derived.VertexCount != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, cfg.Derived.VertexCount)
	}
	if cfg.Derived.BufferLen != 3*wantVerts {
		t.Errorf("expected buffer length %d, got %d", 3*wantVerts, cfg.Derived.BufferLen)
	}
	if math.Abs(cfg.Derived.DT-1.0/60.0) > 1e-12 {
		t.Errorf("expected dt 1/60, got %f", cfg.Derived.DT)
	}
}

func TestBridgeActivationDerivesFromThreshold(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	// Defaults leave bridge_activation at 0, so it derives as 0.75 * threshold.
	want := 0.75 * cfg.Proximity.Threshold
	if math.Abs(cfg.Derived.BridgeActivation-want) > 1e-12 {
		t.Errorf("expected derived activation %f, got %f", want, cfg.Derived.BridgeActivation)
	}

	cfg.Blend.BridgeActivation = 1.7
	cfg.Refresh()
	if cfg.Derived.BridgeActivation != 1.7 {
		t.Errorf("explicit activation should win, got %f", cfg.Derived.BridgeActivation)
	}
}

func TestRefreshRecomputesDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	cfg.Grid.USegments = 10
	cfg.Grid.VSegments = 10
	cfg.Refresh()

	if cfg.Derived.VertexCount != 121 {
		t.Errorf("expected 121 vertices after refresh, got %d", cfg.Derived.VertexCount)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Composite.Baryon = "neutron"
	cfg.Deform.Intensity = 0.42
	cfg.Animation.TotalFrames = 240

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading yaml: %v", err)
	}
	if loaded.Composite.Baryon != "neutron" {
		t.Errorf("expected baryon neutron after roundtrip, got %q", loaded.Composite.Baryon)
	}
	if math.Abs(loaded.Deform.Intensity-0.42) > 1e-12 {
		t.Errorf("expected intensity 0.42 after roundtrip, got %f", loaded.Deform.Intensity)
	}
	if loaded.Animation.TotalFrames != 240 {
		t.Errorf("expected 240 frames after roundtrip, got %d", loaded.Animation.TotalFrames)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	old := global
	global = nil
	defer func() {
		global = old
		if r := recover(); r == nil {
			t.Error("expected panic from Cfg() before Init()")
		}
	}()
	Cfg()
}

func TestInitSetsGlobal(t *testing.T) {
	old := global
	defer func() { global = old }()

	if err := Init(""); err != nil {
		t.Fatalf("init with defaults: %v", err)
	}
	if Cfg().Grid.USegments != 30 {
		t.Errorf("expected global config grid 30, got %d", Cfg().Grid.USegments)
	}
}
