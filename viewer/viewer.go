// Package viewer owns the animation loop: it wires the engine, driver,
// camera, renderers and telemetry together for both graphical and headless
// runs.
package viewer

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/baryon/camera"
	"github.com/pthm-cable/baryon/config"
	"github.com/pthm-cable/baryon/engine"
	"github.com/pthm-cable/baryon/renderer"
	"github.com/pthm-cable/baryon/telemetry"
	"github.com/pthm-cable/baryon/ui"
)

// Options configures a viewer run.
type Options struct {
	Seed              int64
	Headless          bool
	LogStats          bool
	StatsWindowFrames int
	OutputDir         string
	StepsPerUpdate    int
}

// Viewer drives the merge animation and its presentation.
type Viewer struct {
	cfg    *config.Config
	eng    *engine.Engine
	driver *engine.Driver
	tun    engine.Tunables

	cam      *camera.Camera
	surfaces *renderer.SurfaceRenderer
	bridges  *renderer.BridgeRenderer
	flux     *renderer.FluxRenderer
	hud      *ui.HUD
	panel    *ui.ControlsPanel

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	headless       bool
	logStats       bool
	stepsPerUpdate int

	// Cumulative tick count; unlike the driver's frame index it never wraps,
	// so telemetry windows stay monotonic.
	tick int
}

// New builds a viewer from the global config and the given options.
func New(opts Options) (*Viewer, error) {
	cfg := config.Cfg()

	eng, err := engine.New(cfg, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}

	driver, err := engine.NewDriver(eng, cfg.Animation.TotalFrames, cfg.Animation.FrameStep, cfg.Derived.DT)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}

	windowFrames := opts.StatsWindowFrames
	if windowFrames < 1 {
		windowFrames = int(cfg.Telemetry.StatsWindow / cfg.Derived.DT)
	}
	if windowFrames < 1 {
		windowFrames = 60
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	v := &Viewer{
		cfg:            cfg,
		eng:            eng,
		driver:         driver,
		tun:            engine.TunablesFromConfig(cfg),
		cam:            camera.New(14.0),
		surfaces:       renderer.NewSurfaceRenderer(),
		bridges:        renderer.NewBridgeRenderer(),
		flux:           renderer.NewFluxRenderer(),
		hud:            ui.NewHUD(),
		panel:          ui.NewControlsPanel(int32(cfg.Screen.Width)-230, 10, 220),
		collector:      telemetry.NewCollector(windowFrames),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:         output,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		stepsPerUpdate: stepsPerUpdate,
	}

	eng.SetPhaseHook(v.perf.StartPhase)
	driver.Play()

	slog.Info("viewer ready",
		"baryon", cfg.Composite.Baryon,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.USegments, cfg.Grid.VSegments),
		"total_frames", cfg.Animation.TotalFrames,
		"seed", opts.Seed,
		"headless", opts.Headless,
	)
	return v, nil
}

// Tick returns the cumulative tick count.
func (v *Viewer) Tick() int {
	return v.tick
}

// Driver exposes the animation driver for tests and tooling.
func (v *Viewer) Driver() *engine.Driver {
	return v.driver
}

// Engine exposes the engine for tests and tooling.
func (v *Viewer) Engine() *engine.Engine {
	return v.eng
}

// Tunables returns the current tunables snapshot.
func (v *Viewer) Tunables() engine.Tunables {
	return v.tun
}

// SetTunables replaces the tunables snapshot used from the next tick on.
func (v *Viewer) SetTunables(tun engine.Tunables) {
	tun.Clamp()
	v.tun = tun
}

// Unload flushes telemetry output.
func (v *Viewer) Unload() {
	if err := v.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
