package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the animation tick.
const (
	PhaseAdvance   = "advance"
	PhaseProximity = "proximity"
	PhaseDeform    = "deform"
	PhaseBlend     = "blend"
	PhaseBridges   = "bridges"
	PhaseMetrics   = "metrics"
	PhaseRender    = "render"
	PhaseTelemetry = "telemetry"
)

// tickPhases orders the pipeline phases for log output.
var tickPhases = []string{
	PhaseAdvance, PhaseProximity, PhaseDeform, PhaseBlend,
	PhaseBridges, PhaseMetrics, PhaseRender, PhaseTelemetry,
}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector attributes tick time to pipeline phases over a rolling
// window. Running sums are maintained incrementally so Stats stays cheap
// enough to call every frame; min and max still scan the ring.
type PerfCollector struct {
	ring     []PerfSample
	head     int
	filled   int
	tickSum  time.Duration
	phaseSum map[string]time.Duration

	phaseAccum map[string]time.Duration
	tickBegan  time.Time
	phaseBegan time.Time
	openPhase  string

	// Wall-clock frame interval, distinct from tick time: a paused viewer
	// still draws frames.
	prevFrame     time.Time
	frameInterval time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		ring:       make([]PerfSample, windowSize),
		phaseSum:   make(map[string]time.Duration),
		phaseAccum: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new animation tick.
func (p *PerfCollector) StartTick() {
	p.tickBegan = time.Now()
	p.phaseAccum = make(map[string]time.Duration)
	p.openPhase = ""
}

// StartPhase begins timing a named phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	p.closePhase(time.Now())
	p.openPhase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.openPhase != "" {
		p.phaseAccum[p.openPhase] += now.Sub(p.phaseBegan)
	}
	p.phaseBegan = now
}

// EndTick closes the current tick and folds it into the window, evicting
// the oldest sample once the ring is full.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.openPhase = ""

	evicted := p.ring[p.head]
	if p.filled == len(p.ring) {
		p.tickSum -= evicted.TickDuration
		for phase, dur := range evicted.Phases {
			p.phaseSum[phase] -= dur
		}
	} else {
		p.filled++
	}

	sample := PerfSample{
		TickDuration: now.Sub(p.tickBegan),
		Phases:       p.phaseAccum,
	}
	p.ring[p.head] = sample
	p.head = (p.head + 1) % len(p.ring)

	p.tickSum += sample.TickDuration
	for phase, dur := range sample.Phases {
		p.phaseSum[phase] += dur
	}
}

// RecordFrame marks a drawn frame for wall-clock FPS tracking.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.prevFrame.IsZero() {
		p.frameInterval = now.Sub(p.prevFrame)
	}
	p.prevFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Phase breakdown (average durations and percentage of tick time)
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameInterval,
	}
	if p.frameInterval > 0 {
		out.FPS = float64(time.Second) / float64(p.frameInterval)
	}
	if p.filled == 0 {
		return out
	}

	n := time.Duration(p.filled)
	out.AvgTickDuration = p.tickSum / n

	for i := 0; i < p.filled; i++ {
		d := p.ring[i].TickDuration
		if i == 0 || d < out.MinTickDuration {
			out.MinTickDuration = d
		}
		if d > out.MaxTickDuration {
			out.MaxTickDuration = d
		}
	}

	for phase, sum := range p.phaseSum {
		if sum <= 0 {
			continue
		}
		avg := sum / n
		out.PhaseAvg[phase] = avg
		if out.AvgTickDuration > 0 {
			out.PhasePct[phase] = float64(avg) / float64(out.AvgTickDuration) * 100
		}
	}

	if out.AvgTickDuration > 0 {
		out.TicksPerSecond = float64(time.Second) / float64(out.AvgTickDuration)
	}
	return out
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range tickPhases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int     `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	AdvancePct   float64 `csv:"advance_pct"`
	ProximityPct float64 `csv:"proximity_pct"`
	DeformPct    float64 `csv:"deform_pct"`
	BlendPct     float64 `csv:"blend_pct"`
	BridgesPct   float64 `csv:"bridges_pct"`
	MetricsPct   float64 `csv:"metrics_pct"`
	RenderPct    float64 `csv:"render_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		AdvancePct:   s.PhasePct[PhaseAdvance],
		ProximityPct: s.PhasePct[PhaseProximity],
		DeformPct:    s.PhasePct[PhaseDeform],
		BlendPct:     s.PhasePct[PhaseBlend],
		BridgesPct:   s.PhasePct[PhaseBridges],
		MetricsPct:   s.PhasePct[PhaseMetrics],
		RenderPct:    s.PhasePct[PhaseRender],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
