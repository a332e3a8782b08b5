package telemetry

import (
	"log/slog"
	"math"
	"sort"
)

// WindowStats holds aggregated pipeline statistics for a frame window.
type WindowStats struct {
	WindowStartFrame int     `csv:"-"`
	WindowEndFrame   int     `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`
	Progress         float64 `csv:"progress"`

	// Confinement over the window
	ConfinementMean float64 `csv:"confinement_mean"`
	ConfinementP10  float64 `csv:"confinement_p10"`
	ConfinementP50  float64 `csv:"confinement_p50"`
	ConfinementP90  float64 `csv:"confinement_p90"`
	ConfinementMax  float64 `csv:"confinement_max"`

	// Vertex displacement over the window
	DisplacementMean float64 `csv:"displacement_mean"`
	DisplacementP90  float64 `csv:"displacement_p90"`
	DisplacementMax  float64 `csv:"displacement_max"`

	// Bridge geometry
	BridgeFrames   int `csv:"bridge_frames"`   // Frames with at least one bridge
	PeakBridges    int `csv:"peak_bridges"`    // Largest per-frame bridge count
	BridgesAtClose int `csv:"bridges_at_close"` // Bridge count on the window's last frame

	// Stability
	StableFrames  int `csv:"stable_frames"`
	NeutralFrames int `csv:"neutral_frames"`
	BordismFlips  int `csv:"bordism_flips"` // Bordism class changes inside the window

	// Geometry at window end
	AvgAnchorDistance float64 `csv:"avg_anchor_distance"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSampleStats calculates mean, max and percentiles from raw samples.
func ComputeSampleStats(values []float64) (mean, p10, p50, p90, max float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
		if v > max {
			max = v
		}
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90, max
}

// Smoothness is the largest jump between consecutive samples, normalized by
// the sample range. Values near 1 indicate popping; math.NaN-free input is
// assumed.
func Smoothness(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	lo, hi := values[0], values[0]
	maxJump := 0.0
	for i := 1; i < len(values); i++ {
		if values[i] < lo {
			lo = values[i]
		}
		if values[i] > hi {
			hi = values[i]
		}
		if j := math.Abs(values[i] - values[i-1]); j > maxJump {
			maxJump = j
		}
	}
	if hi == lo {
		return 0
	}
	return maxJump / (hi - lo)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"sim_time", s.SimTimeSec,
		"progress", s.Progress,
		"confinement_mean", s.ConfinementMean,
		"confinement_p50", s.ConfinementP50,
		"confinement_p90", s.ConfinementP90,
		"confinement_max", s.ConfinementMax,
		"displacement_mean", s.DisplacementMean,
		"displacement_p90", s.DisplacementP90,
		"displacement_max", s.DisplacementMax,
		"bridge_frames", s.BridgeFrames,
		"peak_bridges", s.PeakBridges,
		"stable_frames", s.StableFrames,
		"neutral_frames", s.NeutralFrames,
		"bordism_flips", s.BordismFlips,
		"avg_anchor_distance", s.AvgAnchorDistance,
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartFrame),
		slog.Int("window_end", s.WindowEndFrame),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("progress", s.Progress),
		slog.Float64("confinement_mean", s.ConfinementMean),
		slog.Float64("confinement_p10", s.ConfinementP10),
		slog.Float64("confinement_p50", s.ConfinementP50),
		slog.Float64("confinement_p90", s.ConfinementP90),
		slog.Float64("confinement_max", s.ConfinementMax),
		slog.Float64("displacement_mean", s.DisplacementMean),
		slog.Float64("displacement_p90", s.DisplacementP90),
		slog.Float64("displacement_max", s.DisplacementMax),
		slog.Int("bridge_frames", s.BridgeFrames),
		slog.Int("peak_bridges", s.PeakBridges),
		slog.Int("bridges_at_close", s.BridgesAtClose),
		slog.Int("stable_frames", s.StableFrames),
		slog.Int("neutral_frames", s.NeutralFrames),
		slog.Int("bordism_flips", s.BordismFlips),
		slog.Float64("avg_anchor_distance", s.AvgAnchorDistance),
	)
}
