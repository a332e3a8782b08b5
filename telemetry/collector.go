package telemetry

// FrameSample is one frame's worth of pipeline metrics, recorded by the
// animation loop after each engine step.
type FrameSample struct {
	Frame             int
	Time              float64
	Progress          float64
	Confinement       float64
	MaxDisplacement   float64
	BridgeCount       int
	ColorNeutral      bool
	BordismClass      int
	Stable            bool
	AvgAnchorDistance float64
}

// Collector accumulates frame samples within fixed-size frame windows and
// produces WindowStats.
type Collector struct {
	windowFrames     int
	windowStartFrame int

	confinements  []float64
	displacements []float64

	bridgeFrames  int
	peakBridges   int
	stableFrames  int
	neutralFrames int
	bordismFlips  int

	haveLast bool
	last     FrameSample
}

// NewCollector creates a collector that flushes every windowFrames frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{windowFrames: windowFrames}
}

// Record accumulates one frame's metrics into the current window.
func (c *Collector) Record(s FrameSample) {
	c.confinements = append(c.confinements, s.Confinement)
	c.displacements = append(c.displacements, s.MaxDisplacement)

	if s.BridgeCount > 0 {
		c.bridgeFrames++
	}
	if s.BridgeCount > c.peakBridges {
		c.peakBridges = s.BridgeCount
	}
	if s.Stable {
		c.stableFrames++
	}
	if s.ColorNeutral {
		c.neutralFrames++
	}
	if c.haveLast && s.BordismClass != c.last.BordismClass {
		c.bordismFlips++
	}

	c.last = s
	c.haveLast = true
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(currentFrame int) bool {
	return currentFrame-c.windowStartFrame >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentFrame int) WindowStats {
	confMean, confP10, confP50, confP90, confMax := ComputeSampleStats(c.confinements)
	dispMean, _, _, dispP90, dispMax := ComputeSampleStats(c.displacements)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		SimTimeSec:       c.last.Time,
		Progress:         c.last.Progress,

		ConfinementMean: confMean,
		ConfinementP10:  confP10,
		ConfinementP50:  confP50,
		ConfinementP90:  confP90,
		ConfinementMax:  confMax,

		DisplacementMean: dispMean,
		DisplacementP90:  dispP90,
		DisplacementMax:  dispMax,

		BridgeFrames:   c.bridgeFrames,
		PeakBridges:    c.peakBridges,
		BridgesAtClose: c.last.BridgeCount,

		StableFrames:  c.stableFrames,
		NeutralFrames: c.neutralFrames,
		BordismFlips:  c.bordismFlips,

		AvgAnchorDistance: c.last.AvgAnchorDistance,
	}

	c.windowStartFrame = currentFrame
	c.confinements = c.confinements[:0]
	c.displacements = c.displacements[:0]
	c.bridgeFrames = 0
	c.peakBridges = 0
	c.stableFrames = 0
	c.neutralFrames = 0
	c.bordismFlips = 0

	return stats
}
