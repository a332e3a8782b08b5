package telemetry

import (
	"math"
	"testing"
)

func sampleAt(frame int, confinement float64, bridges, bordism int, stable bool) FrameSample {
	return FrameSample{
		Frame:           frame,
		Time:            float64(frame) / 60.0,
		Progress:        float64(frame) / 100.0,
		Confinement:     confinement,
		MaxDisplacement: confinement * 2,
		BridgeCount:     bridges,
		ColorNeutral:    true,
		BordismClass:    bordism,
		Stable:          stable,
	}
}

func TestCollector_ShouldFlush(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(9) {
		t.Error("flush requested before window complete")
	}
	if !c.ShouldFlush(10) {
		t.Error("flush not requested at window boundary")
	}

	c.Flush(10)
	if c.ShouldFlush(19) {
		t.Error("flush requested early after reset")
	}
	if !c.ShouldFlush(20) {
		t.Error("flush not requested at second window boundary")
	}
}

func TestCollector_FlushAggregates(t *testing.T) {
	c := NewCollector(4)

	c.Record(sampleAt(0, 0.1, 0, 0, false))
	c.Record(sampleAt(1, 0.2, 1, 0, true))
	c.Record(sampleAt(2, 0.4, 3, 1, false))
	c.Record(sampleAt(3, 0.3, 2, 0, true))

	stats := c.Flush(4)

	if stats.WindowStartFrame != 0 || stats.WindowEndFrame != 4 {
		t.Errorf("window [%d,%d], want [0,4]", stats.WindowStartFrame, stats.WindowEndFrame)
	}
	if math.Abs(stats.ConfinementMean-0.25) > 1e-12 {
		t.Errorf("confinement mean %v, want 0.25", stats.ConfinementMean)
	}
	if stats.ConfinementMax != 0.4 {
		t.Errorf("confinement max %v, want 0.4", stats.ConfinementMax)
	}
	if stats.BridgeFrames != 3 {
		t.Errorf("bridge frames %d, want 3", stats.BridgeFrames)
	}
	if stats.PeakBridges != 3 {
		t.Errorf("peak bridges %d, want 3", stats.PeakBridges)
	}
	if stats.BridgesAtClose != 2 {
		t.Errorf("bridges at close %d, want 2", stats.BridgesAtClose)
	}
	if stats.StableFrames != 2 {
		t.Errorf("stable frames %d, want 2", stats.StableFrames)
	}
	if stats.NeutralFrames != 4 {
		t.Errorf("neutral frames %d, want 4", stats.NeutralFrames)
	}
	// 0 -> 0 -> 1 -> 0: two class changes.
	if stats.BordismFlips != 2 {
		t.Errorf("bordism flips %d, want 2", stats.BordismFlips)
	}
}

func TestCollector_FlushResetsCounters(t *testing.T) {
	c := NewCollector(2)

	c.Record(sampleAt(0, 0.5, 4, 0, true))
	c.Record(sampleAt(1, 0.5, 4, 0, true))
	c.Flush(2)

	c.Record(sampleAt(2, 0.1, 0, 0, false))
	stats := c.Flush(3)

	if stats.ConfinementMax != 0.1 {
		t.Errorf("counters leaked across windows: confinement max %v", stats.ConfinementMax)
	}
	if stats.PeakBridges != 0 || stats.StableFrames != 0 {
		t.Errorf("counters leaked: peak %d stable %d", stats.PeakBridges, stats.StableFrames)
	}
	// Bordism did not change between the last frame of window one and the
	// first frame of window two.
	if stats.BordismFlips != 0 {
		t.Errorf("bordism flips %d, want 0", stats.BordismFlips)
	}
}

func TestCollector_FlushEmptyWindow(t *testing.T) {
	c := NewCollector(5)
	stats := c.Flush(5)

	if stats.ConfinementMean != 0 || stats.DisplacementMax != 0 || stats.BridgeFrames != 0 {
		t.Errorf("empty window produced non-zero stats: %+v", stats)
	}
}
