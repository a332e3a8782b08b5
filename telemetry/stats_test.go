package telemetry

import (
	"math"
	"testing"
)

func TestPercentileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.5, 3},
		{1, 5},
		{0.25, 2},
		{0.625, 3.5},
		{-0.5, 1},
		{1.5, 5},
	}
	for _, tc := range cases {
		if got := Percentile(sorted, tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Percentile(p=%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestPercentileDegenerate(t *testing.T) {
	if got := Percentile(nil, 0.5); got != 0 {
		t.Errorf("empty slice percentile = %v, want 0", got)
	}
	if got := Percentile([]float64{7}, 0.9); got != 7 {
		t.Errorf("single-element percentile = %v, want 7", got)
	}
}

func TestComputeSampleStats(t *testing.T) {
	// Unsorted on purpose: the function owns the sort.
	values := []float64{4, 1, 3, 5, 2}

	mean, p10, p50, p90, max := ComputeSampleStats(values)
	if math.Abs(mean-3) > 1e-12 {
		t.Errorf("mean = %v, want 3", mean)
	}
	if math.Abs(p50-3) > 1e-12 {
		t.Errorf("p50 = %v, want 3", p50)
	}
	if max != 5 {
		t.Errorf("max = %v, want 5", max)
	}
	if p10 > p50 || p50 > p90 {
		t.Errorf("percentiles not ordered: p10=%v p50=%v p90=%v", p10, p50, p90)
	}
}

func TestComputeSampleStatsEmpty(t *testing.T) {
	mean, p10, p50, p90, max := ComputeSampleStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 || max != 0 {
		t.Error("empty input should yield all-zero stats")
	}
}

func TestSmoothnessRampVersusStep(t *testing.T) {
	ramp := []float64{0, 0.25, 0.5, 0.75, 1}
	step := []float64{0, 0, 0, 1, 1}

	r := Smoothness(ramp)
	s := Smoothness(step)
	if math.Abs(r-0.25) > 1e-12 {
		t.Errorf("uniform ramp smoothness = %v, want 0.25", r)
	}
	if math.Abs(s-1) > 1e-12 {
		t.Errorf("step smoothness = %v, want 1", s)
	}
	if s <= r {
		t.Error("a step must score worse than a ramp")
	}
}

func TestSmoothnessDegenerate(t *testing.T) {
	if got := Smoothness([]float64{3}); got != 0 {
		t.Errorf("single sample smoothness = %v, want 0", got)
	}
	if got := Smoothness([]float64{2, 2, 2, 2}); got != 0 {
		t.Errorf("constant series smoothness = %v, want 0", got)
	}
}
