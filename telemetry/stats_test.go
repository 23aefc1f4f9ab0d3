package telemetry

import (
	"math"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	speeds := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, p10, p50, p90 := ComputeSpeedStats(speeds)

	if math.Abs(mean-5.5) > 1e-9 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// Empirical quantiles pick the smallest value whose CDF covers p.
	if p10 != 1 {
		t.Errorf("p10 = %v, want 1", p10)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
}

func TestComputeSpeedStatsUnsortedInput(t *testing.T) {
	a, _, _, _ := ComputeSpeedStats([]float64{3, 1, 2})
	b, _, _, _ := ComputeSpeedStats([]float64{1, 2, 3})
	if a != b {
		t.Errorf("mean depends on input order: %v vs %v", a, b)
	}
}

func TestComputeSpeedStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeSpeedStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should return all zeros")
	}
}
