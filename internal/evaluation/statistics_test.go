package evaluation

import (
	"math"
	"testing"
)

// TestPercentileRankMatchesHandCalculation reproduces the spec's worked
// example: baselines [10,20,30,40,50] vs a planner score of 35 ranks at the
// 60th percentile (3 of 5 baselines score below it).
func TestPercentileRankMatchesHandCalculation(t *testing.T) {
	baseline := []float64{10, 20, 30, 40, 50}
	got := PercentileRank(35, baseline)
	if got != 60 {
		t.Fatalf("expected percentile rank 60, got %v", got)
	}
}

func TestPercentileRankBoundsZeroToHundred(t *testing.T) {
	baseline := []float64{10, 20, 30, 40, 50}
	for _, value := range []float64{-100, 0, 25, 35, 50, 1000} {
		got := PercentileRank(value, baseline)
		if got < 0 || got > 100 {
			t.Fatalf("percentile rank %v out of [0,100] for value %v", got, value)
		}
	}
}

func TestSignificanceZSignMatchesDifferenceSign(t *testing.T) {
	stats := summarize([]float64{40, 50, 60, 50, 50})
	above := significanceZ(stats.Mean+stats.StdDev*3, stats)
	below := significanceZ(stats.Mean-stats.StdDev*3, stats)

	if above.ZScore <= 0 {
		t.Fatalf("expected positive z-score above the mean, got %v", above.ZScore)
	}
	if below.ZScore >= 0 {
		t.Fatalf("expected negative z-score below the mean, got %v", below.ZScore)
	}
}

func TestSignificanceZFlagsWideDeviation(t *testing.T) {
	stats := summarize([]float64{48, 49, 50, 51, 52})
	sig := significanceZ(100, stats)
	if !sig.IsSignificant {
		t.Fatalf("expected a far outlier to be flagged significant, got z=%v", sig.ZScore)
	}
	if math.Abs(sig.ZScore) <= 1.96 {
		t.Fatalf("expected |z| > 1.96, got %v", sig.ZScore)
	}
}

func TestSummarizeHandlesSingleValue(t *testing.T) {
	stats := summarize([]float64{42})
	if stats.Mean != 42 || stats.Min != 42 || stats.Max != 42 || stats.StdDev != 0 {
		t.Fatalf("unexpected single-value stats: %+v", stats)
	}
}
