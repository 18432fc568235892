package evaluation

import (
	"math/rand"
	"testing"
	"time"
)

func TestRunMultipleAggregatesRunRates(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	summary := RunMultiple(rng, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 3, 3)

	if summary.NumRuns != 3 {
		t.Fatalf("expected 3 completed runs, got %d", summary.NumRuns)
	}
	if summary.SuccessRate.Max < summary.SuccessRate.Min {
		t.Fatal("max success rate should be >= min success rate")
	}
	if summary.SuccessRate.Mean < 0 || summary.SuccessRate.Mean > 100 {
		t.Fatalf("mean success rate out of [0,100]: %v", summary.SuccessRate.Mean)
	}
}

func TestRateStatsEmptyInputIsZeroValue(t *testing.T) {
	stats := rateStats(nil)
	if stats != (RateStats{}) {
		t.Fatalf("expected zero-value stats for empty input, got %+v", stats)
	}
}
