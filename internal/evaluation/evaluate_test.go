package evaluation

import (
	"math/rand"
	"testing"
	"time"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

func smallScenario() Scenario {
	return Scenario{
		Name: "test_small_short_walking",
		Places: []domain.RawPlace{
			{Name: "Hotel", Types: []string{"lodging"}, Location: &domain.LatLng{Lat: 48.8566, Lng: 2.3522}},
			{Name: "Louvre", Types: []string{"museum"}, Location: &domain.LatLng{Lat: 48.8606, Lng: 2.3376}},
			{Name: "Eiffel Tower", Types: []string{"tourist_attraction"}, Location: &domain.LatLng{Lat: 48.8584, Lng: 2.2945}},
			{Name: "Le Comptoir", Types: []string{"restaurant"}, Location: &domain.LatLng{Lat: 48.8520, Lng: 2.3389}},
			{Name: "Chez Janou", Types: []string{"restaurant"}, Location: &domain.LatLng{Lat: 48.8594, Lng: 2.3644}},
		},
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-02",
		TransportMode: geo.Walking,
		DurationDays:  2,
	}
}

func TestEvaluateReturnsSuccessWithStatsPerMetric(t *testing.T) {
	report := Evaluate(smallScenario(), 20, rand.New(rand.NewSource(7)))
	if !report.Success {
		t.Fatalf("expected success, got error: %s", report.Error)
	}
	if report.BaselineSize == 0 {
		t.Fatal("expected at least one baseline sample")
	}
	for _, name := range metricNames {
		if _, ok := report.Baseline[name]; !ok {
			t.Fatalf("missing baseline stats for metric %q", name)
		}
		if _, ok := report.Significance[name]; !ok {
			t.Fatalf("missing significance for metric %q", name)
		}
	}
}

func TestEvaluateRankingPercentileWithinBounds(t *testing.T) {
	report := Evaluate(smallScenario(), 30, rand.New(rand.NewSource(9)))
	if !report.Success {
		t.Fatalf("expected success, got error: %s", report.Error)
	}
	for name, sig := range report.Significance {
		if sig.RankingPercentile < 0 || sig.RankingPercentile > 100 {
			t.Fatalf("metric %q: ranking percentile %v out of [0,100]", name, sig.RankingPercentile)
		}
	}
}

func TestEvaluateFailsGracefullyWithoutLodging(t *testing.T) {
	scenario := smallScenario()
	scenario.Places = scenario.Places[1:]
	report := Evaluate(scenario, 10, rand.New(rand.NewSource(1)))
	if report.Success {
		t.Fatal("expected failure when no lodging is present")
	}
	if report.Error == "" {
		t.Fatal("expected a populated error message")
	}
}

func TestRunMatrixInvokesProgressCallbackPerScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	count := 0
	summary := RunMatrix(rng, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 5, func(Report) { count++ })
	if count != summary.TotalScenarios {
		t.Fatalf("expected callback once per scenario (%d), got %d calls", summary.TotalScenarios, count)
	}
}

func TestRunMatrixAggregatesAcrossFullScenarioMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	summary := RunMatrix(rng, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 5, nil)
	if summary.TotalScenarios != 108 {
		t.Fatalf("expected 108 scenarios, got %d", summary.TotalScenarios)
	}
	if summary.Succeeded == 0 {
		t.Fatal("expected at least some scenarios to succeed")
	}
	if summary.BetterThanRandom > summary.Succeeded {
		t.Fatal("better-than-random count cannot exceed successful count")
	}
	if summary.SignificantlyBetter > summary.BetterThanRandom {
		t.Fatal("significantly-better count cannot exceed better-than-random count")
	}
}
