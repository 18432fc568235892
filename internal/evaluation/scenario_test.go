package evaluation

import (
	"math/rand"
	"testing"
	"time"
)

func TestGenerateMatrixProducesExpectedScenarioCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scenarios := GenerateMatrix(rng, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	want := len(cityCenters) * len(sizeConfigs) * len(durationConfigs) * len(transportModes)
	if len(scenarios) != want {
		t.Fatalf("expected %d scenarios, got %d", want, len(scenarios))
	}
	if want != 108 {
		t.Fatalf("expected the matrix to be sized 108, got %d", want)
	}
}

func TestGenerateMatrixEveryScenarioHasLodgingAndExpectedPlaceCount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	scenarios := GenerateMatrix(rng, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, s := range scenarios {
		if len(s.Places) < 2 {
			t.Fatalf("scenario %s: expected at least a hotel and one place, got %d", s.Name, len(s.Places))
		}
		foundLodging := false
		for _, p := range s.Places {
			for _, typ := range p.Types {
				if typ == "lodging" {
					foundLodging = true
				}
			}
		}
		if !foundLodging {
			t.Fatalf("scenario %s: expected a lodging place", s.Name)
		}
	}
}

func TestGenerateMatrixDurationDaysWithinConfiguredBucket(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	scenarios := GenerateMatrix(rng, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	for _, s := range scenarios {
		if s.DurationDays < 1 || s.DurationDays > 8 {
			t.Fatalf("scenario %s: duration %d days out of expected [1,8]", s.Name, s.DurationDays)
		}
	}
}
