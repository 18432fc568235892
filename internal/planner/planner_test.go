package planner

import (
	"errors"
	"math/rand"
	"testing"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

func rawPlace(name string, types []string, lat, lng float64) domain.RawPlace {
	return domain.RawPlace{Name: name, Types: types, Location: &domain.LatLng{Lat: lat, Lng: lng}}
}

func samplePlaces() []domain.RawPlace {
	return []domain.RawPlace{
		rawPlace("Hotel Central", []string{"lodging"}, 48.8566, 2.3522),
		rawPlace("Louvre", []string{"museum"}, 48.8606, 2.3376),
		rawPlace("Eiffel Tower", []string{"tourist_attraction"}, 48.8584, 2.2945),
		rawPlace("Le Comptoir", []string{"restaurant"}, 48.8520, 2.3389),
	}
}

func TestPlanSucceedsForWellFormedInput(t *testing.T) {
	input := domain.PlannerInput{
		Places:        samplePlaces(),
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-01",
		TransportMode: geo.Walking,
	}
	out, err := Plan(input, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success")
	}
	if len(out.Schedule.Events) == 0 {
		t.Fatal("expected non-empty schedule")
	}
}

func TestPlanFailsWithoutLodging(t *testing.T) {
	input := domain.PlannerInput{
		Places:        samplePlaces()[1:],
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-01",
		TransportMode: geo.Walking,
	}
	out, err := Plan(input, rand.New(rand.NewSource(1)))
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind() != NoLodging {
		t.Fatalf("expected NoLodging error, got %v", err)
	}
	assertValidationPayload(t, out, domain.WarningNoLodging)
}

func TestPlanFailsWithInvalidTransportMode(t *testing.T) {
	input := domain.PlannerInput{
		Places:        samplePlaces(),
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-01",
		TransportMode: "teleport",
	}
	_, err := Plan(input, rand.New(rand.NewSource(1)))
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind() != InputInvalid {
		t.Fatalf("expected InputInvalid error, got %v", err)
	}
}

func TestPlanFailsWithEmptyPlaces(t *testing.T) {
	input := domain.PlannerInput{StartDate: "2026-06-01", EndDate: "2026-06-01", TransportMode: geo.Walking}
	_, err := Plan(input, rand.New(rand.NewSource(1)))
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind() != InputInvalid {
		t.Fatalf("expected InputInvalid error, got %v", err)
	}
}

func TestPlanRejectsTooManyPlacesForTripLength(t *testing.T) {
	places := []domain.RawPlace{rawPlace("Hotel", []string{"lodging"}, 48.85, 2.35)}
	for i := 0; i < 20; i++ {
		places = append(places, rawPlace("Attraction", []string{"museum"}, 48.85, 2.35))
	}
	input := domain.PlannerInput{
		Places:        places,
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-01",
		TransportMode: geo.Walking,
	}
	out, err := Plan(input, rand.New(rand.NewSource(1)))
	var perr *Error
	if !errors.As(err, &perr) || perr.Kind() != CapacityViolation {
		t.Fatalf("expected CapacityViolation error, got %v", err)
	}
	assertValidationPayload(t, out, domain.WarningTooManyPlaces)
}

// assertValidationPayload checks the structured reasonability payload spec.md
// §7 requires on every validation failure: success=false, severity=severe,
// a single warning of the expected type.
func assertValidationPayload(t *testing.T, out domain.PlannerOutput, wantType domain.WarningType) {
	t.Helper()
	if out.Success {
		t.Fatal("expected success=false on validation failure")
	}
	if out.Status.IsReasonable {
		t.Fatal("expected isReasonable=false on validation failure")
	}
	if out.Status.Severity != domain.SeveritySevere {
		t.Fatalf("expected severity=severe, got %q", out.Status.Severity)
	}
	if len(out.Status.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(out.Status.Warnings))
	}
	if out.Status.Warnings[0].Type != wantType {
		t.Fatalf("expected warning type %q, got %q", wantType, out.Status.Warnings[0].Type)
	}
	if out.Status.Warnings[0].Message == "" || out.Status.Warnings[0].Suggestion == "" {
		t.Fatal("expected non-empty message and suggestion")
	}
}

func TestBaselineSucceedsForWellFormedInput(t *testing.T) {
	input := domain.PlannerInput{
		Places:        samplePlaces(),
		StartDate:     "2026-06-01",
		EndDate:       "2026-06-02",
		TransportMode: geo.Walking,
	}
	out, err := Baseline(input, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success || len(out.Schedule.Events) == 0 {
		t.Fatal("expected a non-empty successful baseline schedule")
	}
}
