package assembler

import (
	"testing"
	"time"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

func dayPlan(day int) domain.DayPlan {
	lodging := domain.NormalizedPlace{ID: "hotel", Name: "Hotel", Category: domain.CategoryLodging, Location: geo.Point{Lat: 48.85, Lng: 2.35}}
	museum := domain.NormalizedPlace{ID: "m", Name: "Museum", Category: domain.CategoryMuseum, Location: geo.Point{Lat: 48.86, Lng: 2.33}, VisitDurationMinutes: 90}

	start := domain.DayWindowStart
	museumStart := start.Add(20 * time.Minute)
	museumEnd := museumStart.Add(90 * time.Minute)
	end := museumEnd.Add(20 * time.Minute)

	return domain.DayPlan{
		Day: day,
		Entries: []domain.DayPlanEntry{
			{Place: lodging, Start: start, End: start},
			{Place: museum, Start: museumStart, End: museumEnd},
			{Place: lodging, Start: end, End: end},
		},
	}
}

func TestAssembleInsertsTransitBetweenEntries(t *testing.T) {
	schedule := Assemble([]domain.DayPlan{dayPlan(0)}, "walking")
	transitCount := 0
	for _, e := range schedule.Events {
		if e.Type == domain.EventTransit {
			transitCount++
		}
	}
	if transitCount != 2 {
		t.Fatalf("expected 2 transit events for 3 place entries, got %d", transitCount)
	}
}

func TestAssembleHotelBookendsHaveBlankTimes(t *testing.T) {
	schedule := Assemble([]domain.DayPlan{dayPlan(0)}, "walking")
	for _, e := range schedule.Events {
		if e.Type == domain.EventPlace && e.Title == "Hotel" {
			if e.StartTime != "" || e.EndTime != "" {
				t.Fatalf("expected blank hotel times, got start=%q end=%q", e.StartTime, e.EndTime)
			}
		}
	}
}

func TestAssembleSummaryCounts(t *testing.T) {
	schedule := Assemble([]domain.DayPlan{dayPlan(0)}, "walking")
	if schedule.Summary.TotalPlaces != 1 {
		t.Fatalf("expected 1 non-lodging place, got %d", schedule.Summary.TotalPlaces)
	}
	if schedule.Summary.AttractionCount != 1 {
		t.Fatalf("expected 1 attraction, got %d", schedule.Summary.AttractionCount)
	}
	if schedule.Summary.TotalTravelMinutes <= 0 {
		t.Fatal("expected positive total travel minutes")
	}
}

func TestValidateRejectsOverlappingEntries(t *testing.T) {
	schedule := domain.Schedule{Events: []domain.Event{
		{Type: domain.EventPlace, Day: 0, StartTime: "10:00 AM", EndTime: "11:00 AM"},
		{Type: domain.EventPlace, Day: 0, StartTime: "10:30 AM", EndTime: "12:00 PM"},
	}}
	if err := Validate(schedule); err == nil {
		t.Fatal("expected error for overlapping entries")
	}
}

func TestValidateRejectsEntryEndingAfterDayWindow(t *testing.T) {
	schedule := domain.Schedule{Events: []domain.Event{
		{Type: domain.EventPlace, Day: 0, StartTime: "08:00 PM", EndTime: "10:00 PM"},
	}}
	if err := Validate(schedule); err == nil {
		t.Fatal("expected error for entry ending after day window")
	}
}

func TestValidateRejectsEntryStartingBeforeDayWindow(t *testing.T) {
	schedule := domain.Schedule{Events: []domain.Event{
		{Type: domain.EventPlace, Day: 0, StartTime: "07:00 AM", EndTime: "08:00 AM"},
	}}
	if err := Validate(schedule); err == nil {
		t.Fatal("expected error for entry starting before day window")
	}
}

func TestValidateAcceptsWellFormedSchedule(t *testing.T) {
	schedule := Assemble([]domain.DayPlan{dayPlan(0)}, "walking")
	if err := Validate(schedule); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
