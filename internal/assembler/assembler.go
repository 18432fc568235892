// Package assembler flattens per-day routes into the final Schedule: place
// and transit events in time order, 12-hour display times, and roll-up
// summary counts.
package assembler

import (
	"fmt"
	"sort"
	"time"

	"tripweave/internal/domain"
)

const timeLayout = "03:04 PM"

// Assemble concatenates dayPlans into a single Schedule, inserting a
// transit event between every two consecutive entries within a day.
func Assemble(dayPlans []domain.DayPlan, mode string) domain.Schedule {
	var events []domain.Event
	summary := domain.Summary{}

	for _, day := range dayPlans {
		for i, entry := range day.Entries {
			events = append(events, placeEvent(entry, day.Day, i))
			if !entry.Place.IsLodging() {
				summary.TotalPlaces++
				if entry.Place.IsRestaurant() {
					summary.RestaurantCount++
				} else {
					summary.AttractionCount++
				}
			}

			if i+1 < len(day.Entries) {
				next := day.Entries[i+1]
				duration := int(next.Start.Sub(entry.End).Minutes())
				if duration < 0 {
					duration = 0
				}
				events = append(events, transitEvent(day.Day, i, entry.End, next.Start, duration, mode))
				summary.TotalTravelMinutes += duration
			}
		}
	}

	return domain.Schedule{Events: events, Summary: summary}
}

func placeEvent(entry domain.DayPlanEntry, day, index int) domain.Event {
	e := domain.Event{
		ID:    fmt.Sprintf("day%d-event%d", day, index),
		Type:  domain.EventPlace,
		Day:   day,
		Title: entry.Place.Name,
		Place: placeRef(entry.Place),
	}
	if entry.Place.IsLodging() {
		return e
	}
	e.StartTime = entry.Start.Format(timeLayout)
	e.EndTime = entry.End.Format(timeLayout)
	return e
}

func transitEvent(day, index int, start, end time.Time, duration int, mode string) domain.Event {
	return domain.Event{
		ID:              fmt.Sprintf("day%d-transit%d", day, index),
		Type:            domain.EventTransit,
		Day:             day,
		StartTime:       start.Format(timeLayout),
		EndTime:         end.Format(timeLayout),
		DurationMinutes: duration,
		Mode:            mode,
	}
}

func placeRef(p domain.NormalizedPlace) *domain.PlaceRef {
	loc := domain.LatLng{Lat: p.Location.Lat, Lng: p.Location.Lng}
	if p.Original != nil {
		return &domain.PlaceRef{
			ID:       p.ID,
			PlaceID:  p.Original.PlaceID,
			Name:     p.Original.Name,
			Types:    p.Original.Types,
			Rating:   p.Original.Rating,
			Location: loc,
		}
	}
	return &domain.PlaceRef{
		ID:        p.ID,
		Name:      p.Name,
		Types:     []string{string(p.Category)},
		IsVirtual: p.IsVirtual(),
		Location:  loc,
	}
}

// Validate reports whether schedule is internally consistent: per day, place
// entries sorted by start time are non-overlapping, and the first start and
// last end both fall within the [09:00, 21:00] day window.
func Validate(schedule domain.Schedule) error {
	byDay := map[int][]domain.Event{}
	for _, e := range schedule.Events {
		if e.Type != domain.EventPlace || e.StartTime == "" {
			continue
		}
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	for day, events := range byDay {
		sort.Slice(events, func(i, j int) bool {
			return parseEventTime(events[i].StartTime).Before(parseEventTime(events[j].StartTime))
		})

		if first := parseEventTime(events[0].StartTime); first.Before(domain.DayWindowStart) {
			return fmt.Errorf("assembler: day %d starts before %s", day, domain.DayWindowStart.Format(timeLayout))
		}

		var prevEnd time.Time
		for i, e := range events {
			start := parseEventTime(e.StartTime)
			end := parseEventTime(e.EndTime)
			if i > 0 && start.Before(prevEnd) {
				return fmt.Errorf("assembler: day %d has overlapping entries at %s", day, e.StartTime)
			}
			prevEnd = end
		}

		if prevEnd.After(domain.DayWindowEnd) {
			return fmt.Errorf("assembler: day %d ends after %s", day, domain.DayWindowEnd.Format(timeLayout))
		}
	}
	return nil
}

func parseEventTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return domain.OnReferenceDate(t)
}
