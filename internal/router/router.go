// Package router greedily schedules one day's places into a time-ordered
// route: a scored constructive heuristic, not an optimal TSP solver.
package router

import (
	"time"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

// Route runs the greedy day-scheduling heuristic over dayPlaces, bookended
// by lodging as the day's start and end anchor. consumedRestaurants holds
// the IDs of real restaurants already used on an earlier day; it is
// mutated in place with any real restaurant used on this day, so the same
// map threaded across Route calls prevents a real restaurant from being
// scheduled twice in the same trip.
func Route(dayPlaces []domain.NormalizedPlace, lodging domain.NormalizedPlace, mode geo.TransportMode, consumedRestaurants map[string]bool) domain.DayPlan {
	plan := domain.DayPlan{}

	dayStart := domain.DayWindowStart
	dayEnd := domain.DayWindowEnd

	if len(dayPlaces) == 0 {
		plan.Entries = append(plan.Entries,
			domain.DayPlanEntry{Place: lodging, Start: dayStart, End: dayStart},
			domain.DayPlanEntry{Place: lodging, Start: dayStart, End: dayStart},
		)
		return plan
	}

	restaurants, others := splitRestaurants(dayPlaces, consumedRestaurants)

	if shortcut, ok := pureVirtualShortcut(restaurants, lodging); ok && len(others) == 0 {
		markConsumed(shortcut, consumedRestaurants)
		plan.Entries = shortcut
		return plan
	}

	arranged := []domain.DayPlanEntry{{Place: lodging, Start: dayStart, End: dayStart}}
	remaining := append([]domain.NormalizedPlace(nil), others...)
	available := append([]domain.NormalizedPlace(nil), restaurants...)
	lunchArranged, dinnerArranged := false, false
	current := dayStart

	for current.Before(dayEnd) {
		isLunch := withinWindow(current, domain.LunchWindow)
		isDinner := withinWindow(current, domain.DinnerWindow)

		var next *domain.NormalizedPlace
		bestScore := -1.0

		if (isLunch && !lunchArranged) || (isDinner && !dinnerArranged) {
			candidates := realOnly(available)
			if len(candidates) == 0 {
				candidates = available
			}
			for i := range candidates {
				s := scorePlace(candidates[i], current, lastLocation(arranged))
				if s > bestScore {
					bestScore, next = s, &candidates[i]
				}
			}
			if next != nil {
				if isLunch {
					lunchArranged = true
				} else {
					dinnerArranged = true
				}
			}
		}

		if next == nil && len(remaining) > 0 {
			for i := range remaining {
				visitEnd := visitEndFrom(remaining[i], current)
				if !lunchArranged && visitEnd.After(domain.LunchWindow.Start) {
					continue
				}
				if !dinnerArranged && visitEnd.After(domain.DinnerWindow.Start) {
					continue
				}
				s := scorePlace(remaining[i], current, lastLocation(arranged))
				if s > bestScore {
					bestScore, next = s, &remaining[i]
				}
			}
		}

		if next != nil {
			chosen := *next
			start := current
			end := start.Add(time.Duration(chosen.VisitDurationMinutes) * time.Minute)
			arranged = append(arranged, domain.DayPlanEntry{Place: chosen, Start: start, End: end})
			current = end

			if chosen.IsRestaurant() {
				available = removeByID(available, chosen.ID)
				if chosen.Variant == domain.VariantReal && consumedRestaurants != nil {
					consumedRestaurants[chosen.ID] = true
				}
			} else {
				remaining = removeByID(remaining, chosen.ID)
			}

			travel := geo.TravelTimeMinutes(geo.HaversineMeters(arranged[len(arranged)-2].Place.Location, chosen.Location)/1000, mode)
			current = current.Add(time.Duration(travel) * time.Minute)
		} else {
			current = current.Add(15 * time.Minute)
		}
	}

	arranged = append(arranged, domain.DayPlanEntry{Place: lodging, Start: current, End: current})

	if !lunchArranged && len(available) > 0 {
		meal := forcedMeal(available, domain.MealLunch, domain.LunchWindow)
		arranged = append(arranged, meal)
		available = removeByID(available, meal.Place.ID)
	}
	if !dinnerArranged && len(available) > 0 {
		arranged = append(arranged, forcedMeal(available, domain.MealDinner, domain.DinnerWindow))
	}
	markConsumed(arranged, consumedRestaurants)

	stableSortByStart(arranged)
	plan.Entries = arranged
	return plan
}

func visitEndFrom(p domain.NormalizedPlace, start time.Time) time.Time {
	return start.Add(time.Duration(p.VisitDurationMinutes) * time.Minute)
}

func withinWindow(t time.Time, w domain.MealWindow) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func lastLocation(arranged []domain.DayPlanEntry) *geo.Point {
	if len(arranged) == 0 {
		return nil
	}
	loc := arranged[len(arranged)-1].Place.Location
	return &loc
}

func splitRestaurants(places []domain.NormalizedPlace, consumed map[string]bool) (restaurants, others []domain.NormalizedPlace) {
	for _, p := range places {
		if p.IsRestaurant() {
			if p.Variant == domain.VariantReal && consumed != nil && consumed[p.ID] {
				continue
			}
			restaurants = append(restaurants, p)
		} else {
			others = append(others, p)
		}
	}
	return restaurants, others
}

func realOnly(restaurants []domain.NormalizedPlace) []domain.NormalizedPlace {
	var out []domain.NormalizedPlace
	for _, r := range restaurants {
		if !r.IsVirtual() {
			out = append(out, r)
		}
	}
	return out
}

func removeByID(places []domain.NormalizedPlace, id string) []domain.NormalizedPlace {
	out := make([]domain.NormalizedPlace, 0, len(places))
	for _, p := range places {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func markConsumed(entries []domain.DayPlanEntry, consumed map[string]bool) {
	if consumed == nil {
		return
	}
	for _, e := range entries {
		if e.Place.IsRestaurant() && e.Place.Variant == domain.VariantReal {
			consumed[e.Place.ID] = true
		}
	}
}

// pureVirtualShortcut mirrors the original pipeline's fast path for a day
// whose only restaurants are synthesized placeholders: place lunch and
// dinner directly at their optimal times without running the full
// simulation. ok is false when the restaurants do not qualify (mixed real
// and virtual, or missing one of the two meal slots); Route uses the result
// only for a day with no attractions.
func pureVirtualShortcut(restaurants []domain.NormalizedPlace, lodging domain.NormalizedPlace) ([]domain.DayPlanEntry, bool) {
	if len(restaurants) == 0 {
		return nil, false
	}
	for _, r := range restaurants {
		if !r.IsVirtual() {
			return nil, false
		}
	}
	var lunch, dinner *domain.NormalizedPlace
	for i := range restaurants {
		switch restaurants[i].Variant {
		case domain.VariantVirtualLunch:
			lunch = &restaurants[i]
		case domain.VariantVirtualDinner:
			dinner = &restaurants[i]
		}
	}
	if lunch == nil || dinner == nil {
		return nil, false
	}
	lunchEnd := domain.LunchWindow.Optimal.Add(time.Duration(lunch.VisitDurationMinutes) * time.Minute)
	dinnerEnd := domain.DinnerWindow.Optimal.Add(time.Duration(dinner.VisitDurationMinutes) * time.Minute)
	return []domain.DayPlanEntry{
		{Place: lodging, Start: domain.DayWindowStart, End: domain.DayWindowStart},
		{Place: *lunch, Start: domain.LunchWindow.Optimal, End: lunchEnd},
		{Place: *dinner, Start: domain.DinnerWindow.Optimal, End: dinnerEnd},
		{Place: lodging, Start: domain.DayWindowEnd, End: domain.DayWindowEnd},
	}, true
}

// forcedMeal inserts a missed meal: a real restaurant if one is still
// available, falling back to a virtual placeholder tagged for that meal,
// otherwise the first available restaurant of any kind.
func forcedMeal(available []domain.NormalizedPlace, meal domain.MealType, window domain.MealWindow) domain.DayPlanEntry {
	variant := domain.VariantVirtualLunch
	if meal == domain.MealDinner {
		variant = domain.VariantVirtualDinner
	}
	chosen := available[0]
	found := false
	for _, r := range available {
		if r.Variant == domain.VariantReal {
			chosen, found = r, true
			break
		}
	}
	for _, r := range available {
		if found {
			break
		}
		if r.Variant == variant {
			chosen, found = r, true
		}
	}
	start := window.Optimal
	end := start.Add(time.Duration(chosen.VisitDurationMinutes) * time.Minute)
	return domain.DayPlanEntry{Place: chosen, Start: start, End: end}
}

func stableSortByStart(entries []domain.DayPlanEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Start.Before(entries[j-1].Start); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
