// Package baseline generates a randomized, unoptimized schedule: every
// attraction is visited once on a random day, each day gets two restaurant
// slots, and visits are laid out back to back from the start of the day.
// Used as the comparison point the evaluation pipeline measures the planner
// against.
package baseline

import (
	"fmt"
	"math/rand"
	"time"

	"tripweave/internal/assembler"
	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

// Generate produces one randomized schedule over places, bookended each day
// by lodging, using rng for every random decision. rng must be non-nil and
// independently seeded per sample for reproducible, uncorrelated baselines.
func Generate(places []domain.NormalizedPlace, lodging domain.NormalizedPlace, numDays int, mode geo.TransportMode, rng *rand.Rand) (domain.Schedule, error) {
	if numDays < 1 {
		return domain.Schedule{}, fmt.Errorf("baseline: numDays must be >= 1, got %d", numDays)
	}

	byDay := assignDays(places, numDays, rng)

	var dayPlans []domain.DayPlan
	for day := 0; day < numDays; day++ {
		dayPlans = append(dayPlans, generateDaySchedule(byDay[day], lodging, day, rng))
	}

	return assembler.Assemble(dayPlans, string(mode)), nil
}

// assignDays randomly scatters attractions across days, then tops up each
// day's restaurant slots to exactly two (real restaurants first, consumed
// without replacement, then virtual placeholders for any shortfall).
func assignDays(places []domain.NormalizedPlace, numDays int, rng *rand.Rand) [][]domain.NormalizedPlace {
	byDay := make([][]domain.NormalizedPlace, numDays)

	var restaurants, attractions []domain.NormalizedPlace
	for _, p := range places {
		if p.IsRestaurant() {
			restaurants = append(restaurants, p)
		} else {
			attractions = append(attractions, p)
		}
	}

	for _, a := range attractions {
		day := rng.Intn(numDays)
		byDay[day] = append(byDay[day], a)
	}

	for day := 0; day < numDays; day++ {
		if len(restaurants) > 0 {
			if len(restaurants) >= 2 {
				i, j := sampleTwoDistinct(rng, len(restaurants))
				byDay[day] = append(byDay[day], restaurants[i], restaurants[j])
				restaurants = removeIndices(restaurants, i, j)
			} else {
				byDay[day] = append(byDay[day], restaurants...)
				restaurants = nil
			}
		}

		count := 0
		for _, p := range byDay[day] {
			if p.IsRestaurant() {
				count++
			}
		}
		if count < 2 {
			center := centerOf(byDay[day])
			for i := 0; i < 2-count; i++ {
				meal := domain.MealLunch
				if i > 0 || count == 1 {
					meal = domain.MealDinner
				}
				id := fmt.Sprintf("baseline-virtual-%s-%d", meal, day)
				byDay[day] = append(byDay[day], domain.NewVirtualMeal(id, meal, center))
			}
		}
	}

	return byDay
}

func sampleTwoDistinct(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// removeIndices returns restaurants with the elements at i and j removed.
func removeIndices(restaurants []domain.NormalizedPlace, i, j int) []domain.NormalizedPlace {
	if i > j {
		i, j = j, i
	}
	out := make([]domain.NormalizedPlace, 0, len(restaurants)-2)
	for idx, r := range restaurants {
		if idx != i && idx != j {
			out = append(out, r)
		}
	}
	return out
}

func centerOf(places []domain.NormalizedPlace) geo.Point {
	if len(places) == 0 {
		return geo.Point{}
	}
	var lat, lng float64
	for _, p := range places {
		lat += p.Location.Lat
		lng += p.Location.Lng
	}
	n := float64(len(places))
	return geo.Point{Lat: lat / n, Lng: lng / n}
}

// generateDaySchedule lays out one day's places: attractions shuffled into
// three equal slots with the first meal between the first and second slot
// and the second meal between the second and third. Visits run back to back
// from the day-window start with a fixed 30-minute hop between them; times
// are not moved to keep meals inside their meal windows or the day inside
// the day window.
func generateDaySchedule(places []domain.NormalizedPlace, lodging domain.NormalizedPlace, day int, rng *rand.Rand) domain.DayPlan {
	if len(places) == 0 {
		return domain.DayPlan{Day: day}
	}

	var restaurants, attractions []domain.NormalizedPlace
	for _, p := range places {
		if p.IsRestaurant() {
			restaurants = append(restaurants, p)
		} else {
			attractions = append(attractions, p)
		}
	}
	shuffle(rng, attractions)

	third := len(attractions) / 3
	morning := attractions[:third]
	afternoon := attractions[third : 2*third]
	evening := attractions[2*third:]

	ordered := make([]domain.NormalizedPlace, 0, len(attractions)+2)
	ordered = append(ordered, morning...)
	if len(restaurants) > 0 {
		ordered = append(ordered, restaurants[0])
	}
	ordered = append(ordered, afternoon...)
	if len(restaurants) > 1 {
		ordered = append(ordered, restaurants[1])
	}
	ordered = append(ordered, evening...)

	current := domain.DayWindowStart
	entries := []domain.DayPlanEntry{{Place: lodging, Start: current, End: current}}
	for _, p := range ordered {
		end := current.Add(time.Duration(p.VisitDurationMinutes) * time.Minute)
		entries = append(entries, domain.DayPlanEntry{Place: p, Start: current, End: end})
		current = end.Add(30 * time.Minute)
	}
	entries = append(entries, domain.DayPlanEntry{Place: lodging, Start: current, End: current})

	return domain.DayPlan{Day: day, Entries: entries}
}

func shuffle(rng *rand.Rand, places []domain.NormalizedPlace) {
	for i := len(places) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		places[i], places[j] = places[j], places[i]
	}
}
