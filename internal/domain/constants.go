package domain

import "time"

// DayWindowStart and DayWindowEnd bound the hours during which a place
// visit may start and end (spec.md §4.R / GLOSSARY "Day window").
var (
	DayWindowStart = clockTime(9, 0)
	DayWindowEnd   = clockTime(21, 0)
)

// MealWindow is a meal's [start, end] interval plus its optimal time.
type MealWindow struct {
	Start   time.Time
	End     time.Time
	Optimal time.Time
}

// LunchWindow and DinnerWindow are the two meal windows from GLOSSARY.
var (
	LunchWindow  = MealWindow{Start: clockTime(11, 0), End: clockTime(14, 0), Optimal: clockTime(12, 30)}
	DinnerWindow = MealWindow{Start: clockTime(17, 0), End: clockTime(20, 0), Optimal: clockTime(18, 30)}
)

// clockTime builds a time.Time on a fixed reference date carrying only
// hour/minute; every schedule computation uses the same reference date so
// that time-of-day comparisons are plain time.Time comparisons.
func clockTime(hour, minute int) time.Time {
	return time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC)
}

// OnReferenceDate rebases t (any date) onto the shared 2000-01-01 reference
// date used by clockTime, keeping only the hour/minute/second.
func OnReferenceDate(t time.Time) time.Time {
	return clockTime(t.Hour(), t.Minute()).Add(time.Duration(t.Second()) * time.Second)
}

// durationRange is an inclusive [min, max] range in minutes.
type durationRange struct {
	min, max int
}

// visitDurationRanges maps a Category to its visit-duration range in
// minutes, keyed per spec.md §3.
var visitDurationRanges = map[Category]durationRange{
	CategoryRestaurant:         {min: 60, max: 90},
	CategoryTouristAttraction:  {min: 60, max: 180},
	CategoryMuseum:             {min: 120, max: 240},
	CategoryPark:               {min: 60, max: 120},
	CategoryShoppingMall:       {min: 60, max: 180},
	CategoryDefault:            {min: 60, max: 180},
}

// VisitDurationRange returns the {min, max} range for a category, falling
// back to the default range for unrecognized categories.
func VisitDurationRange(c Category) (min, max int) {
	r, ok := visitDurationRanges[c]
	if !ok {
		r = visitDurationRanges[CategoryDefault]
	}
	return r.min, r.max
}

// VirtualMealDurationMinutes is the fixed visit duration assigned to every
// synthesized meal placeholder.
const VirtualMealDurationMinutes = 75

// DayWindowMinutes is the total length of the day window in minutes.
const DayWindowMinutes = 12 * 60

// AverageTransitMinutes is the estimated per-hop transit time used only by
// the day-partitioner's capacity estimate (component C), not by routing.
const AverageTransitMinutes = 30

// MaxPlacesPerDayFallback is the early fail-fast validator ceiling from
// spec.md §9 ("the 8-per-day rule as the safety fallback").
const MaxPlacesPerDayFallback = 8
