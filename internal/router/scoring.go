package router

import (
	"math"
	"time"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

// scorePlace ranks a scheduling candidate: rating, proximity to the
// previously arranged place, and (for restaurants) fit within the current
// meal window. Restaurants scored outside both meal windows are penalized
// rather than excluded, so a day with no better option can still seat one.
func scorePlace(p domain.NormalizedPlace, current time.Time, prevLoc *geo.Point) float64 {
	score := math.Min(5, p.Rating) * 5

	if prevLoc != nil {
		distance := geo.HaversineMeters(*prevLoc, p.Location)
		distanceScore := math.Max(0, 100-distance*0.002)
		score += distanceScore
	}

	if p.IsRestaurant() {
		switch {
		case withinWindow(current, domain.LunchWindow):
			score += timeScore(current, domain.LunchWindow) * 50
		case withinWindow(current, domain.DinnerWindow):
			score += timeScore(current, domain.DinnerWindow) * 50
		default:
			score -= 200
		}
	}

	return math.Max(0, score)
}

// timeScore returns 1.0 at a window's optimal time, decaying linearly with
// the distance from it divided by the full window length: 0.5 at either
// edge of a window whose optimal time is its midpoint.
func timeScore(t time.Time, w domain.MealWindow) float64 {
	optimalMinutes := minutesOfDay(w.Optimal)
	currentMinutes := minutesOfDay(t)
	maxDiff := minutesOfDay(w.End) - minutesOfDay(w.Start)
	if maxDiff <= 0 {
		return 0
	}
	diff := math.Abs(float64(currentMinutes - optimalMinutes))
	return 1 - diff/float64(maxDiff)
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
