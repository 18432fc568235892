// Package metrics scores an assembled Schedule along four independent
// dimensions: route distance, meal/day time-window fit, day-to-day
// distribution balance, and intra-day spatial compactness.
package metrics

import (
	"math"
	"time"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

const maxReasonableClusterDistanceMeters = 5000

// Weights are the contribution of each dimension to Scores.Total.
const (
	weightDistance     = 0.3
	weightTimeWindow   = 0.3
	weightDistribution = 0.2
	weightClustering   = 0.2
)

// Evaluate computes the four-dimension metric suite plus the weighted total
// for a schedule.
func Evaluate(schedule domain.Schedule) domain.Scores {
	byDay := groupByDay(schedule.Events)

	s := domain.Scores{
		Distance:     distanceScore(byDay),
		TimeWindow:   timeWindowScore(byDay),
		Distribution: distributionScore(byDay),
		Clustering:   clusteringScore(byDay),
	}
	s.Total = weightDistance*s.Distance + weightTimeWindow*s.TimeWindow +
		weightDistribution*s.Distribution + weightClustering*s.Clustering
	return s
}

func groupByDay(events []domain.Event) map[int][]domain.Event {
	byDay := map[int][]domain.Event{}
	for _, e := range events {
		byDay[e.Day] = append(byDay[e.Day], e)
	}
	return byDay
}

func placeEvents(events []domain.Event) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if e.Type == domain.EventPlace {
			out = append(out, e)
		}
	}
	return out
}

func point(e domain.Event) geo.Point {
	return geo.Point{Lat: e.Place.Location.Lat, Lng: e.Place.Location.Lng}
}

// distanceScore compares the chained distance summed over all days against
// an upper bound summed the same way: per day, the largest pairwise distance
// among its places times (places - 1). It scores 100 when the bound is zero
// and falls linearly as the travelled distance approaches the bound.
func distanceScore(byDay map[int][]domain.Event) float64 {
	var totalDistance, maxPossible float64

	for _, events := range byDay {
		places := placeEvents(events)
		var dayDistance float64
		for i := 0; i+1 < len(places); i++ {
			dayDistance += geo.HaversineMeters(point(places[i]), point(places[i+1]))
		}
		totalDistance += dayDistance
		maxPossible += maxPossibleDistance(places)
	}

	if maxPossible == 0 {
		return 100
	}
	return 100 * (1 - totalDistance/maxPossible)
}

func maxPossibleDistance(places []domain.Event) float64 {
	if len(places) < 2 {
		return 0
	}
	var max float64
	for i := 0; i < len(places); i++ {
		for j := i + 1; j < len(places); j++ {
			d := geo.HaversineMeters(point(places[i]), point(places[j]))
			if d > max {
				max = d
			}
		}
	}
	return max * float64(len(places)-1)
}

// timeWindowScore rewards restaurants scheduled inside a dining window and
// attractions scheduled inside the day window.
func timeWindowScore(byDay map[int][]domain.Event) float64 {
	total, satisfied := 0, 0

	for _, events := range byDay {
		for _, e := range events {
			if e.Type != domain.EventPlace {
				continue
			}
			total++
			start, sok := parseClockTime(e.StartTime)
			end, eok := parseClockTime(e.EndTime)
			if !sok || !eok {
				continue
			}

			if isRestaurantRef(e.Place) {
				if isWithinWindow(start, end, domain.LunchWindow) || isWithinWindow(start, end, domain.DinnerWindow) {
					satisfied++
				}
			} else if !start.Before(domain.DayWindowStart) && !end.After(domain.DayWindowEnd) {
				satisfied++
			}
		}
	}

	if total == 0 {
		return 100
	}
	return 100 * float64(satisfied) / float64(total)
}

func isRestaurantRef(p *domain.PlaceRef) bool {
	if p == nil {
		return false
	}
	for _, t := range p.Types {
		if t == string(domain.CategoryRestaurant) {
			return true
		}
	}
	return false
}

func isWithinWindow(start, end time.Time, w domain.MealWindow) bool {
	return !start.Before(w.Start) && !start.After(w.End) && !end.Before(w.Start) && !end.After(w.End)
}

func parseClockTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("03:04 PM", s)
	if err != nil {
		return time.Time{}, false
	}
	return domain.OnReferenceDate(t), true
}

// distributionScore rewards days with similar place counts, penalized by
// the coefficient of variation across days.
func distributionScore(byDay map[int][]domain.Event) float64 {
	if len(byDay) == 0 {
		return 100
	}
	counts := make([]float64, 0, len(byDay))
	for _, events := range byDay {
		counts = append(counts, float64(len(placeEvents(events))))
	}

	mean := meanOf(counts)
	if mean == 0 {
		return 100
	}
	cv := stdDevOf(counts, mean) / mean
	if cv > 1 {
		cv = 1
	}
	return 100 * (1 - cv)
}

// clusteringScore rewards days whose consecutive places are spatially close
// relative to a 5km reasonable-hop distance.
func clusteringScore(byDay map[int][]domain.Event) float64 {
	if len(byDay) == 0 {
		return 100
	}
	var dayScores []float64
	for _, events := range byDay {
		places := placeEvents(events)
		if len(places) < 2 {
			continue
		}
		var distances []float64
		for i := 0; i+1 < len(places); i++ {
			distances = append(distances, geo.HaversineMeters(point(places[i]), point(places[i+1])))
		}
		avg := meanOf(distances)
		ratio := avg / maxReasonableClusterDistanceMeters
		if ratio > 1 {
			ratio = 1
		}
		dayScores = append(dayScores, 100*(1-ratio))
	}
	if len(dayScores) == 0 {
		return 100
	}
	return meanOf(dayScores)
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stdDevOf(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)))
}
