// Package evaluation runs the planner against a random-baseline population
// to measure how much better it does than chance, across a matrix of
// synthetic trip scenarios.
package evaluation

import (
	"fmt"
	"math/rand"
	"time"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
	"tripweave/internal/util"
)

// Scenario is one synthetic trip to evaluate the planner against.
type Scenario struct {
	Name          string
	Places        []domain.RawPlace
	StartDate     string
	EndDate       string
	TransportMode geo.TransportMode
	DurationDays  int
}

var cityCenters = map[string]geo.Point{
	"Paris":    {Lat: 48.8566, Lng: 2.3522},
	"London":   {Lat: 51.5074, Lng: -0.1278},
	"Tokyo":    {Lat: 35.6762, Lng: 139.6503},
	"New York": {Lat: 40.7128, Lng: -74.0060},
}

type sizeConfig struct {
	name        string
	attractions int
	restaurants int
}

var sizeConfigs = []sizeConfig{
	{"small", 3, 2},
	{"medium", 8, 4},
	{"large", 15, 6},
}

type durationConfig struct {
	name           string
	minDays        int
	maxDays        int
}

var durationConfigs = []durationConfig{
	{"short", 1, 2},
	{"medium", 3, 5},
	{"long", 6, 8},
}

var transportModes = []geo.TransportMode{geo.Walking, geo.Transit, geo.Driving}

// GenerateMatrix builds the full scenario matrix: every city, size,
// duration bucket, and transport mode combination (4x3x3x3 = 108 by
// default), rooted at referenceDate.
func GenerateMatrix(rng *rand.Rand, referenceDate time.Time) []Scenario {
	var scenarios []Scenario
	for city, center := range cityCenters {
		for _, size := range sizeConfigs {
			for _, duration := range durationConfigs {
				for _, mode := range transportModes {
					days := duration.minDays
					if duration.maxDays > duration.minDays {
						days += rng.Intn(duration.maxDays - duration.minDays + 1)
					}
					scenarios = append(scenarios, Scenario{
						Name:          fmt.Sprintf("%s_%s_%s_%s", city, size.name, duration.name, mode),
						Places:        generatePlaces(center, size.attractions, size.restaurants, rng),
						StartDate:     util.FormatDate(referenceDate),
						EndDate:       util.FormatDate(referenceDate.AddDate(0, 0, days-1)),
						TransportMode: mode,
						DurationDays:  days,
					})
				}
			}
		}
	}
	return scenarios
}

func generatePlaces(center geo.Point, numAttractions, numRestaurants int, rng *rand.Rand) []domain.RawPlace {
	places := []domain.RawPlace{generateHotel(center, rng)}
	for i := 0; i < numAttractions; i++ {
		places = append(places, generateAttraction(center, rng))
	}
	for i := 0; i < numRestaurants; i++ {
		places = append(places, generateRestaurant(center, rng))
	}
	return places
}

var attractionTypeSets = [][]string{
	{"tourist_attraction", "point_of_interest"},
	{"museum", "tourist_attraction"},
	{"park", "point_of_interest"},
}

func generateHotel(center geo.Point, rng *rand.Rand) domain.RawPlace {
	lat, lng := jitter(center, 0.01, rng)
	return domain.RawPlace{
		PlaceID:          fmt.Sprintf("hotel_%f_%f", lat, lng),
		Name:             fmt.Sprintf("Hotel in %f, %f", lat, lng),
		Types:            []string{"lodging", "hotel"},
		Rating:           roundTo1(3.5 + rng.Float64()*1.5),
		UserRatingsTotal: 100 + rng.Intn(4900),
		PriceLevel:       2 + rng.Intn(3),
		Location:         &domain.LatLng{Lat: lat, Lng: lng},
	}
}

func generateAttraction(center geo.Point, rng *rand.Rand) domain.RawPlace {
	lat, lng := jitter(center, 0.02, rng)
	types := attractionTypeSets[rng.Intn(len(attractionTypeSets))]
	return domain.RawPlace{
		PlaceID:          fmt.Sprintf("attr_%f_%f", lat, lng),
		Name:             fmt.Sprintf("Attraction at %f, %f", lat, lng),
		Types:            types,
		Rating:           roundTo1(3.5 + rng.Float64()*1.5),
		UserRatingsTotal: 1000 + rng.Intn(49000),
		PriceLevel:       1 + rng.Intn(3),
		Location:         &domain.LatLng{Lat: lat, Lng: lng},
	}
}

func generateRestaurant(center geo.Point, rng *rand.Rand) domain.RawPlace {
	lat, lng := jitter(center, 0.015, rng)
	return domain.RawPlace{
		PlaceID:          fmt.Sprintf("rest_%f_%f", lat, lng),
		Name:             fmt.Sprintf("Restaurant at %f, %f", lat, lng),
		Types:            []string{"restaurant", "food", "point_of_interest"},
		Rating:           roundTo1(3.5 + rng.Float64()*1.5),
		UserRatingsTotal: 100 + rng.Intn(2900),
		PriceLevel:       1 + rng.Intn(4),
		Location:         &domain.LatLng{Lat: lat, Lng: lng},
	}
}

func jitter(center geo.Point, radius float64, rng *rand.Rand) (float64, float64) {
	dLat := (rng.Float64()*2 - 1) * radius
	dLng := (rng.Float64()*2 - 1) * radius
	return round6(center.Lat + dLat), round6(center.Lng + dLng)
}

func round6(v float64) float64 { return float64(int(v*1e6+sign(v)*0.5)) / 1e6 }
func roundTo1(v float64) float64 { return float64(int(v*10+0.5)) / 10 }
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
