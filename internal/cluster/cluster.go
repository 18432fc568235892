// Package cluster spatially partitions a trip's places across days using
// agglomerative Ward-linkage clustering, balances cluster sizes against a
// per-day capacity estimate, and fills every day with at least one
// restaurant (real or synthesized).
package cluster

import (
	"fmt"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

// Partition splits places into numDays day-buckets. Restaurants are
// clustered and interleaved separately from other places so that meals land
// near that day's attractions; for non-empty input every returned day
// carries at least one restaurant, synthesizing virtual lunch/dinner
// placeholders where the real restaurant supply runs short (empty input
// yields numDays empty buckets). May return more than numDays buckets when
// the place count requires extending the trip (mirrors the capacity-driven
// day-extension in the original pipeline).
func Partition(places []domain.NormalizedPlace, numDays int) ([][]domain.NormalizedPlace, error) {
	if numDays < 1 {
		return nil, fmt.Errorf("cluster: numDays must be >= 1, got %d", numDays)
	}
	if len(places) == 0 {
		return make([][]domain.NormalizedPlace, numDays), nil
	}

	restaurants, other := separateRestaurants(places)

	if len(restaurants) <= 2 && len(other) == 0 {
		return fewRestaurantsOnly(restaurants, numDays), nil
	}

	maxPerDay := estimateCapacity(other)
	requiredDays := numDays
	if maxPerDay > 0 {
		need := ceilDiv(len(other), maxPerDay)
		if need > requiredDays {
			requiredDays = need
		}
	}
	numDays = requiredDays

	placeClusters := clusterOtherPlaces(other, numDays, maxPerDay)
	restaurantClusters := clusterRestaurants(restaurants, numDays)

	final := make([][]domain.NormalizedPlace, numDays)
	for i, c := range placeClusters {
		final[i] = append(final[i], c...)
	}

	restaurantIdx := 0
	for i := 0; i < numDays; i += 2 {
		if restaurantIdx >= len(restaurantClusters) {
			break
		}
		current := restaurantClusters[restaurantIdx]
		if len(current) > 1 {
			mid := len(current) / 2
			final[i] = append(final[i], current[:mid]...)
			if i+1 < numDays {
				final[i+1] = append(final[i+1], current[mid:]...)
			} else {
				final[i] = append(final[i], current[mid:]...)
			}
		} else {
			final[i] = append(final[i], current...)
		}
		restaurantIdx++
	}

	center := centroidOf(locationsOf(places))
	fillMissingMeals(final, center)

	return final, nil
}

func separateRestaurants(places []domain.NormalizedPlace) (restaurants, other []domain.NormalizedPlace) {
	for _, p := range places {
		if p.IsRestaurant() {
			restaurants = append(restaurants, p)
		} else {
			other = append(other, p)
		}
	}
	return restaurants, other
}

func locationsOf(places []domain.NormalizedPlace) []geo.Point {
	pts := make([]geo.Point, len(places))
	for i, p := range places {
		pts[i] = p.Location
	}
	return pts
}

// fewRestaurantsOnly handles the degenerate case of <=2 restaurants and no
// other places: spread the restaurants across days and backfill the rest of
// each day's meal slots with virtual placeholders.
func fewRestaurantsOnly(restaurants []domain.NormalizedPlace, numDays int) [][]domain.NormalizedPlace {
	result := make([][]domain.NormalizedPlace, numDays)

	if numDays == 1 {
		result[0] = append(result[0], restaurants...)
		if len(restaurants) == 1 {
			result[0] = append(result[0], domain.NewVirtualMeal("virtual-dinner-0", domain.MealDinner, restaurants[0].Location))
		}
		return result
	}

	for i, r := range restaurants {
		if i < numDays {
			result[i] = append(result[i], r)
		}
	}
	center := centroidOf(locationsOf(restaurants))
	fillMissingMeals(result, center)
	return result
}

// estimateCapacity returns the approximate number of non-meal places a
// single day can hold given average visit duration and an assumed average
// transit hop, after reserving the day's two meal windows.
func estimateCapacity(other []domain.NormalizedPlace) int {
	if len(other) == 0 {
		return 0
	}
	available := domain.DayWindowMinutes - 2*domain.VirtualMealDurationMinutes

	var totalVisit int
	for _, p := range other {
		totalVisit += p.VisitDurationMinutes
	}
	avgVisit := float64(totalVisit) / float64(len(other))
	avgPlaceTime := avgVisit + float64(domain.AverageTransitMinutes)
	if avgPlaceTime <= 0 {
		return len(other)
	}
	capacity := int(float64(available) / avgPlaceTime)
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}

// farthestFromCenter returns the index of bucket's member with the greatest
// great-circle distance from center.
func farthestFromCenter(bucket []domain.NormalizedPlace, center geo.Point) int {
	best, bestDist := 0, -1.0
	for i, p := range bucket {
		d := geo.HaversineMeters(center, p.Location)
		if d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// clusterOtherPlaces Ward-clusters non-restaurant places into numDays
// buckets, then rebalances any bucket exceeding maxPerDay by moving its
// farthest-from-centroid member to the nearest under-capacity bucket.
func clusterOtherPlaces(other []domain.NormalizedPlace, numDays, maxPerDay int) [][]domain.NormalizedPlace {
	buckets := make([][]domain.NormalizedPlace, numDays)
	if len(other) == 0 {
		return buckets
	}
	if len(other) == 1 {
		buckets[0] = append(buckets[0], other[0])
		return buckets
	}

	groups := wardClusters(locationsOf(other), numDays)
	for i, members := range groups {
		for _, idx := range members {
			buckets[i] = append(buckets[i], other[idx])
		}
	}

	if maxPerDay <= 0 {
		return buckets
	}

	changed := true
	for changed {
		changed = false
		for i := range buckets {
			if len(buckets[i]) <= maxPerDay {
				continue
			}
			center := centroidOf(locationsOf(buckets[i]))
			bestJ, bestDist := -1, -1.0
			for j := range buckets {
				if j == i || len(buckets[j]) >= maxPerDay {
					continue
				}
				targetCenter := center
				if len(buckets[j]) > 0 {
					targetCenter = centroidOf(locationsOf(buckets[j]))
				}
				d := planarDistance(center, targetCenter)
				if bestJ == -1 || d < bestDist {
					bestJ, bestDist = j, d
				}
			}
			if bestJ == -1 {
				continue
			}
			farIdx := farthestFromCenter(buckets[i], center)
			moved := buckets[i][farIdx]
			buckets[i] = append(buckets[i][:farIdx], buckets[i][farIdx+1:]...)
			buckets[bestJ] = append(buckets[bestJ], moved)
			changed = true
		}
	}
	return buckets
}

// clusterRestaurants Ward-clusters restaurants into max(1, ceil(numDays/2))
// groups so that each group can be split across a pair of adjacent days.
func clusterRestaurants(restaurants []domain.NormalizedPlace, numDays int) [][]domain.NormalizedPlace {
	if len(restaurants) == 0 {
		return nil
	}
	count := (numDays + 1) / 2
	if count < 1 {
		count = 1
	}
	if len(restaurants) == 1 {
		return [][]domain.NormalizedPlace{{restaurants[0]}}
	}

	groups := wardClusters(locationsOf(restaurants), count)
	result := make([][]domain.NormalizedPlace, len(groups))
	for i, members := range groups {
		for _, idx := range members {
			result[i] = append(result[i], restaurants[idx])
		}
	}
	return result
}

// fillMissingMeals ensures every day carries at least one real or virtual
// restaurant for both lunch and dinner: days with none get both synthesized,
// days with exactly one real restaurant get a virtual dinner added.
func fillMissingMeals(days [][]domain.NormalizedPlace, center geo.Point) {
	for i := range days {
		count := 0
		for _, p := range days[i] {
			if p.IsRestaurant() {
				count++
			}
		}
		switch count {
		case 0:
			days[i] = append(days[i],
				domain.NewVirtualMeal(fmt.Sprintf("virtual-lunch-%d", i), domain.MealLunch, center),
				domain.NewVirtualMeal(fmt.Sprintf("virtual-dinner-%d", i), domain.MealDinner, center),
			)
		case 1:
			days[i] = append(days[i], domain.NewVirtualMeal(fmt.Sprintf("virtual-dinner-%d", i), domain.MealDinner, center))
		}
	}
}
