// Package normalize validates and normalizes caller-supplied places:
// resolving a single category per place, assigning a randomized
// visit-duration, and separating out the lodging anchor.
package normalize

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"tripweave/internal/domain"
)

// Result is the outcome of normalizing a caller's place list.
type Result struct {
	Places  []domain.NormalizedPlace
	Lodging *domain.NormalizedPlace
}

// Normalize validates each raw place's location, resolves its category, and
// draws a randomized visit duration from that category's range. Places
// whose location cannot be resolved are dropped and logged, not failed —
// the caller decides whether the end result has enough places to schedule.
// rng must be non-nil; pass a seeded *rand.Rand for reproducible tests.
func Normalize(places []domain.RawPlace, rng *rand.Rand) (Result, error) {
	var result Result

	for i, raw := range places {
		loc, ok := raw.Coordinates()
		if !ok {
			log.Warn().
				Str("place", raw.Name).
				Str("field", "geometry.location | location").
				Msg("dropping place with unresolvable coordinates")
			continue
		}

		category := domain.ResolveCategory(raw.Types)
		id := raw.PlaceID
		if id == "" {
			id = fmt.Sprintf("place-%d", i)
		}

		np := domain.NormalizedPlace{
			ID:       id,
			Name:     raw.Name,
			Location: loc,
			Category: category,
			Rating:   raw.Rating,
			Original: &places[i],
		}

		if category == domain.CategoryLodging {
			if result.Lodging != nil {
				log.Warn().Str("place", raw.Name).Msg("multiple lodging places supplied, keeping first")
				continue
			}
			lodging := np
			result.Lodging = &lodging
			continue
		}

		min, max := domain.VisitDurationRange(category)
		np.VisitDurationMinutes = randomInRange(rng, min, max)
		if category == domain.CategoryRestaurant {
			np.Variant = domain.VariantReal
		}

		result.Places = append(result.Places, np)
	}

	if len(result.Places) == 0 {
		return result, fmt.Errorf("normalize: no schedulable places after validation")
	}

	return result, nil
}

// randomInRange draws an integer uniformly from [min, max], inclusive.
func randomInRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
