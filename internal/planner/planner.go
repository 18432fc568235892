// Package planner orchestrates normalization, day partitioning, per-day
// routing, and assembly into the single Plan entry point, plus the
// reasonability check that annotates the result with warnings.
package planner

import (
	"math/rand"

	"github.com/rs/zerolog/log"

	"tripweave/internal/assembler"
	"tripweave/internal/cluster"
	"tripweave/internal/domain"
	"tripweave/internal/geo"
	"tripweave/internal/metrics"
	"tripweave/internal/normalize"
	"tripweave/internal/router"
	"tripweave/internal/util"
)

// Plan runs the full pipeline: normalize places, partition them across
// days, route each day, assemble the final schedule, and score it. rng
// drives the only randomized step (visit-duration assignment); pass a
// seeded *rand.Rand for reproducible output.
func Plan(input domain.PlannerInput, rng *rand.Rand) (domain.PlannerOutput, error) {
	if len(input.Places) == 0 {
		return invalidOutput(InputInvalid, domain.WarningInvalidInput,
			"no places provided", "Supply at least one place, including a lodging anchor.")
	}
	if !geo.ValidMode(input.TransportMode) {
		return invalidOutput(InputInvalid, domain.WarningInvalidInput,
			"unsupported transport mode", "Use one of: walking, transit, driving.")
	}

	numDays, err := tripLength(input.StartDate, input.EndDate)
	if err != nil {
		return invalidOutput(InputInvalid, domain.WarningInvalidInput,
			err.Error(), "Check that start_date and end_date are valid YYYY-MM-DD dates with end_date on or after start_date.")
	}

	normalized, err := normalize.Normalize(input.Places, rng)
	if err != nil {
		return invalidOutput(InputInvalid, domain.WarningInvalidInput,
			err.Error(), "Supply places with a resolvable name, location, and category tags.")
	}
	if normalized.Lodging == nil {
		return invalidOutput(NoLodging, domain.WarningNoLodging,
			"no lodging place found among supplied places", "Include a place tagged lodging or hotel.")
	}

	if numDays*domain.MaxPlacesPerDayFallback < len(normalized.Places) {
		return invalidOutput(CapacityViolation, domain.WarningTooManyPlaces,
			"too many places for the requested trip length", "Increase the number of days or reduce the number of places.")
	}

	dayBuckets, err := cluster.Partition(normalized.Places, numDays)
	if err != nil {
		return domain.PlannerOutput{}, newError(InternalFailure, err.Error())
	}

	consumed := map[string]bool{}
	var dayPlans []domain.DayPlan
	for i, bucket := range dayBuckets {
		plan := router.Route(bucket, *normalized.Lodging, input.TransportMode, consumed)
		plan.Day = i
		dayPlans = append(dayPlans, plan)
	}

	schedule := assembler.Assemble(dayPlans, string(input.TransportMode))
	if err := assembler.Validate(schedule); err != nil {
		log.Warn().Err(err).Msg("assembled schedule failed validation")
	}

	scores := metrics.Evaluate(schedule)
	status := checkReasonability(dayBuckets, schedule, normalized.Places)

	return domain.PlannerOutput{
		Success:  true,
		Schedule: schedule,
		Status:   status,
		Scores:   scores,
	}, nil
}

func tripLength(startDate, endDate string) (int, error) {
	start, err := util.ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := util.ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0, errInvalidDateRange
	}
	return days, nil
}

var errInvalidDateRange = newError(InputInvalid, "end_date must not be before start_date")
