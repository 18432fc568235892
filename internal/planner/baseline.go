package planner

import (
	"math/rand"

	"tripweave/internal/baseline"
	"tripweave/internal/domain"
	"tripweave/internal/geo"
	"tripweave/internal/metrics"
	"tripweave/internal/normalize"
)

// Baseline generates a single randomized-but-legal schedule over input,
// scored the same way Plan's output is. Used by the evaluation pipeline to
// sample the comparison distribution.
func Baseline(input domain.PlannerInput, rng *rand.Rand) (domain.PlannerOutput, error) {
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

	schedule, err := baseline.Generate(normalized.Places, *normalized.Lodging, numDays, input.TransportMode, rng)
	if err != nil {
		return domain.PlannerOutput{}, newError(InternalFailure, err.Error())
	}

	scores := metrics.Evaluate(schedule)
	return domain.PlannerOutput{Success: true, Schedule: schedule, Scores: scores}, nil
}
