// Package dto holds request/response shapes that are not themselves domain
// types — thin wire envelopes the controller binds JSON into before handing
// off to the service layer.
package dto

import "tripweave/internal/domain"

// EvaluateRequest is the /api/v1/evaluate body: a planner input plus how
// many random baselines to sample for comparison.
type EvaluateRequest struct {
	domain.PlannerInput
	NumRandomSolutions int `json:"numRandomSolutions"`
}
