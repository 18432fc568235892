package service

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"tripweave/internal/domain"
	"tripweave/internal/dto"
	"tripweave/internal/evaluation"
	"tripweave/internal/model"
	"tripweave/internal/planner"
	"tripweave/internal/repository"
)

// Service orchestrates the planner, baseline generator, and evaluation
// pipeline, and persists evaluation-run audit records.
type Service interface {
	Plan(input domain.PlannerInput) (domain.PlannerOutput, error)
	GenerateBaseline(input domain.PlannerInput) (domain.PlannerOutput, error)
	Evaluate(req dto.EvaluateRequest) (evaluation.Report, error)
	GetRun(id string) (*model.EvaluationRun, error)
	ListRuns(limit int) ([]model.EvaluationRun, error)
	RunMatrix(numSamplesPerScenario int, onScenario func(evaluation.Report)) evaluation.MatrixSummary
}

type service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

// newRNG returns a fresh, independently-seeded RNG per request so concurrent
// handlers never share mutable rand.Rand state.
func (s *service) newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (s *service) Plan(input domain.PlannerInput) (domain.PlannerOutput, error) {
	return planner.Plan(input, s.newRNG())
}

func (s *service) GenerateBaseline(input domain.PlannerInput) (domain.PlannerOutput, error) {
	return planner.Baseline(input, s.newRNG())
}

func (s *service) Evaluate(req dto.EvaluateRequest) (evaluation.Report, error) {
	numSamples := req.NumRandomSolutions
	if numSamples <= 0 {
		numSamples = 100
	}

	scenario := evaluation.Scenario{
		Name:          "api_request",
		Places:        req.Places,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TransportMode: req.TransportMode,
	}

	report := evaluation.Evaluate(scenario, numSamples, s.newRNG())
	if err := s.persistRun(report, numSamples); err != nil {
		return report, err
	}
	return report, nil
}

func (s *service) RunMatrix(numSamplesPerScenario int, onScenario func(evaluation.Report)) evaluation.MatrixSummary {
	summary := evaluation.RunMatrix(s.newRNG(), time.Now(), numSamplesPerScenario, func(r evaluation.Report) {
		_ = s.persistRun(r, numSamplesPerScenario)
		if onScenario != nil {
			onScenario(r)
		}
	})
	return summary
}

func (s *service) persistRun(report evaluation.Report, numSamples int) error {
	run := &model.EvaluationRun{
		ID:                 uuid.NewString(),
		CreatedAt:          time.Now(),
		ScenarioName:       report.ScenarioName,
		NumBaselineSamples: numSamples,
		Success:            report.Success,
		ErrorMessage:       report.Error,
	}
	if report.Success {
		run.DistanceScore = report.Algorithm.Distance
		run.TimeWindowScore = report.Algorithm.TimeWindow
		run.DistributionScore = report.Algorithm.Distribution
		run.ClusteringScore = report.Algorithm.Clustering
		run.TotalScore = report.Algorithm.Total
		run.NumBaselineSamples = report.BaselineSize
		if total, ok := report.Significance["total"]; ok {
			run.TotalRankPercentile = total.RankingPercentile
			run.TotalZScore = total.ZScore
			run.TotalSignificant = total.IsSignificant
		}
	}
	return s.repo.Create(run)
}

func (s *service) GetRun(id string) (*model.EvaluationRun, error) {
	return s.repo.FindByID(id)
}

func (s *service) ListRuns(limit int) ([]model.EvaluationRun, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.FindAll(limit)
}
