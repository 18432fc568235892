package evaluation

import (
	"math/rand"
	"runtime"
	"sync"

	"tripweave/internal/domain"
	"tripweave/internal/planner"
)

// concurrencyCap is the configured ceiling on in-flight baseline samples.
// Zero means "use runtime.NumCPU()". SetConcurrencyCap lets the server wire
// this from EvaluationConfig.MaxConcurrentSamples at startup.
var concurrencyCap int

// SetConcurrencyCap overrides how many baseline samples run concurrently.
// A non-positive value restores the runtime.NumCPU() default.
func SetConcurrencyCap(n int) {
	concurrencyCap = n
}

// maxConcurrentSamples caps how many baseline samples run at once, the way
// Hub.run fans a single broadcast out to many clients without
// unbounded goroutine growth.
func maxConcurrentSamples() int {
	if concurrencyCap > 0 {
		return concurrencyCap
	}
	if n := runtime.NumCPU(); n > 1 {
		return n
	}
	return 1
}

// Report is the outcome of evaluating the planner's output for one scenario
// against a sampled population of random-but-legal baselines.
type Report struct {
	ScenarioName string                  `json:"scenario_name"`
	Success      bool                    `json:"success"`
	Error        string                  `json:"error,omitempty"`
	Algorithm    domain.Scores           `json:"algorithm_scores"`
	BaselineSize int                     `json:"baseline_sample_size"`
	Baseline     map[string]MetricStats  `json:"baseline_stats"`
	Significance map[string]Significance `json:"significance"`
}

// Evaluate runs the planner once on scenario, samples numSamples random
// baselines over the same input, and reports how the planner's scores rank
// against that sampled distribution. rng seeds every sample independently so
// concurrent samples never share mutable RNG state.
func Evaluate(scenario Scenario, numSamples int, rng *rand.Rand) Report {
	input := domain.PlannerInput{
		Places:        scenario.Places,
		StartDate:     scenario.StartDate,
		EndDate:       scenario.EndDate,
		TransportMode: scenario.TransportMode,
	}

	algoOut, err := planner.Plan(input, rng)
	if err != nil || !algoOut.Success {
		msg := ""
		if err != nil {
			msg = err.Error()
		}
		return Report{ScenarioName: scenario.Name, Success: false, Error: msg}
	}

	samples := sampleBaselines(input, numSamples, rng)
	if len(samples) == 0 {
		return Report{ScenarioName: scenario.Name, Success: false, Error: "no baseline samples succeeded"}
	}

	baselineStats := map[string]MetricStats{}
	significance := map[string]Significance{}
	for _, name := range metricNames {
		values := make([]float64, len(samples))
		for i, s := range samples {
			values[i] = metricValue(s, name)
		}
		stats := summarize(values)
		baselineStats[name] = stats

		sig := significanceZ(metricValue(algoOut.Scores, name), stats)
		sig.RankingPercentile = PercentileRank(metricValue(algoOut.Scores, name), values)
		significance[name] = sig
	}

	return Report{
		ScenarioName: scenario.Name,
		Success:      true,
		Algorithm:    algoOut.Scores,
		BaselineSize: len(samples),
		Baseline:     baselineStats,
		Significance: significance,
	}
}

// sampleBaselines runs numSamples independent baseline generations
// concurrently, capped at maxConcurrentSamples in flight at once.
func sampleBaselines(input domain.PlannerInput, numSamples int, rng *rand.Rand) []domain.Scores {
	seeds := make([]int64, numSamples)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make(chan *domain.Scores, numSamples)
	sem := make(chan struct{}, maxConcurrentSamples())
	var wg sync.WaitGroup

	for _, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(seed int64) {
			defer wg.Done()
			defer func() { <-sem }()

			out, err := planner.Baseline(input, rand.New(rand.NewSource(seed)))
			if err != nil || !out.Success {
				results <- nil
				return
			}
			scores := out.Scores
			results <- &scores
		}(seed)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var scores []domain.Scores
	for r := range results {
		if r != nil {
			scores = append(scores, *r)
		}
	}
	return scores
}
