package evaluation

import (
	"math/rand"
	"sort"
	"time"
)

// MatrixSummary rolls up one pass over the full scenario matrix.
type MatrixSummary struct {
	TotalScenarios      int      `json:"total_scenarios"`
	Succeeded           int      `json:"succeeded"`
	BetterThanRandom    int      `json:"better_than_random"`
	SignificantlyBetter int      `json:"significantly_better"`
	Reports             []Report `json:"reports"`
}

// RunMatrix evaluates every scenario in the 108-scenario matrix and rolls up
// how often the planner's total score ranked above the 50th percentile of
// its random-baseline sample, and how often above the 90th. onScenario, if
// non-nil, is called once per completed scenario report, letting a caller
// stream progress (e.g. over a websocket) as the matrix runs.
func RunMatrix(rng *rand.Rand, referenceDate time.Time, numSamplesPerScenario int, onScenario func(Report)) MatrixSummary {
	scenarios := GenerateMatrix(rng, referenceDate)
	summary := MatrixSummary{TotalScenarios: len(scenarios), Reports: make([]Report, 0, len(scenarios))}

	for _, scenario := range scenarios {
		report := Evaluate(scenario, numSamplesPerScenario, rng)
		summary.Reports = append(summary.Reports, report)
		if onScenario != nil {
			onScenario(report)
		}
		if !report.Success {
			continue
		}
		summary.Succeeded++
		if total, ok := report.Significance["total"]; ok {
			if total.RankingPercentile > 50 {
				summary.BetterThanRandom++
			}
			if total.RankingPercentile > 90 {
				summary.SignificantlyBetter++
			}
		}
	}

	return summary
}

// RunRate is one multi-run sample: the share of scenarios the planner beat
// at all, and the share it beat significantly, for a single matrix pass.
type RunRate struct {
	RunID           int     `json:"run_id"`
	TotalScenarios  int     `json:"total_scenarios"`
	SuccessRate     float64 `json:"success_rate"`
	SignificantRate float64 `json:"significant_rate"`
}

// RateStats summarizes a set of RunRate values the way multi_run_test.py's
// success_rate/significant_rate blocks do: min, max, mean, median, std dev.
type RateStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// MultiRunSummary aggregates several independent matrix passes, reporting
// how stable the planner's advantage over random is run to run.
type MultiRunSummary struct {
	NumRuns         int       `json:"num_runs"`
	Runs            []RunRate `json:"individual_runs"`
	SuccessRate     RateStats `json:"success_rate"`
	SignificantRate RateStats `json:"significant_rate"`
}

// RunMultiple repeats RunMatrix numRuns times, each with its own RNG stream
// derived from rng, and aggregates the resulting success rates.
func RunMultiple(rng *rand.Rand, referenceDate time.Time, numSamplesPerScenario, numRuns int) MultiRunSummary {
	runs := make([]RunRate, 0, numRuns)
	for i := 1; i <= numRuns; i++ {
		runRng := rand.New(rand.NewSource(rng.Int63()))
		summary := RunMatrix(runRng, referenceDate, numSamplesPerScenario, nil)
		if summary.TotalScenarios == 0 {
			continue
		}
		runs = append(runs, RunRate{
			RunID:           i,
			TotalScenarios:  summary.TotalScenarios,
			SuccessRate:     float64(summary.BetterThanRandom) / float64(summary.TotalScenarios) * 100,
			SignificantRate: float64(summary.SignificantlyBetter) / float64(summary.TotalScenarios) * 100,
		})
	}

	successRates := make([]float64, len(runs))
	significantRates := make([]float64, len(runs))
	for i, r := range runs {
		successRates[i] = r.SuccessRate
		significantRates[i] = r.SignificantRate
	}

	return MultiRunSummary{
		NumRuns:         len(runs),
		Runs:            runs,
		SuccessRate:     rateStats(successRates),
		SignificantRate: rateStats(significantRates),
	}
}

func rateStats(values []float64) RateStats {
	if len(values) == 0 {
		return RateStats{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return RateStats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean(sorted),
		Median: percentileValue(sorted, 50),
		StdDev: stdDev(sorted),
	}
}
