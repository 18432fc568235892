// Command evaluate runs the planner against the full 108-scenario matrix (or
// repeats it multiple times) and prints a summary report, mirroring
// comprehensive_test.py/multi_run_test.py but pushed through Go's
// concurrency primitives instead of asyncio.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tripweave/internal/evaluation"
	"tripweave/internal/logger"
)

func main() {
	logger.Init()

	var numSamples int
	var numRuns int
	var concurrency int
	var outputPath string

	root := &cobra.Command{
		Use:   "evaluate",
		Short: "Run the planner against the 108-scenario baseline matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			evaluation.SetConcurrencyCap(concurrency)
			reference := time.Now()
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			if numRuns <= 1 {
				summary := runOnce(rng, reference, numSamples)
				return writeSummary(outputPath, summary)
			}

			multi := evaluation.RunMultiple(rng, reference, numSamples, numRuns)
			fmt.Printf("\n===== Multi-run Summary (%d runs) =====\n", multi.NumRuns)
			fmt.Printf("Success rate: min=%.1f%% max=%.1f%% mean=%.1f%% median=%.1f%% std=%.1f%%\n",
				multi.SuccessRate.Min, multi.SuccessRate.Max, multi.SuccessRate.Mean, multi.SuccessRate.Median, multi.SuccessRate.StdDev)
			fmt.Printf("Significant rate: min=%.1f%% max=%.1f%% mean=%.1f%% median=%.1f%% std=%.1f%%\n",
				multi.SignificantRate.Min, multi.SignificantRate.Max, multi.SignificantRate.Mean, multi.SignificantRate.Median, multi.SignificantRate.StdDev)
			return writeSummary(outputPath, multi)
		},
	}

	root.Flags().IntVar(&numSamples, "num-samples", 100, "random baseline samples per scenario")
	root.Flags().IntVar(&numRuns, "num-runs", 1, "number of full matrix passes (multi-run mode if > 1)")
	root.Flags().IntVar(&concurrency, "concurrency", 0, "max in-flight baseline samples (0 = runtime.NumCPU())")
	root.Flags().StringVar(&outputPath, "output", "", "write the summary JSON to this path (stdout-only if empty)")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("evaluation run failed")
	}
}

func runOnce(rng *rand.Rand, reference time.Time, numSamples int) evaluation.MatrixSummary {
	total := 0
	summary := evaluation.RunMatrix(rng, reference, numSamples, func(r evaluation.Report) {
		total++
		status := "ok"
		if !r.Success {
			status = "failed: " + r.Error
		}
		fmt.Printf("[%3d/108] %-40s %s\n", total, r.ScenarioName, status)
	})

	fmt.Printf("\n===== Comprehensive Test Summary =====\n")
	fmt.Printf("Total scenarios tested: %d (expected 108)\n", summary.TotalScenarios)
	fmt.Printf("Succeeded: %d\n", summary.Succeeded)
	if summary.Succeeded > 0 {
		fmt.Printf("Better than random: %d/%d (%.1f%%)\n",
			summary.BetterThanRandom, summary.Succeeded, float64(summary.BetterThanRandom)/float64(summary.Succeeded)*100)
		fmt.Printf("Significantly better: %d/%d (%.1f%%)\n",
			summary.SignificantlyBetter, summary.Succeeded, float64(summary.SignificantlyBetter)/float64(summary.Succeeded)*100)
	}
	return summary
}

func writeSummary(path string, summary interface{}) error {
	if path == "" {
		return nil
	}
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
