// Package progress computes summary statistics and chart-ready time series
// over previously persisted analyses. It never re-runs any NLP: all state
// lives in the caller-supplied sequence, and every function here is pure.
package progress

import (
	"math"
	"sort"

	"github.com/jonathan/resume-insight/internal/types"
)

// epsilon guards the improvement-rate division when the first recorded
// score is zero.
const epsilon = 1e-9

// Summarize builds a ProgressSummary from the given analyses. The input may
// arrive in any order; the time series is sorted ascending by CreatedAt with
// ties broken by input order, and the input slice itself is never mutated.
// An empty input yields the all-zero summary, not an error.
func Summarize(results []types.AnalysisResult) types.ProgressSummary {
	series := make([]types.AnalysisResult, len(results))
	copy(series, results)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].CreatedAt.Before(series[j].CreatedAt)
	})

	summary := types.ProgressSummary{
		TotalVersions: len(series),
		TimeSeries:    series,
	}
	if len(series) == 0 {
		summary.TimeSeries = []types.AnalysisResult{}
		return summary
	}

	var sum float64
	best := series[0].OverallScore
	for _, r := range series {
		sum += r.OverallScore
		if r.OverallScore > best {
			best = r.OverallScore
		}
	}
	summary.AverageScore = round2(sum / float64(len(series)))
	summary.BestScore = best
	summary.ImprovementRate = round2(improvementRate(series))
	return summary
}

// improvementRate is the relative change of the overall score from the
// first to the last analysis in chronological order. Fewer than two records
// means there is no trend yet, which is reported as 0.
func improvementRate(series []types.AnalysisResult) float64 {
	if len(series) < 2 {
		return 0
	}
	first := series[0].OverallScore
	last := series[len(series)-1].OverallScore
	return (last - first) / math.Max(first, epsilon) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
