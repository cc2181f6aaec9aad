package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

func result(score float64, createdAt time.Time) types.AnalysisResult {
	return types.AnalysisResult{
		ID:           uuid.New(),
		OverallScore: score,
		CreatedAt:    createdAt,
	}
}

var baseTime = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalVersions)
	assert.Equal(t, 0.0, summary.AverageScore)
	assert.Equal(t, 0.0, summary.BestScore)
	assert.Equal(t, 0.0, summary.ImprovementRate)
	require.NotNil(t, summary.TimeSeries)
	assert.Empty(t, summary.TimeSeries)
}

func TestSummarize_SingleRecordHasNoTrend(t *testing.T) {
	summary := Summarize([]types.AnalysisResult{result(72.5, baseTime)})

	assert.Equal(t, 1, summary.TotalVersions)
	assert.Equal(t, 72.5, summary.AverageScore)
	assert.Equal(t, 72.5, summary.BestScore)
	assert.Equal(t, 0.0, summary.ImprovementRate)
}

func TestSummarize_ImprovementRate(t *testing.T) {
	summary := Summarize([]types.AnalysisResult{
		result(50, baseTime),
		result(75, baseTime.Add(48*time.Hour)),
	})

	assert.Equal(t, 50.0, summary.ImprovementRate)
	assert.Equal(t, 62.5, summary.AverageScore)
	assert.Equal(t, 75.0, summary.BestScore)
}

func TestSummarize_NegativeImprovement(t *testing.T) {
	summary := Summarize([]types.AnalysisResult{
		result(80, baseTime),
		result(60, baseTime.Add(time.Hour)),
	})

	assert.Equal(t, -25.0, summary.ImprovementRate)
	assert.Equal(t, 80.0, summary.BestScore)
}

func TestSummarize_SortsTimeSeriesAscending(t *testing.T) {
	newest := result(90, baseTime.Add(72*time.Hour))
	middle := result(70, baseTime.Add(24*time.Hour))
	oldest := result(50, baseTime)

	summary := Summarize([]types.AnalysisResult{newest, oldest, middle})

	require.Len(t, summary.TimeSeries, 3)
	assert.Equal(t, oldest.ID, summary.TimeSeries[0].ID)
	assert.Equal(t, middle.ID, summary.TimeSeries[1].ID)
	assert.Equal(t, newest.ID, summary.TimeSeries[2].ID)
	// Improvement is first-to-last in chronological order, not input order.
	assert.Equal(t, 80.0, summary.ImprovementRate)
}

func TestSummarize_TiesKeepInputOrder(t *testing.T) {
	first := result(40, baseTime)
	second := result(60, baseTime)

	summary := Summarize([]types.AnalysisResult{first, second})
	assert.Equal(t, first.ID, summary.TimeSeries[0].ID)
	assert.Equal(t, second.ID, summary.TimeSeries[1].ID)
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	input := []types.AnalysisResult{
		result(90, baseTime.Add(time.Hour)),
		result(50, baseTime),
	}
	firstID := input[0].ID

	Summarize(input)
	assert.Equal(t, firstID, input[0].ID, "input slice must keep its order")
}

func TestSummarize_AverageRoundedToTwoDecimals(t *testing.T) {
	summary := Summarize([]types.AnalysisResult{
		result(33.3, baseTime),
		result(33.3, baseTime.Add(time.Hour)),
		result(33.4, baseTime.Add(2*time.Hour)),
	})
	assert.Equal(t, 33.33, summary.AverageScore)
}

func TestSummarize_ZeroFirstScoreDoesNotPanic(t *testing.T) {
	summary := Summarize([]types.AnalysisResult{
		result(0, baseTime),
		result(50, baseTime.Add(time.Hour)),
	})
	assert.Greater(t, summary.ImprovementRate, 0.0)
}
