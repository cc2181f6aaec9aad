package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-insight/internal/types"
)

func TestPrintAnalysisResult(t *testing.T) {
	var buf bytes.Buffer
	feedback := "Solid resume."
	res := &types.AnalysisResult{
		OverallScore:        33.3,
		ActionVerbScore:     50,
		QuantificationScore: 0,
		KeywordScore:        50,
		Level:               "Needs Improvement",
		MissingKeywords:     []string{"leadership", "mentoring"},
		Recommendations:     []string{"Add measurable results"},
		QualitativeFeedback: &feedback,
	}

	NewPrinter(&buf).PrintAnalysisResult(res)
	out := buf.String()

	assert.Contains(t, out, "ANALYSIS RESULT")
	assert.Contains(t, out, "33.3")
	assert.Contains(t, out, "Needs Improvement")
	assert.Contains(t, out, "leadership")
	assert.Contains(t, out, "Add measurable results")
	assert.Contains(t, out, "AI FEEDBACK")
	assert.Contains(t, out, "Solid resume.")
}

func TestPrintAnalysisResult_TruncatesLongMissingList(t *testing.T) {
	var buf bytes.Buffer
	res := &types.AnalysisResult{
		MissingKeywords: []string{"one", "two", "three", "four", "five", "six", "seven"},
	}

	NewPrinter(&buf).PrintAnalysisResult(res)
	out := buf.String()

	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "seven")
}

func TestPrintAnalysisResult_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysisResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProgressSummary(t *testing.T) {
	var buf bytes.Buffer
	summary := &types.ProgressSummary{
		TotalVersions:   2,
		AverageScore:    62.5,
		BestScore:       75,
		ImprovementRate: 50,
		TimeSeries: []types.AnalysisResult{
			{OverallScore: 50, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
			{OverallScore: 75, CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	NewPrinter(&buf).PrintProgressSummary(summary)
	out := buf.String()

	assert.Contains(t, out, "PROGRESS SUMMARY")
	assert.Contains(t, out, "62.50")
	assert.Contains(t, out, "+50.00%")
	assert.Contains(t, out, "2026-02-01")
	assert.Contains(t, out, "2026-03-01")
}

func TestPrintProgressSummary_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgressSummary(nil)
	assert.Empty(t, buf.String())
}
