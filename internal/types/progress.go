package types

import "time"

// ProgressSummary is a derived, read-only view over one identity's past
// analyses. It is recomputed on demand and holds no state of its own.
type ProgressSummary struct {
	TotalVersions   int     `json:"total_versions"`
	AverageScore    float64 `json:"average_score"`
	BestScore       float64 `json:"best_score"`
	ImprovementRate float64 `json:"improvement_rate"`
	// TimeSeries is always sorted ascending by CreatedAt, ties broken by
	// the stable order of the input sequence.
	TimeSeries []AnalysisResult `json:"time_series"`
}

// FilterOptions bounds a sequence of analyses. Every bound is inclusive and
// a nil bound imposes no restriction.
type FilterOptions struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	MinScore  *float64   `json:"min_score,omitempty"`
	MaxScore  *float64   `json:"max_score,omitempty"`
}
