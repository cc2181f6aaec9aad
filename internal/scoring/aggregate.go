// Package scoring combines the sub-scores of an analysis into the single
// deterministic overall score.
package scoring

import "math"

// Weights configures the contribution of each sub-score. They should sum to
// 1; Validate on the pipeline config enforces the ranges.
type Weights struct {
	ActionVerb     float64 `json:"action_verb" validate:"gte=0,lte=1"`
	Quantification float64 `json:"quantification" validate:"gte=0,lte=1"`
	Keyword        float64 `json:"keyword" validate:"gte=0,lte=1"`
}

// DefaultWeights weighs the three dimensions equally.
func DefaultWeights() Weights {
	return Weights{
		ActionVerb:     1.0 / 3.0,
		Quantification: 1.0 / 3.0,
		Keyword:        1.0 / 3.0,
	}
}

// Aggregate computes the weighted overall score, rounded to one decimal and
// clamped to [0,100]. It is pure: identical inputs always produce identical
// output.
//
// When no job description was supplied the keyword dimension reports a
// neutral 100; averaging that in at full weight would inflate every resume
// analyzed without a target job. The keyword weight is therefore
// redistributed evenly to the other two dimensions instead.
func Aggregate(actionVerb, quantification, keyword float64, hasJobDescription bool, w Weights) float64 {
	if !hasJobDescription {
		half := w.Keyword / 2
		w.ActionVerb += half
		w.Quantification += half
		w.Keyword = 0
	}

	total := actionVerb*w.ActionVerb + quantification*w.Quantification + keyword*w.Keyword
	return round1(clamp(total))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
