package progress

import "github.com/jonathan/resume-insight/internal/types"

// Filter returns the analyses satisfying every given bound, preserving the
// input order. Bounds are inclusive; a nil bound imposes no restriction.
func Filter(results []types.AnalysisResult, opts types.FilterOptions) []types.AnalysisResult {
	out := make([]types.AnalysisResult, 0, len(results))
	for _, r := range results {
		if opts.StartDate != nil && r.CreatedAt.Before(*opts.StartDate) {
			continue
		}
		if opts.EndDate != nil && r.CreatedAt.After(*opts.EndDate) {
			continue
		}
		if opts.MinScore != nil && r.OverallScore < *opts.MinScore {
			continue
		}
		if opts.MaxScore != nil && r.OverallScore > *opts.MaxScore {
			continue
		}
		out = append(out, r)
	}
	return out
}
