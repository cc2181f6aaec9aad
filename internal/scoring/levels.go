package scoring

// Level maps an overall score to a human-readable label.
func Level(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 50:
		return "Below Average"
	default:
		return "Needs Improvement"
	}
}

// Recommendation thresholds: sub-scores under these values trigger a hint.
const (
	lowSubScore     = 60.0
	lowOverallScore = 70.0
)

// Recommendations derives deterministic improvement hints from the
// sub-scores. A resume with nothing to flag gets a single encouraging note
// so the list is never empty.
func Recommendations(actionVerb, quantification, keyword, overall float64, hasJobDescription bool) []string {
	var out []string

	if actionVerb < lowSubScore {
		out = append(out, "Open more bullet points with strong action verbs to describe your accomplishments")
	}
	if quantification < lowSubScore {
		out = append(out, "Add measurable results (numbers, percentages, amounts) to your achievements")
	}
	if hasJobDescription && keyword < lowSubScore {
		out = append(out, "Work more of the job description's key terms into your resume")
	}
	if overall < lowOverallScore {
		out = append(out, "Consider revising the overall structure and content of your resume")
	}

	if len(out) == 0 {
		out = append(out, "Your resume is well structured. Keep it up!")
	}
	return out
}
