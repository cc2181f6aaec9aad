package types

import (
	"time"

	"github.com/google/uuid"
)

// VerbClass classifies the leading verb of an achievement-like unit.
type VerbClass string

// Verb classification constants
const (
	// VerbStrongActive marks a unit led by a strong action verb in active voice
	VerbStrongActive VerbClass = "strong_active"
	// VerbWeakPassive marks a unit phrased passively or lacking a finite verb
	VerbWeakPassive VerbClass = "weak_passive"
	// VerbNone marks a unit whose leading verb is neither strong nor passive
	VerbNone VerbClass = "none"
)

// VerbFinding is the per-unit output of the action-verb detector, kept for
// feedback display.
type VerbFinding struct {
	UnitIndex int       `json:"unit_index"` // Index into NormalizedDocument.Units
	Class     VerbClass `json:"class"`
	Lemma     string    `json:"lemma,omitempty"` // Triggering lemma, if any
}

// QuantFinding is the per-unit output of the quantification detector.
type QuantFinding struct {
	UnitIndex  int    `json:"unit_index"`
	Measurable bool   `json:"measurable"`
	Match      string `json:"match,omitempty"` // First matching numeric token
}

// KeywordGapResult compares resume vocabulary against a job description.
// Required holds the deduplicated job-description keywords in order of first
// appearance, original casing preserved. Missing never contains a keyword
// whose lemma was found in the resume.
type KeywordGapResult struct {
	Required []string `json:"required"`
	Present  []string `json:"present"`
	Missing  []string `json:"missing"`
	Score    float64  `json:"score"`
}

// AnalysisResult is the structured outcome of one analysis call. It is
// immutable once produced; persistence is the caller's concern.
type AnalysisResult struct {
	ID                  uuid.UUID `json:"id"`
	OverallScore        float64   `json:"overall_score"`
	ActionVerbScore     float64   `json:"action_verb_score"`
	QuantificationScore float64   `json:"quantification_score"`
	KeywordScore        float64   `json:"keyword_score"`
	MissingKeywords     []string  `json:"missing_keywords"`
	MatchedKeywords     []string  `json:"matched_keywords"`
	Level               string    `json:"level"`
	Recommendations     []string  `json:"recommendations"`
	// VerbFindings backs the per-bullet feedback display.
	VerbFindings []VerbFinding `json:"verb_findings,omitempty"`
	// QualitativeFeedback is the opaque narrative from the external LLM
	// collaborator. It is nil whenever that collaborator fails or times out;
	// the structural scores above are never affected by it.
	QualitativeFeedback *string   `json:"qualitative_feedback,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
