package pipeline

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-insight/internal/quantify"
	"github.com/jonathan/resume-insight/internal/scoring"
)

// Config is the explicit, injectable tuning surface of the engine: weights,
// lexica and patterns live here instead of in package-level constants so
// behavior is testable and tunable without code changes.
type Config struct {
	Weights scoring.Weights `json:"weights"`
	// StrongVerbs is the curated strong action-verb lemma list.
	StrongVerbs []string `json:"strong_verbs" validate:"min=1"`
	// Stopwords feed both the achievement heuristic and the keyword
	// extraction; the list should include pronouns.
	Stopwords []string `json:"stopwords" validate:"min=1"`
	// NumericPatterns are the regular expressions marking measurable values.
	NumericPatterns []string `json:"numeric_patterns" validate:"min=1"`
	// MissingKeywordCap bounds the reported missing-keyword list.
	MissingKeywordCap int `json:"missing_keyword_cap" validate:"gte=0"`
	// FeedbackTimeout bounds the optional qualitative-feedback call.
	FeedbackTimeout time.Duration `json:"feedback_timeout" validate:"gt=0"`
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		Weights:           scoring.DefaultWeights(),
		StrongVerbs:       defaultStrongVerbs(),
		Stopwords:         defaultStopwords(),
		NumericPatterns:   quantify.DefaultPatterns(),
		MissingKeywordCap: 20,
		FeedbackTimeout:   20 * time.Second,
	}
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}
	sum := c.Weights.ActionVerb + c.Weights.Quantification + c.Weights.Keyword
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("invalid engine config: weights sum to %.3f, want 1", sum)
	}
	return nil
}

// defaultStrongVerbs lists lemmas, so inflected forms match through the
// tagger ("led" and "leading" both hit "lead").
func defaultStrongVerbs() []string {
	return []string{
		"achieve", "analyze", "architect", "automate", "build", "coordinate",
		"create", "deliver", "deploy", "design", "develop", "drive", "execute",
		"grow", "implement", "improve", "increase", "launch", "lead", "manage",
		"mentor", "migrate", "optimize", "reduce", "resolve", "scale", "ship",
		"streamline", "supervise", "train",
	}
}

// defaultStopwords holds common English function words, pronouns, and the
// job-posting boilerplate ("Senior", "experience", ...) that would otherwise
// drown the real keywords. A unit opening with one of these is not
// achievement-like, and none of them count as job-description keywords.
func defaultStopwords() []string {
	return []string{
		// Function words and pronouns
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by", "for",
		"from", "had", "has", "have", "he", "her", "his", "i", "in", "is",
		"it", "its", "me", "my", "of", "on", "or", "our", "she", "that",
		"the", "their", "them", "they", "this", "to", "was", "we", "were",
		"with", "you", "your",
		// Job-posting boilerplate
		"ability", "candidate", "developer", "engineer", "experience",
		"junior", "knowledge", "plus", "position", "preferred", "proficiency",
		"required", "requirement", "responsibility", "role", "senior",
		"skill", "strong", "work", "year",
	}
}
