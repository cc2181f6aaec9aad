package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/scoring"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsEmptyLexica(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrongVerbs = nil
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Stopwords = nil
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.NumericPatterns = nil
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsWeightsNotSummingToOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = scoring.Weights{ActionVerb: 0.5, Quantification: 0.5, Keyword: 0.5}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsOutOfRangeWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = scoring.Weights{ActionVerb: 1.5, Quantification: -0.25, Keyword: -0.25}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNegativeCapAndZeroTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MissingKeywordCap = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.FeedbackTimeout = 0
	assert.Error(t, cfg.Validate())
}

func TestDefaultConfig_StopwordsCoverBoilerplate(t *testing.T) {
	cfg := DefaultConfig()

	set := make(map[string]struct{}, len(cfg.Stopwords))
	for _, w := range cfg.Stopwords {
		set[w] = struct{}{}
	}
	for _, w := range []string{"the", "senior", "experience", "engineer"} {
		_, ok := set[w]
		assert.True(t, ok, "expected stopword %q", w)
	}
}
