package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain JSON", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
		{"fence without closing", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}

func TestConfig_GetModel(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	// Unknown tiers fall back to the standard model.
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(ModelTier("ultra")))
}
