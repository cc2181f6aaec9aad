// Package llm provides the optional qualitative-feedback collaborator: a
// thin client over Google Gemini plus the schema-validated feedback
// generator consumed by the analysis pipeline.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks such as short feedback paragraphs
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning and structured output
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the feedback client.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the standard
// tier when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}
