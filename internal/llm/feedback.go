package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// feedbackSchema validates the structured response before it is trusted.
// Strengths and suggestions are optional; an empty summary is rejected.
const feedbackSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary"],
  "properties": {
    "summary": {"type": "string", "minLength": 1},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "suggestions": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": true
}`

// feedbackPayload mirrors the JSON the model is asked to return.
type feedbackPayload struct {
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
}

// Feedback generates the qualitative narrative for an analysis. It
// implements the pipeline's FeedbackGenerator contract; the pipeline treats
// the returned string as opaque.
type Feedback struct {
	client Client
}

// NewFeedback wraps an LLM client into a feedback generator.
func NewFeedback(client Client) *Feedback {
	return &Feedback{client: client}
}

// Generate asks the model for structured feedback, validates it against the
// schema, and flattens it into a single narrative string. Any provider or
// validation error is returned to the caller, which degrades gracefully.
func (f *Feedback) Generate(ctx context.Context, resumeText, jobDescription string) (string, error) {
	raw, err := f.client.GenerateJSON(ctx, buildFeedbackPrompt(resumeText, jobDescription), TierLite)
	if err != nil {
		return "", err
	}

	payload, err := parseFeedback(raw)
	if err != nil {
		return "", err
	}
	return flattenFeedback(payload), nil
}

// parseFeedback validates the raw model output and unmarshals it.
func parseFeedback(raw string) (feedbackPayload, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(feedbackSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return feedbackPayload{}, fmt.Errorf("feedback response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return feedbackPayload{}, fmt.Errorf("feedback response failed schema validation: %s", strings.Join(msgs, "; "))
	}

	var payload feedbackPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return feedbackPayload{}, fmt.Errorf("failed to decode feedback response: %w", err)
	}
	return payload, nil
}

// flattenFeedback renders the payload as the opaque narrative stored on the
// analysis result.
func flattenFeedback(p feedbackPayload) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(p.Summary))
	if len(p.Strengths) > 0 {
		sb.WriteString("\n\nStrengths:\n")
		for _, s := range p.Strengths {
			sb.WriteString("- " + strings.TrimSpace(s) + "\n")
		}
	}
	if len(p.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range p.Suggestions {
			sb.WriteString("- " + strings.TrimSpace(s) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// buildFeedbackPrompt keeps the model on a short leash: constructive, brief,
// JSON only.
func buildFeedbackPrompt(resumeText, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("You are a resume coach. Analyze the following resume text and provide constructive feedback.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"summary\": string (required) // one constructive paragraph, at most 100 words\n")
	sb.WriteString("  \"strengths\": []string // up to 3 notable strengths\n")
	sb.WriteString("  \"suggestions\": []string // up to 3 concrete improvements\n")
	sb.WriteString("}\n\n")
	sb.WriteString("Do not invent facts that are not in the resume. No markdown, no explanation.\n\n")
	if strings.TrimSpace(jobDescription) != "" {
		sb.WriteString("Target job description:\n---\n")
		sb.WriteString(jobDescription)
		sb.WriteString("\n---\n\n")
	}
	sb.WriteString("Resume text:\n---\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n---\n")
	return sb.String()
}
