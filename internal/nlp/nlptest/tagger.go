// Package nlptest provides a deterministic Tagger stub for unit tests, so
// detector behavior can be asserted without loading real language models.
package nlptest

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-insight/internal/types"
)

// StaticTagger tags text from fixed lookup tables. Unknown words fall back
// to their lowercased surface form with an empty tag, which is enough for
// token- and lemma-level assertions.
type StaticTagger struct {
	// Lemmas maps lowercased surface forms to lemmas.
	Lemmas map[string]string
	// Tags maps lowercased surface forms to Penn Treebank tags.
	Tags map[string]string
	// Err, when set, is returned by every Tag call.
	Err error
}

// Tag splits on non-alphanumeric boundaries and applies the lookup tables.
func (s *StaticTagger) Tag(text string) ([]types.Token, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '%' && r != '$'
	})

	var out []types.Token
	for _, f := range fields {
		lower := strings.ToLower(f)
		lemma := lower
		if l, ok := s.Lemmas[lower]; ok {
			lemma = l
		}
		out = append(out, types.Token{
			Text:  f,
			Lemma: lemma,
			Tag:   s.Tags[lower],
		})
	}
	return out, nil
}

// ResumeTagger returns a StaticTagger preloaded with the vocabulary used
// throughout the engine tests.
func ResumeTagger() *StaticTagger {
	return &StaticTagger{
		Lemmas: map[string]string{
			"led":        "lead",
			"leading":    "lead",
			"built":      "build",
			"increased":  "increase",
			"delivered":  "deliver",
			"designed":   "design",
			"developed":  "develop",
			"reduced":    "reduce",
			"managed":    "manage",
			"was":        "be",
			"were":       "be",
			"is":         "be",
			"are":        "be",
			"engineers":  "engineer",
			"teams":      "team",
			"sales":      "sale",
			"systems":    "system",
			"skills":     "skill",
		},
		Tags: map[string]string{
			"led":         "VBD",
			"built":       "VBD",
			"increased":   "VBD",
			"delivered":   "VBD",
			"designed":    "VBD",
			"developed":   "VBD",
			"reduced":     "VBD",
			"managed":     "VBD",
			"was":         "VBD",
			"were":        "VBD",
			"is":          "VBZ",
			"are":         "VBP",
			"given":       "VBN",
			"responsible": "JJ",
			"onboarding":  "NN",
			"education":   "NN",
			"experience":  "NN",
		},
	}
}
