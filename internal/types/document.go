// Package types defines the shared data structures used across the analysis engine.
package types

// Token is a single word of a text unit together with its normalized form.
type Token struct {
	Text  string `json:"text"`          // Original surface form
	Lemma string `json:"lemma"`         // Lowercased base form used for comparisons
	Tag   string `json:"tag,omitempty"` // Penn Treebank part-of-speech tag (e.g. "VBD")
}

// TextUnit is one sentence or bullet produced by the text normalizer.
type TextUnit struct {
	Raw         string  `json:"raw"`
	Tokens      []Token `json:"tokens"`
	Bullet      bool    `json:"bullet"`      // Unit started with a bullet glyph
	Achievement bool    `json:"achievement"` // Unit plausibly describes an accomplishment
}

// NormalizedDocument is the ordered, immutable unit sequence for one analysis call.
// A document with zero units is valid: it represents a resume whose text
// extraction produced nothing usable, and every downstream score is 0.
type NormalizedDocument struct {
	Units []TextUnit `json:"units"`
}

// AchievementUnits returns the subset of units flagged as achievement-like,
// preserving order.
func (d NormalizedDocument) AchievementUnits() []TextUnit {
	var out []TextUnit
	for _, u := range d.Units {
		if u.Achievement {
			out = append(out, u)
		}
	}
	return out
}

// LemmaSet returns the set of lemmas across every unit of the document,
// headers and contact lines included. Keyword matching intentionally scans
// the whole document, not only achievement units, because skills sections
// carry most of the vocabulary a job description asks for.
func (d NormalizedDocument) LemmaSet() map[string]struct{} {
	out := make(map[string]struct{})
	for _, u := range d.Units {
		for _, tok := range u.Tokens {
			if tok.Lemma != "" {
				out[tok.Lemma] = struct{}{}
			}
		}
	}
	return out
}
