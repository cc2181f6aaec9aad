// Package textnorm cleans raw extracted resume text and segments it into
// sentence and bullet units for the downstream detectors.
package textnorm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-insight/internal/nlp"
	"github.com/jonathan/resume-insight/internal/types"
)

var (
	// Hyphenated line break: "devel-\noped" -> "developed". Only rejoin when
	// the continuation starts lowercase, so real dashes survive.
	hyphenBreakPattern = regexp.MustCompile(`([a-z])-\s*\r?\n\s*([a-z])`)
	// Page-break and form-feed glyphs left behind by PDF extraction
	pageBreakPattern = regexp.MustCompile(`[\f\x{000B}\x{2028}\x{2029}]`)
	spacePattern     = regexp.MustCompile(`[ \t]+`)
	sentenceEnd      = regexp.MustCompile(`[.!?]+`)
)

// bulletGlyphs are the characters that open a bullet unit.
const bulletGlyphs = "-•*●"

// Normalizer turns raw text into a NormalizedDocument. It needs a tagger to
// attach lemmas, and a stopword set for the achievement heuristic.
type Normalizer struct {
	tagger    nlp.Tagger
	stopwords map[string]struct{}
}

// New creates a Normalizer. The stopword set should include pronouns; a unit
// whose first token is in it is not counted as achievement-like.
func New(tagger nlp.Tagger, stopwords []string) *Normalizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{tagger: tagger, stopwords: set}
}

// Normalize cleans and segments text. Empty or unusable input yields a
// document with zero units, not an error.
func (n *Normalizer) Normalize(text string) (types.NormalizedDocument, error) {
	text = hyphenBreakPattern.ReplaceAllString(text, "$1$2")
	text = pageBreakPattern.ReplaceAllString(text, "\n")

	var doc types.NormalizedDocument
	for _, seg := range segment(text) {
		unit, ok, err := n.buildUnit(seg)
		if err != nil {
			return types.NormalizedDocument{}, err
		}
		if ok {
			doc.Units = append(doc.Units, unit)
		}
	}
	return doc, nil
}

// segment splits cleaned text into raw units: each bullet line is one unit,
// consecutive plain lines are joined and then split at sentence punctuation.
type rawUnit struct {
	text   string
	bullet bool
}

func segment(text string) []rawUnit {
	var units []rawUnit
	var plain []string

	flushPlain := func() {
		if len(plain) == 0 {
			return
		}
		joined := collapseSpaces(strings.Join(plain, " "))
		plain = plain[:0]
		for _, s := range sentenceEnd.Split(joined, -1) {
			s = strings.TrimSpace(s)
			if s != "" {
				units = append(units, rawUnit{text: s})
			}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flushPlain()
			continue
		}
		if rest, ok := splitBullet(line); ok {
			flushPlain()
			rest = strings.TrimSpace(strings.TrimLeft(rest, bulletGlyphs+" \t"))
			if rest != "" {
				units = append(units, rawUnit{text: collapseSpaces(rest), bullet: true})
			}
			continue
		}
		plain = append(plain, line)
	}
	flushPlain()
	return units
}

// splitBullet reports whether the line opens with a bullet glyph and returns
// the remainder after the glyph.
func splitBullet(line string) (string, bool) {
	for _, r := range line {
		if strings.ContainsRune(bulletGlyphs, r) {
			return line[len(string(r)):], true
		}
		return "", false
	}
	return "", false
}

func (n *Normalizer) buildUnit(seg rawUnit) (types.TextUnit, bool, error) {
	raw := strings.TrimRight(seg.text, " .,;:")
	tokens, err := n.tagger.Tag(raw)
	if err != nil {
		return types.TextUnit{}, false, fmt.Errorf("normalizing unit: %w", err)
	}
	if len(tokens) == 0 {
		return types.TextUnit{}, false, nil
	}

	unit := types.TextUnit{
		Raw:    raw,
		Tokens: tokens,
		Bullet: seg.bullet,
	}
	unit.Achievement = seg.bullet || (len(tokens) > 1 && n.verbLike(tokens[0]))
	return unit, true, nil
}

// verbLike applies the leading-token heuristic: the first token must not be
// a stopword, pronoun or number to count as the start of an accomplishment.
// Single-token units such as the "Education" or "Skills" headers are never
// achievement-like unless they arrive as bullets.
func (n *Normalizer) verbLike(first types.Token) bool {
	if _, stop := n.stopwords[first.Lemma]; stop {
		return false
	}
	if _, stop := n.stopwords[strings.ToLower(first.Text)]; stop {
		return false
	}
	for _, r := range first.Text {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
