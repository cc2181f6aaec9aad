// Package keywords compares resume vocabulary against a target job
// description and reports the gap.
package keywords

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/jonathan/resume-insight/internal/nlp"
	"github.com/jonathan/resume-insight/internal/types"
)

// Analyzer extracts required keywords from a job description and checks
// which of them appear anywhere in the resume.
type Analyzer struct {
	tagger     nlp.Tagger
	stopwords  map[string]struct{}
	missingCap int
}

// minKeywordLen drops tokens too short to be meaningful keywords.
const minKeywordLen = 3

// New creates an Analyzer. missingCap bounds the length of the reported
// missing list; zero or negative means unlimited.
func New(tagger nlp.Tagger, stopwords []string, missingCap int) *Analyzer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Analyzer{tagger: tagger, stopwords: set, missingCap: missingCap}
}

// Analyze matches the job description's keywords against the whole resume,
// not only achievement units: skills sections matter here.
//
// An absent, blank or otherwise unusable job description yields the neutral
// result (score 100, nothing missing). That is deliberate: the keyword
// dimension is excluded rather than penalized, and the score aggregator
// redistributes its weight instead of averaging in the neutral 100.
func (a *Analyzer) Analyze(doc types.NormalizedDocument, jobDescription string) (types.KeywordGapResult, error) {
	neutral := types.KeywordGapResult{
		Required: []string{},
		Present:  []string{},
		Missing:  []string{},
		Score:    100,
	}
	if strings.TrimSpace(jobDescription) == "" {
		return neutral, nil
	}

	tokens, err := a.tagger.Tag(jobDescription)
	if err != nil {
		return types.KeywordGapResult{}, fmt.Errorf("tagging job description: %w", err)
	}

	required := a.requiredKeywords(tokens)
	if len(required) == 0 {
		// A job description of pure stopwords is treated as absent.
		return neutral, nil
	}

	resumeLemmas := doc.LemmaSet()
	result := types.KeywordGapResult{
		Required: make([]string, 0, len(required)),
		Present:  []string{},
		Missing:  []string{},
	}
	present := 0
	for _, kw := range required {
		result.Required = append(result.Required, kw.display)
		if _, ok := resumeLemmas[kw.lemma]; ok {
			present++
			result.Present = append(result.Present, kw.display)
		} else if a.missingCap <= 0 || len(result.Missing) < a.missingCap {
			result.Missing = append(result.Missing, kw.display)
		}
	}

	result.Score = round1(clamp(float64(present) / float64(len(required)) * 100))
	return result, nil
}

// keyword pairs the display form (original casing of first appearance) with
// the lemma used for matching.
type keyword struct {
	display string
	lemma   string
}

// requiredKeywords filters, lemmatizes and deduplicates the job-description
// tokens, preserving first-appearance order and casing.
func (a *Analyzer) requiredKeywords(tokens []types.Token) []keyword {
	var out []keyword
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if len([]rune(tok.Text)) < minKeywordLen || !alphabetic(tok.Text) {
			continue
		}
		if _, stop := a.stopwords[tok.Lemma]; stop {
			continue
		}
		if _, stop := a.stopwords[strings.ToLower(tok.Text)]; stop {
			continue
		}
		if _, dup := seen[tok.Lemma]; dup {
			continue
		}
		seen[tok.Lemma] = struct{}{}
		out = append(out, keyword{display: tok.Text, lemma: tok.Lemma})
	}
	return out
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
