// Package nlp provides the language-model dependency of the analysis engine:
// tokenization, lemmatization and part-of-speech tagging behind a small
// injectable interface.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"

	"github.com/jonathan/resume-insight/internal/types"
)

// Tagger turns a piece of text into tokens with lemmas and POS tags.
// Implementations must be safe for concurrent use; the engine may call Tag
// from multiple analysis invocations at once.
type Tagger interface {
	Tag(text string) ([]types.Token, error)
}

// EnglishTagger tags English text using prose for tokenization/POS tagging
// and golem for lemmatization.
type EnglishTagger struct {
	lemmatizer *golem.Lemmatizer
}

// NewEnglishTagger loads the English dictionary and returns a ready tagger.
// A load failure wraps ErrModelUnavailable.
func NewEnglishTagger() (*EnglishTagger, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("%w: loading english lemma dictionary: %v", ErrModelUnavailable, err)
	}
	return &EnglishTagger{lemmatizer: lem}, nil
}

// Tag tokenizes and tags the given text. Non-alphabetic tokens keep their
// lowercased surface form as lemma so numeric tokens stay comparable.
func (t *EnglishTagger) Tag(text string) ([]types.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: tagging text: %v", ErrModelUnavailable, err)
	}

	var out []types.Token
	for _, tok := range doc.Tokens() {
		if !isWord(tok.Text) {
			continue
		}
		out = append(out, types.Token{
			Text:  tok.Text,
			Lemma: t.lemma(tok.Text),
			Tag:   tok.Tag,
		})
	}
	return out, nil
}

func (t *EnglishTagger) lemma(word string) string {
	lower := strings.ToLower(word)
	if !isAlpha(lower) {
		return lower
	}
	if lemma := t.lemmatizer.Lemma(lower); lemma != "" {
		return strings.ToLower(lemma)
	}
	return lower
}

// isWord reports whether a token carries at least one letter or digit.
// Pure punctuation tokens are dropped; "30%" and "$2M" are kept.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// IsVerbTag reports whether a Penn Treebank tag denotes a verb form.
func IsVerbTag(tag string) bool {
	return strings.HasPrefix(tag, "VB")
}

// IsFiniteVerbTag reports whether a tag denotes a finite verb (one that can
// carry a clause on its own). Participles and gerunds are excluded.
func IsFiniteVerbTag(tag string) bool {
	switch tag {
	case "VB", "VBD", "VBP", "VBZ":
		return true
	}
	return false
}

// IsPastParticipleTag reports whether a tag is the past participle form.
func IsPastParticipleTag(tag string) bool {
	return tag == "VBN"
}
