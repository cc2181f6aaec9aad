// Package verbs scores the strength and voice of the leading verb in each
// achievement-like unit of a resume.
package verbs

import (
	"math"
	"strings"

	"github.com/jonathan/resume-insight/internal/nlp"
	"github.com/jonathan/resume-insight/internal/types"
)

// Detector classifies achievement-like units against a curated set of
// strong action-verb lemmas.
type Detector struct {
	strong map[string]struct{}
}

// New creates a Detector from strong-verb lemmas. The set is matched against
// lemmas, so inflected forms ("led", "leading") hit via "lead".
func New(strongLemmas []string) *Detector {
	set := make(map[string]struct{}, len(strongLemmas))
	for _, l := range strongLemmas {
		set[strings.ToLower(l)] = struct{}{}
	}
	return &Detector{strong: set}
}

// Analyze classifies every achievement-like unit and returns the score: the
// percentage of those units led by a strong active verb, rounded to one
// decimal. A document with zero achievement-like units scores 0, not 100;
// an empty resume earns nothing.
func (d *Detector) Analyze(doc types.NormalizedDocument) (float64, []types.VerbFinding) {
	var findings []types.VerbFinding
	achievements := 0
	strong := 0

	for i, unit := range doc.Units {
		if !unit.Achievement {
			continue
		}
		achievements++
		f := d.classify(unit)
		f.UnitIndex = i
		if f.Class == types.VerbStrongActive {
			strong++
		}
		findings = append(findings, f)
	}

	if achievements == 0 {
		return 0, findings
	}
	score := float64(strong) / float64(achievements) * 100
	return round1(score), findings
}

// classify inspects one unit. An explicit passive construction wins over a
// strong lemma match ("was led by" is weak even though "lead" is strong):
// flagging weak wording is preferred over crediting it. A unit with no verb
// of any kind is weak too.
func (d *Detector) classify(unit types.TextUnit) types.VerbFinding {
	lead := leadingVerb(unit.Tokens)

	if passiveAux(unit.Tokens) {
		return types.VerbFinding{Class: types.VerbWeakPassive, Lemma: lead}
	}
	if lead != "" {
		if _, ok := d.strong[lead]; ok {
			return types.VerbFinding{Class: types.VerbStrongActive, Lemma: lead}
		}
	}
	if !hasVerb(unit.Tokens) {
		return types.VerbFinding{Class: types.VerbWeakPassive, Lemma: lead}
	}
	return types.VerbFinding{Class: types.VerbNone, Lemma: lead}
}

// leadingVerb returns the lemma of the first verb-tagged token, falling back
// to the first token when the tagger saw no verb. Bullets routinely open
// with the verb itself, so the fallback keeps untagged stubs usable.
func leadingVerb(tokens []types.Token) string {
	for _, tok := range tokens {
		if nlp.IsVerbTag(tok.Tag) {
			return tok.Lemma
		}
	}
	if len(tokens) > 0 {
		return tokens[0].Lemma
	}
	return ""
}

// passiveAux reports an explicit passive construction: an auxiliary "be"
// form followed by a past participle.
func passiveAux(tokens []types.Token) bool {
	for i, tok := range tokens {
		if tok.Lemma != "be" {
			continue
		}
		// Allow one intervening adverb: "was quickly promoted"
		for j := i + 1; j < len(tokens) && j <= i+2; j++ {
			if nlp.IsPastParticipleTag(tokens[j].Tag) {
				return true
			}
		}
	}
	return false
}

// hasVerb reports whether the tagger saw any verb form in the unit. "No
// finite verb at all" counts as weak phrasing; a leading participle like
// "Increased sales by 30%" still counts as verb-led.
func hasVerb(tokens []types.Token) bool {
	for _, tok := range tokens {
		if nlp.IsVerbTag(tok.Tag) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
