package verbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

var testStrongVerbs = []string{"lead", "build", "increase", "deliver", "promote"}

func achievementUnit(tokens ...types.Token) types.TextUnit {
	return types.TextUnit{Tokens: tokens, Bullet: true, Achievement: true}
}

func tok(text, lemma, tag string) types.Token {
	return types.Token{Text: text, Lemma: lemma, Tag: tag}
}

func TestAnalyze_StrongActiveLead(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		achievementUnit(
			tok("Led", "lead", "VBD"),
			tok("a", "a", "DT"),
			tok("team", "team", "NN"),
		),
	}}

	score, findings := d.Analyze(doc)
	assert.Equal(t, 100.0, score)
	require.Len(t, findings, 1)
	assert.Equal(t, types.VerbStrongActive, findings[0].Class)
	assert.Equal(t, "lead", findings[0].Lemma)
}

func TestAnalyze_InflectedFormsMatchViaLemma(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		achievementUnit(
			tok("Leading", "lead", "VBG"),
			tok("cross-functional", "cross-functional", "JJ"),
			tok("teams", "team", "NNS"),
		),
	}}

	score, findings := d.Analyze(doc)
	assert.Equal(t, 100.0, score)
	assert.Equal(t, types.VerbStrongActive, findings[0].Class)
}

func TestAnalyze_PassiveBeatsStrongLemma(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		// "was led by a director": "lead" is strong but the phrasing is passive
		achievementUnit(
			tok("was", "be", "VBD"),
			tok("led", "lead", "VBN"),
			tok("by", "by", "IN"),
			tok("a", "a", "DT"),
			tok("director", "director", "NN"),
		),
	}}

	score, findings := d.Analyze(doc)
	assert.Equal(t, 0.0, score)
	require.Len(t, findings, 1)
	assert.Equal(t, types.VerbWeakPassive, findings[0].Class)
}

func TestAnalyze_PassiveWithInterveningAdverb(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		achievementUnit(
			tok("was", "be", "VBD"),
			tok("quickly", "quickly", "RB"),
			tok("promoted", "promote", "VBN"),
		),
	}}

	_, findings := d.Analyze(doc)
	require.Len(t, findings, 1)
	assert.Equal(t, types.VerbWeakPassive, findings[0].Class)
}

func TestAnalyze_NoVerbAtAllIsWeak(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		achievementUnit(
			tok("Responsible", "responsible", "JJ"),
			tok("for", "for", "IN"),
			tok("onboarding", "onboarding", "NN"),
		),
	}}

	score, findings := d.Analyze(doc)
	assert.Equal(t, 0.0, score)
	require.Len(t, findings, 1)
	assert.Equal(t, types.VerbWeakPassive, findings[0].Class)
}

func TestAnalyze_OrdinaryVerbIsNeitherStrongNorWeak(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		achievementUnit(
			tok("Attended", "attend", "VBD"),
			tok("weekly", "weekly", "JJ"),
			tok("meetings", "meeting", "NNS"),
		),
	}}

	score, findings := d.Analyze(doc)
	assert.Equal(t, 0.0, score)
	require.Len(t, findings, 1)
	assert.Equal(t, types.VerbNone, findings[0].Class)
	assert.Equal(t, "attend", findings[0].Lemma)
}

func TestAnalyze_ZeroAchievementUnitsScoresZero(t *testing.T) {
	d := New(testStrongVerbs)

	score, findings := d.Analyze(types.NormalizedDocument{})
	assert.Equal(t, 0.0, score)
	assert.Empty(t, findings)

	// Non-achievement units do not count toward the denominator either.
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		{Tokens: []types.Token{tok("Education", "education", "NN")}},
	}}
	score, findings = d.Analyze(doc)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, findings)
}

func TestAnalyze_ScoreIsPercentageRoundedToOneDecimal(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		achievementUnit(tok("Built", "build", "VBD"), tok("tools", "tool", "NNS")),
		achievementUnit(tok("Attended", "attend", "VBD"), tok("meetings", "meeting", "NNS")),
		achievementUnit(tok("Responsible", "responsible", "JJ"), tok("for", "for", "IN"), tok("sales", "sale", "NNS")),
	}}

	score, findings := d.Analyze(doc)
	assert.Equal(t, 33.3, score)
	assert.Len(t, findings, 3)
}

func TestAnalyze_FindingsKeepUnitIndexes(t *testing.T) {
	d := New(testStrongVerbs)
	doc := types.NormalizedDocument{Units: []types.TextUnit{
		{Tokens: []types.Token{tok("Experience", "experience", "NN")}},
		achievementUnit(tok("Delivered", "deliver", "VBD"), tok("features", "feature", "NNS")),
	}}

	_, findings := d.Analyze(doc)
	require.Len(t, findings, 1)
	assert.Equal(t, 1, findings[0].UnitIndex)
}
