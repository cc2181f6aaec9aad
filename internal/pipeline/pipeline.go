// Package pipeline orchestrates one synchronous resume analysis: normalize
// the text, run the three detectors over the same normalized document,
// aggregate the sub-scores, and optionally attach qualitative feedback from
// the external LLM collaborator.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-insight/internal/keywords"
	"github.com/jonathan/resume-insight/internal/nlp"
	"github.com/jonathan/resume-insight/internal/quantify"
	"github.com/jonathan/resume-insight/internal/scoring"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
	"github.com/jonathan/resume-insight/internal/verbs"
)

// FeedbackGenerator is the optional qualitative-feedback collaborator. Its
// output is treated as opaque and strictly additive: a failure or timeout
// never blocks the structural result.
type FeedbackGenerator interface {
	Generate(ctx context.Context, resumeText, jobDescription string) (string, error)
}

// Input is one analysis request. JobDescription may be empty; a blank or
// malformed job description is treated as absent, not rejected.
type Input struct {
	Text           string
	JobDescription string
}

// Pipeline is the analysis engine. It holds no per-call state: every
// Analyze invocation builds its own NormalizedDocument and returns a fresh
// AnalysisResult, so a single Pipeline is safe for concurrent use.
type Pipeline struct {
	cfg        Config
	normalizer *textnorm.Normalizer
	verbs      *verbs.Detector
	quantify   *quantify.Detector
	keywords   *keywords.Analyzer
	feedback   FeedbackGenerator
	logger     *log.Logger
}

// New builds a Pipeline around the given tagger. feedback and logger may be
// nil; without a feedback generator results simply carry no qualitative
// feedback, and without a logger degradation notices are dropped.
func New(tagger nlp.Tagger, cfg Config, feedback FeedbackGenerator, logger *log.Logger) (*Pipeline, error) {
	if tagger == nil {
		return nil, fmt.Errorf("building pipeline: %w", nlp.ErrModelUnavailable)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	qd, err := quantify.New(cfg.NumericPatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid engine config: numeric patterns: %w", err)
	}
	return &Pipeline{
		cfg:        cfg,
		normalizer: textnorm.New(tagger, cfg.Stopwords),
		verbs:      verbs.New(cfg.StrongVerbs),
		quantify:   qd,
		keywords:   keywords.New(tagger, cfg.Stopwords, cfg.MissingKeywordCap),
		feedback:   feedback,
		logger:     logger,
	}, nil
}

// Analyze runs the structural pipeline. The only hard failure is the
// language model being unavailable (errors.Is(err, nlp.ErrModelUnavailable));
// empty input yields a valid all-zero result.
func (p *Pipeline) Analyze(ctx context.Context, in Input) (types.AnalysisResult, error) {
	doc, err := p.normalizer.Normalize(in.Text)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	hasJD := strings.TrimSpace(in.JobDescription) != ""

	var (
		verbScore    float64
		verbFindings []types.VerbFinding
		quantScore   float64
		keywordGap   types.KeywordGapResult
	)

	// The detectors are independent reads of the same immutable document.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		verbScore, verbFindings = p.verbs.Analyze(doc)
		return nil
	})
	g.Go(func() error {
		quantScore, _ = p.quantify.Analyze(doc)
		return nil
	})
	g.Go(func() error {
		var kerr error
		keywordGap, kerr = p.keywords.Analyze(doc, in.JobDescription)
		return kerr
	})
	if err := g.Wait(); err != nil {
		return types.AnalysisResult{}, err
	}

	overall := scoring.Aggregate(verbScore, quantScore, keywordGap.Score, hasJD, p.cfg.Weights)

	result := types.AnalysisResult{
		ID:                  uuid.New(),
		OverallScore:        overall,
		ActionVerbScore:     verbScore,
		QuantificationScore: quantScore,
		KeywordScore:        keywordGap.Score,
		MissingKeywords:     keywordGap.Missing,
		MatchedKeywords:     keywordGap.Present,
		Level:               scoring.Level(overall),
		Recommendations:     scoring.Recommendations(verbScore, quantScore, keywordGap.Score, overall, hasJD),
		VerbFindings:        verbFindings,
		CreatedAt:           time.Now().UTC(),
	}

	if fb, ok := p.generateFeedback(ctx, in); ok {
		result.QualitativeFeedback = &fb
	}
	return result, nil
}

// generateFeedback calls the collaborator under the configured timeout.
// Failures are logged and swallowed: qualitative feedback is best-effort.
func (p *Pipeline) generateFeedback(ctx context.Context, in Input) (string, bool) {
	if p.feedback == nil {
		return "", false
	}
	fctx, cancel := context.WithTimeout(ctx, p.cfg.FeedbackTimeout)
	defer cancel()

	fb, err := p.feedback.Generate(fctx, in.Text, in.JobDescription)
	if err != nil {
		p.logf("qualitative feedback unavailable, returning structural result only: %v", err)
		return "", false
	}
	if strings.TrimSpace(fb) == "" {
		return "", false
	}
	return fb, true
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
