// Package quantify scores the presence of measurable outcomes (numbers,
// percentages, currency amounts, multipliers) in achievement-like units.
package quantify

import (
	"math"
	"regexp"

	"github.com/jonathan/resume-insight/internal/types"
)

// DefaultPatterns returns the numeric-with-unit patterns, most specific
// first so findings report the most informative match. Bare integers are
// deliberately not on the list: team sizes ("a team of 5") and years would
// dominate the metric otherwise. Matches inside parenthetical citations or
// dates are counted too: no attempt is made to tell a date from a metric,
// which is a documented limitation of the heuristic.
func DefaultPatterns() []string {
	return []string{
		`\d+(?:[.,]\d+)?\s?%`,                      // 30%, 12.5 %
		`(?:R\$|US\$|\$|€|£)\s?\d[\d.,]*[kKmMbB]?`, // $2M, R$ 1.200,00
		`(?i)\b\d+(?:\.\d+)?\s?(?:x\b|×)`,          // 3x, 2×
		`\b\d+\s*[-–]\s*\d+\b`,                     // ranges: 10-20
		`\b\d+:\d+\b`,                              // ratios: 3:1
	}
}

// Detector matches achievement-like units against numeric patterns.
type Detector struct {
	patterns []*regexp.Regexp
}

// New compiles the given patterns. An invalid pattern is a configuration
// error and is returned as such.
func New(patterns []string) (*Detector, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Detector{patterns: compiled}, nil
}

// Analyze returns the percentage of achievement-like units containing at
// least one measurable value, plus the per-unit findings. Zero
// achievement-like units score 0.
func (d *Detector) Analyze(doc types.NormalizedDocument) (float64, []types.QuantFinding) {
	var findings []types.QuantFinding
	achievements := 0
	measurable := 0

	for i, unit := range doc.Units {
		if !unit.Achievement {
			continue
		}
		achievements++
		f := types.QuantFinding{UnitIndex: i}
		if match := d.firstMatch(unit.Raw); match != "" {
			f.Measurable = true
			f.Match = match
			measurable++
		}
		findings = append(findings, f)
	}

	if achievements == 0 {
		return 0, findings
	}
	return round1(float64(measurable) / float64(achievements) * 100), findings
}

func (d *Detector) firstMatch(raw string) string {
	for _, re := range d.patterns {
		if m := re.FindString(raw); m != "" {
			return m
		}
	}
	return ""
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
