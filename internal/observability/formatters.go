// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisResult outputs a human-readable summary of one analysis.
func (p *Printer) PrintAnalysisResult(res *types.AnalysisResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:        %5.1f  (%s)\n", res.OverallScore, res.Level))
	sb.WriteString(fmt.Sprintf("Action verbs:   %5.1f\n", res.ActionVerbScore))
	sb.WriteString(fmt.Sprintf("Quantification: %5.1f\n", res.QuantificationScore))
	sb.WriteString(fmt.Sprintf("Keywords:       %5.1f\n", res.KeywordScore))

	if len(res.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(res.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", res.MissingKeywords[i]))
		}
		if len(res.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(res.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(res.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range res.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))

	if res.QualitativeFeedback != nil {
		p.printBox("AI FEEDBACK", *res.QualitativeFeedback)
	}
}

// PrintProgressSummary outputs the aggregate statistics and the score trend.
func (p *Printer) PrintProgressSummary(summary *types.ProgressSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Versions:    %d\n", summary.TotalVersions))
	sb.WriteString(fmt.Sprintf("Average:     %.2f\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("Best:        %.2f\n", summary.BestScore))
	sb.WriteString(fmt.Sprintf("Improvement: %+.2f%%\n", summary.ImprovementRate))

	if len(summary.TimeSeries) > 0 {
		sb.WriteString("\nHistory:\n")
		for _, entry := range summary.TimeSeries {
			sb.WriteString(fmt.Sprintf("  %s  %5.1f\n",
				entry.CreatedAt.Format("2006-01-02"), entry.OverallScore))
		}
	}

	p.printBox("PROGRESS SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
