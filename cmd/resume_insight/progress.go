package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/progress"
	"github.com/jonathan/resume-insight/internal/store"
	"github.com/jonathan/resume-insight/internal/types"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Summarize score evolution across stored analyses",
	Long:  "Progress loads a user's analysis history from a JSON file or the database, applies optional date and score filters, and reports averages, the best score and the improvement rate.",
	RunE:  runProgress,
}

var (
	progressInputFile   string
	progressDatabaseURL string
	progressUserID      string
	progressStartDate   string
	progressEndDate     string
	progressMinScore    float64
	progressMaxScore    float64
	progressOutputFile  string
	progressVerbose     bool
)

func init() {
	progressCmd.Flags().StringVarP(&progressInputFile, "in", "i", "", "Path to a JSON array of analysis results")
	progressCmd.Flags().StringVar(&progressDatabaseURL, "db-url", "", "PostgreSQL URL to load the history from (overrides DATABASE_URL)")
	progressCmd.Flags().StringVar(&progressUserID, "user-id", "", "User UUID whose history to load (required with --db-url)")
	progressCmd.Flags().StringVar(&progressStartDate, "start", "", "Only include analyses created at or after this RFC 3339 timestamp")
	progressCmd.Flags().StringVar(&progressEndDate, "end", "", "Only include analyses created at or before this RFC 3339 timestamp")
	progressCmd.Flags().Float64Var(&progressMinScore, "min-score", -1, "Only include analyses with overall score >= this value")
	progressCmd.Flags().Float64Var(&progressMaxScore, "max-score", -1, "Only include analyses with overall score <= this value")
	progressCmd.Flags().StringVarP(&progressOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	progressCmd.Flags().BoolVarP(&progressVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	opts, err := buildFilterOptions()
	if err != nil {
		return err
	}

	results, err := loadHistory(ctx, opts)
	if err != nil {
		return err
	}

	summary := progress.Summarize(results)

	if progressVerbose {
		observability.NewPrinter(os.Stderr).PrintProgressSummary(&summary)
	}

	jsonBytes, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if progressOutputFile != "" {
		if err := os.WriteFile(progressOutputFile, jsonBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", progressOutputFile, err)
		}
		return nil
	}
	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

func buildFilterOptions() (types.FilterOptions, error) {
	var opts types.FilterOptions

	if progressStartDate != "" {
		t, err := time.Parse(time.RFC3339, progressStartDate)
		if err != nil {
			return opts, fmt.Errorf("invalid --start: %w", err)
		}
		opts.StartDate = &t
	}
	if progressEndDate != "" {
		t, err := time.Parse(time.RFC3339, progressEndDate)
		if err != nil {
			return opts, fmt.Errorf("invalid --end: %w", err)
		}
		opts.EndDate = &t
	}
	if progressMinScore >= 0 {
		v := progressMinScore
		opts.MinScore = &v
	}
	if progressMaxScore >= 0 {
		v := progressMaxScore
		opts.MaxScore = &v
	}
	return opts, nil
}

// loadHistory reads the analysis history from whichever source was selected.
// Database mode pushes the filters into the query; file mode filters in memory.
func loadHistory(ctx context.Context, opts types.FilterOptions) ([]types.AnalysisResult, error) {
	if progressInputFile != "" && (progressDatabaseURL != "" || progressUserID != "") {
		return nil, fmt.Errorf("--in cannot be combined with --db-url/--user-id")
	}

	if progressInputFile != "" {
		data, err := os.ReadFile(progressInputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", progressInputFile, err)
		}
		var results []types.AnalysisResult
		if err := json.Unmarshal(data, &results); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", progressInputFile, err)
		}
		return progress.Filter(results, opts), nil
	}

	dbURL := progressDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" || progressUserID == "" {
		return nil, fmt.Errorf("either --in or both --db-url (or DATABASE_URL) and --user-id are required")
	}

	userID, err := uuid.Parse(progressUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid --user-id: %w", err)
	}

	st, err := store.Connect(ctx, dbURL)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return st.ListAnalyses(ctx, userID, opts)
}
