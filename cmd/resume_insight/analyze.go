package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/extract"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/nlp"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/pipeline"
	"github.com/jonathan/resume-insight/internal/store"
	"github.com/jonathan/resume-insight/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume and print or store the scored result",
	Long:  "Analyze scores a resume's action verbs, quantified results and keyword coverage against an optional job description, optionally attaching AI feedback and persisting the result.",
	RunE:  runAnalyze,
}

var (
	analyzeTextFile    string
	analyzePDFFile     string
	analyzeJobFile     string
	analyzeOutputFile  string
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeUserID      string
	analyzeVerbose     bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTextFile, "in", "i", "", "Path to extracted resume text file")
	analyzeCmd.Flags().StringVar(&analyzePDFFile, "pdf", "", "Path to resume PDF (extracted locally before analysis)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for qualitative feedback (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL URL to persist the result (optional, overrides DATABASE_URL)")
	analyzeCmd.Flags().StringVar(&analyzeUserID, "user-id", "", "User UUID owning the result (required with --db-url)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if (analyzeTextFile == "") == (analyzePDFFile == "") {
		return fmt.Errorf("provide exactly one of --in or --pdf")
	}

	text, err := loadResumeText()
	if err != nil {
		return err
	}

	jobDescription := ""
	if analyzeJobFile != "" {
		data, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(data)
	}

	ctx := context.Background()

	tagger, err := nlp.NewEnglishTagger()
	if err != nil {
		return fmt.Errorf("failed to initialize language model: %w", err)
	}

	feedback, closeFeedback, err := buildFeedback(ctx)
	if err != nil {
		return err
	}
	defer closeFeedback()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	engine, err := pipeline.New(tagger, pipeline.DefaultConfig(), feedback, logger)
	if err != nil {
		return err
	}

	result, err := engine.Analyze(ctx, pipeline.Input{
		Text:           text,
		JobDescription: jobDescription,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := persistResult(ctx, result); err != nil {
		return err
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintAnalysisResult(&result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonBytes))
	return nil
}

func loadResumeText() (string, error) {
	if analyzePDFFile != "" {
		text, err := extract.File(analyzePDFFile)
		if err != nil {
			return "", err
		}
		return text, nil
	}
	data, err := os.ReadFile(analyzeTextFile)
	if err != nil {
		return "", fmt.Errorf("failed to read resume text file: %w", err)
	}
	return string(data), nil
}

// buildFeedback wires the optional Gemini collaborator. No API key means no
// feedback, which is a supported degraded mode, not an error.
func buildFeedback(ctx context.Context) (pipeline.FeedbackGenerator, func(), error) {
	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, func() {}, nil
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create feedback client: %w", err)
	}
	return llm.NewFeedback(client), func() { _ = client.Close() }, nil
}

// persistResult saves the result when a database target was given.
func persistResult(ctx context.Context, result types.AnalysisResult) error {
	if analyzeDatabaseURL == "" && analyzeUserID == "" {
		return nil
	}
	dbURL := analyzeDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" || analyzeUserID == "" {
		return fmt.Errorf("--db-url (or DATABASE_URL) and --user-id must be provided together")
	}

	userID, err := uuid.Parse(analyzeUserID)
	if err != nil {
		return fmt.Errorf("invalid --user-id: %w", err)
	}

	st, err := store.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}
	return st.SaveAnalysis(ctx, userID, result)
}
