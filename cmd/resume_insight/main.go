// Package main provides the entry point for the resume insight CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "Resume analysis and progress scoring",
	Long:  "Resume Insight scores resume text for action verbs, quantified results and job-description keyword coverage, and tracks score progress across versions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
