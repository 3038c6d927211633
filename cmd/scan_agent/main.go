// Package main provides the entry point for the resume keyword scanner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scan_agent",
	Short: "Resume keyword scanner",
	Long:  "Resume keyword scanner extracts ranked keywords from job descriptions and matches them against resume text with lexical and embedding-based engines.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
