package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/config"
	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/observability"
	"github.com/jonathan/resume-scanner/internal/semantic"
	"github.com/jonathan/resume-scanner/internal/skills"
)

var (
	scanResume     string
	scanJob        string
	scanJobURL     string
	scanMode       string
	scanConfigPath string
	scanVerbose    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a resume against a job description",
	Long: `Extract ranked keywords from a job description and match them against a
resume. The lexical mode is deterministic and offline; the semantic and llm
modes call the Gemini API and require an API key.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanResume, "resume", "", "Path to resume text file")
	scanCmd.Flags().StringVar(&scanJob, "job", "", "Path to job posting text file")
	scanCmd.Flags().StringVar(&scanJobURL, "job-url", "", "URL to fetch the job posting from")
	scanCmd.Flags().StringVar(&scanMode, "mode", "lexical", "Matching engine: lexical, semantic or llm")
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "Path to JSON config file")
	scanCmd.Flags().BoolVar(&scanVerbose, "verbose", false, "Print detailed progress information")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume: scanResume,
		Job:    scanJob,
		JobURL: scanJobURL,
	}
	if scanConfigPath != "" {
		fileCfg, err := config.LoadConfig(scanConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	ctx := context.Background()

	resumeText, _, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	var jobText string
	var meta *ingestion.Metadata
	if cfg.JobURL != "" {
		jobText, meta, err = ingestion.IngestFromURL(ctx, cfg.JobURL)
	} else {
		jobText, meta, err = ingestion.IngestFromFile(cfg.Job)
	}
	if err != nil {
		return fmt.Errorf("failed to load job posting: %w", err)
	}

	printer := observability.NewPrinter(os.Stderr)
	if scanVerbose {
		printer.PrintMetadata(meta)
	}

	dict := skills.NewDictionary()

	switch scanMode {
	case "lexical":
		extractor := extraction.NewExtractor(dict)
		keywords := extractor.ExtractKeywords(jobText)
		result := matching.NewLexicalMatcher(dict).Match(resumeText, keywords)
		if scanVerbose {
			printer.PrintScanResult(result)
		}
		return writeJSON(result)

	case "semantic":
		if cfg.APIKey == "" {
			return fmt.Errorf("semantic mode requires an API key (GEMINI_API_KEY or config 'api_key')")
		}
		embedder, err := semantic.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			return err
		}
		matcher := semantic.NewMatcher(embedder, dict, cfg.SemanticConfig())
		defer func() { _ = matcher.Close() }()

		result, err := matcher.Match(ctx, resumeText, jobText)
		if err != nil {
			return err
		}
		if scanVerbose {
			printer.PrintEnhancedScanResult(result)
		}
		return writeJSON(result)

	case "llm":
		if cfg.APIKey == "" {
			return fmt.Errorf("llm mode requires an API key (GEMINI_API_KEY or config 'api_key')")
		}
		matcher, err := semantic.NewLLMMatcher(ctx, cfg.APIKey, cfg.ScoringModel, dict, cfg.SemanticConfig())
		if err != nil {
			return err
		}
		defer func() { _ = matcher.Close() }()

		result, err := matcher.Match(ctx, resumeText, jobText)
		if err != nil {
			return err
		}
		if scanVerbose {
			printer.PrintEnhancedScanResult(result)
		}
		return writeJSON(result)

	default:
		return fmt.Errorf("unknown mode %q (expected lexical, semantic or llm)", scanMode)
	}
}

func writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
