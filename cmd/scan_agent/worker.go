package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/config"
	"github.com/jonathan/resume-scanner/internal/semantic"
	"github.com/jonathan/resume-scanner/internal/session"
	"github.com/jonathan/resume-scanner/internal/skills"
)

var workerConfigPath string

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the JSON-lines worker protocol over stdin/stdout",
	Long: `Read newline-delimited JSON requests from stdin and write responses to
stdout. An {"type":"init"} request loads the embedding backend and emits
init:progress messages followed by init:ready; {"type":"match"} requests emit
match:result. Failures emit error messages without terminating the loop.`,
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().StringVar(&workerConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(workerCmd)
}

// maxRequestLine bounds a single request line. Resume and job description
// are truncated downstream anyway; this guards the scanner buffer.
const maxRequestLine = 1 << 20

func runWorker(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if workerConfigPath != "" {
		fileCfg, err := config.LoadConfig(workerConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("worker mode requires an API key (GEMINI_API_KEY or config 'api_key')")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Responses interleave from the load goroutine and the request loop;
	// one mutex keeps stdout lines whole.
	var outMu sync.Mutex
	encoder := json.NewEncoder(os.Stdout)
	emit := func(resp session.Response) {
		outMu.Lock()
		defer outMu.Unlock()
		if err := encoder.Encode(resp); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode response: %v\n", err)
		}
	}

	dict := skills.NewDictionary()
	load := func(ctx context.Context, progress func(pct int, status string)) (session.Backend, error) {
		progress(10, "connecting to embedding backend")
		embedder, err := semantic.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			return nil, err
		}
		progress(100, "matcher ready")
		return semantic.NewMatcher(embedder, dict, cfg.SemanticConfig()), nil
	}

	sess := session.New(load, func(pct int, status string) {
		emit(session.ProgressResponse{Progress: pct, Status: status})
	})
	defer func() { _ = sess.Shutdown() }()

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestLine)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		req, err := session.ParseRequest(line)
		if err != nil {
			emit(session.ErrorResponse{Error: err.Error()})
			continue
		}
		sess.HandleRequest(ctx, req, emit)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read requests: %w", err)
	}
	return nil
}
