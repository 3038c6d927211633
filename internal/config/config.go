// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-scanner/internal/semantic"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume text file
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	ScoringModel   string `json:"scoring_model,omitempty"`   // Generative model for LLM-scored matching
	Addr           string `json:"addr,omitempty"`            // HTTP listen address for serve mode
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed progress information

	// Threshold overrides; zero means use the built-in default.
	FoundThreshold   float64 `json:"found_threshold,omitempty"`
	PartialThreshold float64 `json:"partial_threshold,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has consistent values. Required
// fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.FoundThreshold < 0 || c.FoundThreshold > 1 {
		return fmt.Errorf("config error: 'found_threshold' must be in [0, 1]")
	}
	if c.PartialThreshold < 0 || c.PartialThreshold > 1 {
		return fmt.Errorf("config error: 'partial_threshold' must be in [0, 1]")
	}
	if c.FoundThreshold > 0 && c.PartialThreshold > c.FoundThreshold {
		return fmt.Errorf("config error: 'partial_threshold' must not exceed 'found_threshold'")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.ScoringModel == "" {
		result.ScoringModel = defaults.ScoringModel
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.FoundThreshold == 0 {
		result.FoundThreshold = defaults.FoundThreshold
	}
	if result.PartialThreshold == 0 {
		result.PartialThreshold = defaults.PartialThreshold
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags win.

	return result
}

// SemanticConfig maps the threshold overrides onto the matcher defaults.
func (c *Config) SemanticConfig() semantic.Config {
	cfg := semantic.DefaultConfig()
	if c.FoundThreshold > 0 {
		cfg.FoundThreshold = c.FoundThreshold
	}
	if c.PartialThreshold > 0 {
		cfg.PartialThreshold = c.PartialThreshold
	}
	return cfg
}
