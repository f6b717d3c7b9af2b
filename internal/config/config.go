package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Directories
	InputDir  string
	OutputDir string

	// Azure OpenAI
	AzureEndpoint   string
	AzureAPIKey     string
	AzureDeployment string
	AzureAPIVersion string

	// Worker pool
	Workers         int
	DocumentTimeout time.Duration

	// Enrichment
	MaxRetries        int
	BackoffBase       time.Duration
	RequestsPerSecond float64
	MaxTopicTokens    int
	MinConcepts       int
	MinMCQs           int
	MinQA             int

	// PDF
	PDFFallbackPdftotext bool

	// Preview server
	ServeAddr string
}

func Load() Config {
	cfg := Config{
		InputDir:  envOr("LEARNING_INPUT_DIR", "pdfs"),
		OutputDir: envOr("LEARNING_OUTPUT_DIR", "site"),

		AzureEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureAPIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureDeployment: envOr("AZURE_OPENAI_DEPLOYMENT", "gpt-4o"),
		AzureAPIVersion: envOr("OPENAI_API_VERSION", "2024-02-15-preview"),

		Workers:         envInt("WORKER_COUNT", 3),
		DocumentTimeout: envDuration("DOCUMENT_TIMEOUT", 10*time.Minute),

		MaxRetries:        envInt("ENRICH_MAX_RETRIES", 3),
		BackoffBase:       envDuration("ENRICH_BACKOFF_BASE", time.Second),
		RequestsPerSecond: envFloat("ENRICH_RPS", 1),
		MaxTopicTokens:    envInt("MAX_TOPIC_TOKENS", 1500),
		MinConcepts:       envInt("MIN_CONCEPTS", 1),
		MinMCQs:           envInt("MIN_MCQS", 3),
		MinQA:             envInt("MIN_SUBJECTIVE", 3),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		ServeAddr: envOr("SERVE_ADDR", ":8090"),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 3
	}
	if cfg.DocumentTimeout <= 0 {
		cfg.DocumentTimeout = 10 * time.Minute
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if cfg.MaxTopicTokens <= 0 {
		cfg.MaxTopicTokens = 1500
	}
	if cfg.MinConcepts <= 0 {
		cfg.MinConcepts = 1
	}
	if cfg.MinMCQs <= 0 {
		cfg.MinMCQs = 3
	}
	if cfg.MinQA <= 0 {
		cfg.MinQA = 3
	}

	return cfg
}

func (c Config) Validate() error {
	if c.AzureEndpoint == "" {
		return fmt.Errorf("AZURE_OPENAI_ENDPOINT is required")
	}
	if c.AzureAPIKey == "" {
		return fmt.Errorf("AZURE_OPENAI_API_KEY is required")
	}
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
