package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Generation backend
	OllamaURL     string
	OllamaModel   string
	OllamaTimeout time.Duration

	// Worker pool. One worker keeps documents, units and topics strictly
	// sequential with a single outstanding generation call; a local model
	// serves one request at a time anyway.
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Output locations
	ContentDir   string
	ErrorDir     string
	CourseMapJS  string
	CourseMapOut string

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("COURSEGEN_API_KEY"),

		OllamaURL:     envOr("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:   envOr("OLLAMA_MODEL", "gemma3:4b"),
		OllamaTimeout: envDuration("OLLAMA_TIMEOUT", 300*time.Second),

		WorkerCount:  envInt("WORKER_COUNT", 1),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 50),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		ContentDir:   envOr("CONTENT_DIR", "generated_content"),
		ErrorDir:     envOr("ERROR_DIR", "generation_errors"),
		CourseMapJS:  envOr("COURSE_MAP_JS", "courseDataMap.js"),
		CourseMapOut: envOr("COURSE_MAP_JSON", "courseDataMap.json"),

		JobTTL: envDuration("JOB_TTL", 24*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.OllamaTimeout <= 0 {
		cfg.OllamaTimeout = 300 * time.Second
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 24 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("COURSEGEN_API_KEY is required")
	}
	if c.OllamaURL == "" {
		return fmt.Errorf("OLLAMA_URL must not be empty")
	}
	if c.OllamaModel == "" {
		return fmt.Errorf("OLLAMA_MODEL must not be empty")
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

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
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
