package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("port: %q", cfg.Port)
	}
	if cfg.OllamaURL != "http://localhost:11434" {
		t.Errorf("ollama url: %q", cfg.OllamaURL)
	}
	if cfg.OllamaModel != "gemma3:4b" {
		t.Errorf("model: %q", cfg.OllamaModel)
	}
	if cfg.WorkerCount != 1 {
		t.Errorf("worker count: %d", cfg.WorkerCount)
	}
	if cfg.OllamaTimeout != 300*time.Second {
		t.Errorf("timeout: %v", cfg.OllamaTimeout)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("pdftotext fallback should default on")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("OLLAMA_TIMEOUT", "30s")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("port: %q", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("worker count: %d", cfg.WorkerCount)
	}
	if cfg.OllamaTimeout != 30*time.Second {
		t.Errorf("timeout: %v", cfg.OllamaTimeout)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected fallback disabled")
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not a number")
	t.Setenv("OLLAMA_TIMEOUT", "soon")

	cfg := Load()
	if cfg.WorkerCount != 1 {
		t.Errorf("worker count: %d", cfg.WorkerCount)
	}
	if cfg.OllamaTimeout != 300*time.Second {
		t.Errorf("timeout: %v", cfg.OllamaTimeout)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing api key")
	}
	cfg.APIKey = "secret"
	cfg.OllamaURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty ollama url")
	}
	cfg.OllamaURL = "http://localhost:11434"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
