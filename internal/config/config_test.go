package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ollama.URL != DefaultURL {
		t.Fatalf("unexpected url: %q", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != DefaultModel {
		t.Fatalf("unexpected model: %q", cfg.Ollama.Model)
	}
	if cfg.Ollama.Timeout != DefaultTimeout {
		t.Fatalf("unexpected timeout: %v", cfg.Ollama.Timeout)
	}
	if cfg.Triggers.Clipboard != "<clip>" {
		t.Fatalf("unexpected clipboard trigger: %q", cfg.Triggers.Clipboard)
	}
	if cfg.Triggers.Send != "~" {
		t.Fatalf("unexpected send trigger: %q", cfg.Triggers.Send)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("ollama.url", "http://ollama.internal:11434")
	viper.Set("ollama.model", "qwen2.5:7b")
	viper.Set("ollama.timeout", "30s")
	viper.Set("triggers.send", "LL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ollama.URL != "http://ollama.internal:11434" {
		t.Fatalf("unexpected url: %q", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != "qwen2.5:7b" {
		t.Fatalf("unexpected model: %q", cfg.Ollama.Model)
	}
	if cfg.Ollama.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Ollama.Timeout)
	}
	if cfg.Triggers.Send != "LL" {
		t.Fatalf("unexpected send trigger: %q", cfg.Triggers.Send)
	}
}

func TestLoadExplicitZeroTimeout(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("ollama.timeout", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ollama.Timeout != 0 {
		t.Fatalf("explicit zero timeout must stay zero, got %v", cfg.Ollama.Timeout)
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	cfg := Config{
		Ollama: OllamaConfig{URL: "ftp://example.com", Model: "m"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error")
	}

	cfg.Ollama.URL = "http://"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidateRejectsNegativeTimeout(t *testing.T) {
	cfg := Config{
		Ollama: OllamaConfig{URL: "http://localhost:11434", Timeout: -time.Second},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error")
	}
}
