package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Fatalf("unexpected default base URL: %q", cfg.APIBaseURL)
	}
	if cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: env=%q level=%q", cfg.Env, cfg.LogLevel)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("expected timeout disabled by default, got %v", cfg.HTTPTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://inventory.example.com/api")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("SESSION_FILE", "/tmp/session.json")

	cfg := Load()
	if cfg.APIBaseURL != "https://inventory.example.com/api" {
		t.Fatalf("unexpected base URL: %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.HTTPTimeout)
	}

	path, err := cfg.ResolveSessionFile()
	if err != nil {
		t.Fatalf("ResolveSessionFile failed: %v", err)
	}
	if path != "/tmp/session.json" {
		t.Fatalf("expected override honored, got %q", path)
	}
}

func TestResolveSessionFile_Default(t *testing.T) {
	cfg := &Config{}
	path, err := cfg.ResolveSessionFile()
	if err != nil {
		t.Fatalf("ResolveSessionFile failed: %v", err)
	}
	if !strings.HasSuffix(path, "session.json") {
		t.Fatalf("unexpected default session path: %q", path)
	}
}
