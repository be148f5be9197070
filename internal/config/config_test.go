package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IMGSCOUT_THESAURUS_API_KEY", "env-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Scraper.CategoryBaseURL != "https://commons.wikimedia.org/wiki/Category:" {
		t.Fatalf("unexpected category base url %q", cfg.Scraper.CategoryBaseURL)
	}
	if cfg.Thesaurus.BaseURL != "https://words.bighugelabs.com/api/2" {
		t.Fatalf("unexpected thesaurus base url %q", cfg.Thesaurus.BaseURL)
	}
	if cfg.Thesaurus.APIKey != "env-key" {
		t.Fatalf("expected api key from environment, got %q", cfg.Thesaurus.APIKey)
	}
	if got := cfg.Timeout(); got != 15*time.Second {
		t.Fatalf("expected timeout 15s, got %v", got)
	}
	if !cfg.Logging.Development {
		t.Fatal("expected development logging by default")
	}
}

func TestLoadWithFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
server:
  port: 9090
auth:
  enabled: true
  api_key: secret
scraper:
  category_base_url: "https://example.org/wiki/Category:"
  user_agent: imgscout-test
thesaurus:
  base_url: https://thesaurus.example.org/api/2
  api_key: file-key
http:
  timeout_seconds: 45
logging:
  development: false
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if !cfg.Auth.Enabled || cfg.Auth.APIKey != "secret" {
		t.Fatalf("expected auth enabled with secret key")
	}
	if cfg.Scraper.CategoryBaseURL != "https://example.org/wiki/Category:" {
		t.Fatalf("expected scraper override to apply, got %q", cfg.Scraper.CategoryBaseURL)
	}
	if cfg.Thesaurus.APIKey != "file-key" {
		t.Fatalf("expected thesaurus key from file, got %q", cfg.Thesaurus.APIKey)
	}
	if got := cfg.Timeout(); got != 45*time.Second {
		t.Fatalf("expected timeout 45s, got %v", got)
	}
	if cfg.Logging.Development {
		t.Fatal("expected production logging")
	}
}

func TestLoadMissingThesaurusKey(t *testing.T) {
	t.Setenv("IMGSCOUT_THESAURUS_API_KEY", "")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "thesaurus.api_key") {
		t.Fatalf("expected thesaurus.api_key validation error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	base := Config{
		Server:    ServerConfig{Port: 8080},
		Scraper:   ScraperConfig{CategoryBaseURL: "https://example.org/wiki/Category:"},
		Thesaurus: ThesaurusConfig{BaseURL: "https://thesaurus.example.org", APIKey: "k"},
		HTTP:      HTTPConfig{TimeoutSeconds: 15},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected base config to validate, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"empty category base", func(c *Config) { c.Scraper.CategoryBaseURL = "" }},
		{"empty thesaurus base", func(c *Config) { c.Thesaurus.BaseURL = "" }},
		{"empty thesaurus key", func(c *Config) { c.Thesaurus.APIKey = "" }},
		{"zero timeout", func(c *Config) { c.HTTP.TimeoutSeconds = 0 }},
		{"auth enabled without key", func(c *Config) { c.Auth = AuthConfig{Enabled: true} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
