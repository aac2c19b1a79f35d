package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Fatalf("expected default body limit, got %d", cfg.MaxBodyBytes)
	}
	if !cfg.MetricsEnabled {
		t.Fatal("expected metrics enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("INVOICE_LANGUAGE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.MaxBodyBytes != 2048 || cfg.MetricsEnabled || cfg.InvoiceLanguage != "en" {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backoffice.yaml")
	if err := os.WriteFile(path, []byte("RATE_LIMIT_PER_MINUTE: 30\nAPP_ENV: staging\n"), 0o600); err != nil {
		t.Fatalf("write error: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_ENV", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RateLimitPerMinute != 30 {
		t.Fatalf("expected file value 30, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.Environment != "test" {
		t.Fatalf("expected env to win over file, got %q", cfg.Environment)
	}

	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected missing config file to fail")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Addr: ":8080", MaxBodyBytes: 4096, RateLimitPerMinute: 10}

	prod := base
	prod.Environment = "production"
	if err := prod.Validate(); err == nil {
		t.Fatal("expected production without JWT_SECRET to fail")
	}
	prod.JWTSecret = "secret"
	prod.APIKeyHash = "plain"
	if err := prod.Validate(); err == nil {
		t.Fatal("expected non-bcrypt API_KEY_HASH to fail")
	}

	small := base
	small.MaxBodyBytes = 10
	if err := small.Validate(); err == nil {
		t.Fatal("expected small body limit to fail")
	}

	lang := base
	lang.InvoiceLanguage = "de"
	if err := lang.Validate(); err != nil {
		t.Fatalf("expected german to validate, got %v", err)
	}
	lang.InvoiceLanguage = "fr"
	if err := lang.Validate(); err == nil {
		t.Fatal("expected unsupported language to fail")
	}
}
