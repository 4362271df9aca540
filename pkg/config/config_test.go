package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Parser.DefaultLanguage != "en" {
		t.Errorf("default language = %q, want en", cfg.Parser.DefaultLanguage)
	}
	if cfg.Parser.DefaultCurrency != "VND" {
		t.Errorf("default currency = %q, want VND", cfg.Parser.DefaultCurrency)
	}
	if !cfg.Observability.MetricsEnabled {
		t.Error("metrics should default to enabled")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("PARSER_DEFAULT_LANGUAGE", "vi")
	t.Setenv("PARSER_DEFAULT_CURRENCY", "USD")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Parser.DefaultLanguage != "vi" {
		t.Errorf("language = %q, want vi", cfg.Parser.DefaultLanguage)
	}
	if cfg.Parser.DefaultCurrency != "USD" {
		t.Errorf("currency = %q, want USD", cfg.Parser.DefaultCurrency)
	}
	if cfg.Observability.MetricsEnabled {
		t.Error("metrics should be disabled")
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid SERVER_PORT")
	}
}

func TestLoad_InvalidLanguage(t *testing.T) {
	t.Setenv("PARSER_DEFAULT_LANGUAGE", "fr")
	if _, err := Load(); err == nil {
		t.Error("expected error for unsupported language")
	}
}
