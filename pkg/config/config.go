// Package config loads application configuration from the environment.
// A .env file, when present, is loaded by main before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	Parser        ParserConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host               string
	Port               int
	RateLimitPerSecond int
	RateLimitBurst     int
}

// ParserConfig carries the caller-context defaults applied when a request
// omits them.
type ParserConfig struct {
	DefaultLanguage string // "en" or "vi"
	DefaultCurrency string // "USD" or "VND"
}

// ObservabilityConfig toggles the metrics endpoint.
type ObservabilityConfig struct {
	MetricsEnabled bool
}

// ProfilingConfig toggles the pprof server.
type ProfilingConfig struct {
	Enabled bool
	Port    int
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			RateLimitPerSecond: 0,
			RateLimitBurst:     0,
		},
		Parser: ParserConfig{
			DefaultLanguage: getEnv("PARSER_DEFAULT_LANGUAGE", "en"),
			DefaultCurrency: getEnv("PARSER_DEFAULT_CURRENCY", "VND"),
		},
		Observability: ObservabilityConfig{
			MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		},
		Profiling: ProfilingConfig{
			Enabled: getEnvBool("PPROF_ENABLED", false),
		},
	}

	var err error
	if cfg.Server.Port, err = getEnvInt("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerSecond, err = getEnvInt("RATE_LIMIT_PER_SECOND", 50); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 100); err != nil {
		return nil, err
	}
	if cfg.Profiling.Port, err = getEnvInt("PPROF_PORT", 6060); err != nil {
		return nil, err
	}

	switch cfg.Parser.DefaultLanguage {
	case "en", "vi":
	default:
		return nil, fmt.Errorf("invalid PARSER_DEFAULT_LANGUAGE %q", cfg.Parser.DefaultLanguage)
	}
	switch cfg.Parser.DefaultCurrency {
	case "USD", "VND":
	default:
		return nil, fmt.Errorf("invalid PARSER_DEFAULT_CURRENCY %q", cfg.Parser.DefaultCurrency)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
