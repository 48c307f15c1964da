package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	RedisURL           string
	CORSAllowedOrigins []string

	TemplateDir      string
	DefaultTemplate  string
	TemplateCacheTTL time.Duration

	DocumentServiceURL    string
	DocumentUploadTimeout time.Duration
	DocumentMaxAttempts   int

	RenderRateWindow time.Duration
	RenderRateMax    int

	MaxBodyBytes    int64
	SecurityHeaders bool

	LogFormat string
	LogLevel  string

	MetricsNamespace string
	TracingEnabled   bool
	TracingEndpoint  string
	TracingSampling  float64
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		RedisURL:           k.String("REDIS_URL"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),

		TemplateDir:      valueOrDefault(k.String("TEMPLATE_DIR"), "templates"),
		DefaultTemplate:  valueOrDefault(k.String("DEFAULT_TEMPLATE"), "quote"),
		TemplateCacheTTL: parseDuration(k.String("TEMPLATE_CACHE_TTL"), "5m"),

		DocumentServiceURL:    k.String("DOCUMENT_SERVICE_URL"),
		DocumentUploadTimeout: parseDuration(k.String("DOCUMENT_UPLOAD_TIMEOUT"), "10s"),
		DocumentMaxAttempts:   intOrDefault(k.Int("DOCUMENT_MAX_ATTEMPTS"), 3),

		RenderRateWindow: parseDuration(k.String("RENDER_RATE_WINDOW"), "1m"),
		RenderRateMax:    intOrDefault(k.Int("RENDER_RATE_MAX"), 60),

		MaxBodyBytes:    int64(intOrDefault(k.Int("MAX_BODY_BYTES"), 1<<20)),
		SecurityHeaders: valueOrDefault(k.String("SECURITY_HEADERS_ENABLED"), "true") != "false",

		LogFormat: valueOrDefault(k.String("LOG_FORMAT"), "json"),
		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),

		MetricsNamespace: valueOrDefault(k.String("METRICS_NAMESPACE"), "pda"),
		TracingEnabled:   parseBool(k.String("OBS_TRACING_ENABLED")),
		TracingEndpoint:  k.String("OBS_OTLP_ENDPOINT"),
		TracingSampling:  floatOrDefault(k.Float64("OBS_TRACE_SAMPLING"), 1),
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func intOrDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func floatOrDefault(value, fallback float64) float64 {
	if value > 0 {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
