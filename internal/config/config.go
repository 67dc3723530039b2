package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Completion provider identifiers accepted by COMPLETION_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the environment driven configuration for the storefront service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"autopecas-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"3000"`
	MetricsPort     int           `env:"METRICS_PORT" envDefault:"9091"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Completion upstream
	CompletionProvider string        `env:"COMPLETION_PROVIDER" envDefault:"gemini"`
	CompletionTimeout  time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"15s"`
	GeminiAPIKey       string        `env:"GEMINI_API_KEY"`
	GeminiAPIURL       string        `env:"GEMINI_API_URL" envDefault:"https://generativelanguage.googleapis.com/v1"`
	GeminiModel        string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `env:"OPENAI_BASE_URL"`
	OpenAIModel        string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Conversation sessions
	HistoryLimit         int           `env:"HISTORY_LIMIT" envDefault:"20"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`

	// Observability
	EnableTracing bool   `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
}

// Load parses environment variables into Config and validates the
// completion provider credentials so the service fails fast at startup
// instead of on the first chat request.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.CompletionProvider = strings.ToLower(strings.TrimSpace(cfg.CompletionProvider))
	switch cfg.CompletionProvider {
	case ProviderGemini:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			return nil, errors.New("GEMINI_API_KEY is required when COMPLETION_PROVIDER is gemini; create a .env from .env.example and add your key")
		}
	case ProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			return nil, errors.New("OPENAI_API_KEY is required when COMPLETION_PROVIDER is openai")
		}
	default:
		return nil, fmt.Errorf("unknown COMPLETION_PROVIDER %q (expected gemini or openai)", cfg.CompletionProvider)
	}

	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("HISTORY_LIMIT must be positive, got %d", cfg.HistoryLimit)
	}
	if cfg.CompletionTimeout <= 0 {
		return nil, fmt.Errorf("COMPLETION_TIMEOUT must be positive, got %s", cfg.CompletionTimeout)
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// MetricsAddr returns the metrics listener address.
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}
