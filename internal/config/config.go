// Package config provides configuration for the support assistant.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ModeMock selects the mock LLM gateway instead of the real provider.
const ModeMock = "MOCK"

// Config holds the backend configuration.
type Config struct {
	// Server
	Port       int    `env:"PORT" envDefault:"3001"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	// Rate limiting, requests per minute per client IP.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:support.db?cache=shared&mode=rwc&_foreign_keys=on"`

	// Documentation set. Empty means the embedded default set.
	DocsPath string `env:"DOCS_PATH"`

	// LLM provider
	LLMBaseURL string        `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai"`
	LLMAPIKey  string        `env:"GROQ_API_KEY"`
	LLMModel   string        `env:"LLM_MODEL" envDefault:"llama-3.1-8b-instant"`
	LLMTimeout time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`

	// Mode selects the gateway implementation; SUPPORT_MODE=MOCK runs
	// without a provider.
	Mode string `env:"SUPPORT_MODE"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
