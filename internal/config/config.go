package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"

	"fitlife-assistant/internal/repository"
)

type Config struct {
	// Storage
	StateTable      string `env:"STATE_TABLE"`
	MaxHistoryItems int    `env:"MAX_HISTORY_ITEMS" envDefault:"50"`

	// Secrets
	ParamPrefix   string        `env:"PARAM_PREFIX"`
	ParamCacheTTL time.Duration `env:"PARAM_CACHE_TTL" envDefault:"5m"`

	// LLM settings
	LLMEnabled           bool          `env:"LLM_ENABLED" envDefault:"true"`
	OpenAIAPIKey         string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL        string        `env:"OPENAI_BASE_URL"`
	OpenAIModel          string        `env:"OPENAI_MODEL"`
	LLMTimeout           time.Duration `env:"LLM_TIMEOUT" envDefault:"10s"`
	LLMRequestsPerMinute int           `env:"LLM_REQUESTS_PER_MINUTE" envDefault:"60"`

	// Chat
	MaxMessageLength int           `env:"MAX_MESSAGE_LENGTH" envDefault:"2000"`
	NavigationDelay  time.Duration `env:"NAVIGATION_DELAY" envDefault:"2s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if cfg.MaxMessageLength <= 0 {
		return nil, fmt.Errorf("config: MAX_MESSAGE_LENGTH must be positive, got %d", cfg.MaxMessageLength)
	}
	if cfg.MaxHistoryItems <= 0 || cfg.MaxHistoryItems > repository.MaxHistoryLimit {
		return nil, fmt.Errorf("config: MAX_HISTORY_ITEMS must be between 1 and %d, got %d", repository.MaxHistoryLimit, cfg.MaxHistoryItems)
	}
	if cfg.NavigationDelay < 0 {
		return nil, fmt.Errorf("config: NAVIGATION_DELAY must not be negative")
	}
	return cfg, nil
}

// ModelConfigured reports whether a key source for the language model exists.
func (c *Config) ModelConfigured() bool {
	return c.LLMEnabled && (c.OpenAIAPIKey != "" || c.ParamPrefix != "")
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
