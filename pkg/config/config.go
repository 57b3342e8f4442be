// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Providers for the generation service.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Defaults applied when the environment leaves a setting unset.
const (
	DefaultModel   = "qwen-plus-latest"
	DefaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	DefaultDelay   = time.Second
	DefaultTimeout = 60 * time.Second
)

// Config holds the settings for an extraction run.
type Config struct {
	Provider string // openai or ollama
	APIKey   string
	Model    string
	BaseURL  string

	Delay   time.Duration // pause between generation calls
	Timeout time.Duration // per-call HTTP timeout

	DatabaseURL string
}

// Load reads settings from the environment. A .env file in the working
// directory is applied first when present; a missing file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Provider:    envOr("LLM_PROVIDER", ProviderOpenAI),
		APIKey:      os.Getenv("LLM_API_KEY"),
		Model:       envOr("LLM_MODEL", DefaultModel),
		BaseURL:     envOr("LLM_BASE_URL", DefaultBaseURL),
		Delay:       DefaultDelay,
		Timeout:     DefaultTimeout,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var err error
	if cfg.Delay, err = envDuration("PARSE_DELAY", DefaultDelay); err != nil {
		return Config{}, err
	}
	if cfg.Timeout, err = envDuration("LLM_TIMEOUT", DefaultTimeout); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks provider-specific requirements.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for the %s provider", ProviderOpenAI)
		}
	case ProviderOllama:
		// Local service, no key needed.
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", c.Provider, ProviderOpenAI, ProviderOllama)
	}
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration reads a duration setting. Bare numbers are taken as seconds,
// matching the historical format; Go duration strings also work.
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}
