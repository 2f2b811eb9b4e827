package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config is the CLI configuration, loaded from a TOML file with environment
// variable fallback for the API key.
type Config struct {
	Provider    string  `toml:"provider" validate:"required,oneof=gemini claude openai"`
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	Endpoint    string  `toml:"endpoint"` // openai provider only
	Timeout     string  `toml:"timeout" validate:"omitempty"`
	Temperature float64 `toml:"temperature" validate:"gte=0,lte=2"`
}

// apiKeyEnvVars maps provider names to the environment variable consulted
// when the config file carries no key.
var apiKeyEnvVars = map[string]string{
	"gemini": "GEMINI_API_KEY",
	"claude": "ANTHROPIC_API_KEY",
	"openai": "OPENAI_API_KEY",
}

func defaultConfig() Config {
	return Config{
		Provider:    "openai",
		Timeout:     "60s",
		Temperature: 0.1,
	}
}

// loadConfig reads the TOML file at path if it exists, applies environment
// fallback for the API key, and validates the result. A missing file is not
// an error; defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file; rely on defaults and environment.
	default:
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if cfg.APIKey == "" {
		if envVar, ok := apiKeyEnvVars[cfg.Provider]; ok {
			cfg.APIKey = os.Getenv(envVar)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// timeoutDuration parses the configured timeout, falling back to 60s.
func (c Config) timeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
