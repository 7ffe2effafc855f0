package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Seed drives every roll of a session. Zero picks a fresh seed.
	Seed       int64  `env:"SLAYER_SEED" envDefault:"0"`
	PlayerName string `env:"SLAYER_PLAYER"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LOG_FILE" envDefault:"slayer.log"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// BardEnabled reports whether an epitaph writer can be built.
func (c *Config) BardEnabled() bool {
	return c.GeminiAPIKey != ""
}
