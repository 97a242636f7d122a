// Package config loads runtime settings from MINDDUEL_* environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration.
type Config struct {
	// ServerURL is the quickplay service base URL.
	ServerURL string `env:"SERVER_URL" envDefault:"https://mindduel.app"`

	// Categories restricts play to the named question categories.
	Categories []string `env:"CATEGORIES" envSeparator:","`

	// AIQuestions asks the service for generated questions, falling back
	// to the standard pool on failure.
	AIQuestions bool `env:"AI_QUESTIONS" envDefault:"true"`

	// DBPath overrides the local database location.
	DBPath string `env:"DB"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFile receives structured logs. Empty disables file logging.
	LogFile string `env:"LOG_FILE"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "MINDDUEL_"})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
