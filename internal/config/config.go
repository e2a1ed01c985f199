// Package config loads the tools' settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment settings shared by the tools. Command-line
// flags take precedence over these values.
type Config struct {
	LogLevel slog.Level `env:"JUSTIN_LOG_LEVEL" envDefault:"INFO"`
	LogJSON  bool       `env:"JUSTIN_LOG_JSON"`
	NoColor  string     `env:"NO_COLOR"`

	// PartsWidth is the minimum number of digits in part indices.
	PartsWidth int  `env:"JUSTIN_PARTS_WIDTH" envDefault:"0"`
	AssumeYes  bool `env:"JUSTIN_ASSUME_YES"`
}

// Color reports whether coloured output is allowed. Any non-empty NO_COLOR
// disables it.
func (c Config) Color() bool { return c.NoColor == "" }

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.PartsWidth < 0 {
		return Config{}, fmt.Errorf("parse env: JUSTIN_PARTS_WIDTH must not be negative, got %d", cfg.PartsWidth)
	}
	return cfg, nil
}
