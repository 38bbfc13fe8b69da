// Package config holds the tuning knobs of the path engine.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the engine configuration. Zero values are invalid; start
// from Default and override.
type Config struct {
	// LogLevel is the minimum severity emitted by the engine logger.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// EnumerationLimit bounds simple-path enumeration. Enumeration is
	// worst-case exponential, so this is the engine's only cost
	// control.
	EnumerationLimit int `yaml:"enumeration_limit" validate:"gt=0"`

	// DefaultK is how many ranked paths a ranked-routes query returns.
	DefaultK int `yaml:"default_k" validate:"gt=0"`

	// MaxAlternatives caps the alternative routes attached to an
	// optimal-route result.
	MaxAlternatives int `yaml:"max_alternatives" validate:"gte=0"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		LogLevel:         "info",
		EnumerationLimit: 10,
		DefaultK:         3,
		MaxAlternatives:  2,
	}
}

// Load reads a YAML config file over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
