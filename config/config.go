// SPDX-License-Identifier: MIT

// Package config loads settle's runtime settings from the environment.
// Command-line flags override these values in cmd/settle.
package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

// Config holds every environment-tunable setting.
type Config struct {
	// Epsilon is the tolerance used for zero filtering and the zero-sum check.
	Epsilon float64 `env:"SETTLE_EPSILON" envDefault:"1e-10"`
	// ScaledTolerance scales the zero-sum tolerance by the total balance magnitude.
	ScaledTolerance bool `env:"SETTLE_SCALED_TOLERANCE" envDefault:"false"`
	// Precision is the number of decimals printed per amount; negative prints the shortest form.
	Precision int `env:"SETTLE_PRECISION" envDefault:"2"`
	// LogLevel is the zerolog level name used when -v is not given.
	LogLevel string `env:"SETTLE_LOG_LEVEL" envDefault:"warn"`
	// LogFormat is "console" or "json".
	LogFormat string `env:"SETTLE_LOG_FORMAT" envDefault:"console"`
	// SkipInvalid reports malformed input lines and keeps going instead of aborting.
	SkipInvalid bool `env:"SETTLE_SKIP_INVALID" envDefault:"false"`
}

// Load parses Config from the process environment.
func Load() (*Config, error) {
	return LoadWith(env.Options{})
}

// LoadWith parses Config with explicit env options, e.g. a fixed
// Environment map in tests.
func LoadWith(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.Epsilon <= 0 {
		return nil, fmt.Errorf("config.Load: SETTLE_EPSILON must be positive, got %g", cfg.Epsilon)
	}

	return &cfg, nil
}
