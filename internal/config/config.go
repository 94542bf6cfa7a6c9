// Package config loads application configuration from PASSKEEP_ environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration. Every field has a working default, so
// running the binary with an empty environment keeps the vault files in the
// current directory.
type Config struct {
	DBPath   string `env:"DB_PATH" envDefault:"passkeep.db"`
	KeyPath  string `env:"KEY_PATH" envDefault:"passkeep.key"`
	LogLevel int    `env:"LOG_LEVEL" envDefault:"0"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "PASSKEEP_"}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
