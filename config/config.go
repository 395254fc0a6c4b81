// Package config loads environment-backed defaults for the command line.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings that can come from the environment. Flags
// parsed in main override anything set here.
type Config struct {
	ScriptsDir string `env:"STYGIAN_SCRIPTS_DIR"`
	SaveFile   string `env:"STYGIAN_SAVE_FILE"`
	EngineFile string `env:"STYGIAN_ENGINE_FILE" envDefault:"Engine.lua"`
	LogLevel   string `env:"STYGIAN_LOG_LEVEL" envDefault:"info"`
}

// FromEnv parses the environment into a Config.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
