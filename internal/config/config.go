// Package config loads fontreg settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings shared by every fontreg command.
type Config struct {
	// Dirs are registered before any command runs.
	Dirs []string `env:"FONTREG_DIRS" envSeparator:","`
	// Recurse controls how Dirs are scanned.
	Recurse bool `env:"FONTREG_RECURSE" envDefault:"true"`
	// System also preloads the platform font directories.
	System   bool          `env:"FONTREG_SYSTEM" envDefault:"false"`
	LogLevel zapcore.Level `env:"FONTREG_LOG_LEVEL" envDefault:"warn"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads Config from the given variables instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
