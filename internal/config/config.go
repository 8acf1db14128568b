// Package config loads runtime settings from PHASEPLAN_* environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const namespace = "PHASEPLAN"

// Env holds every runtime setting. DB defaults to a per-user data file;
// Student pins the default student for commands that take no explicit id.
type Env struct {
	DB          string `envconfig:"DB" default:""`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`
	LogUseCases bool   `envconfig:"LOG_USE_CASES" default:"false"`
	Student     string `envconfig:"STUDENT" default:""`
}

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	return &env, nil
}

// DBPath resolves the database location: the configured path, or
// ~/.phaseplan/phaseplan.db.
func (e *Env) DBPath() (string, error) {
	if e.DB != "" {
		return e.DB, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".phaseplan", "phaseplan.db"), nil
}

// SlogLevel parses LogLevel, falling back to warn on anything unrecognized.
func (e *Env) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
