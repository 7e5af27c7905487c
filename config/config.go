// Package config loads the settings of the console game from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "MENTAL_RPS_"

// DefaultEnvFile is loaded when MENTAL_RPS_ENV_FILE is not set.
const DefaultEnvFile = ".env"

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// Config holds the console game configuration. Move names are not part of it;
// they come from the command line.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON    bool   `env:"LOG_JSON" envDefault:"false"`
	Banner     bool   `env:"BANNER" envDefault:"true"`
	Transcript bool   `env:"TRANSCRIPT" envDefault:"true"`
}

// Load reads the env file named by MENTAL_RPS_ENV_FILE (or .env) if it
// exists, then parses the process environment. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	path := os.Getenv(Prefix + "ENV_FILE")
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return parse(env.Options{Prefix: Prefix})
}

// Parse builds a Config from the given variables only, without the MENTAL_RPS_
// prefix applied by the caller.
func Parse(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return Config{}, fmt.Errorf("parse env: %sLOG_LEVEL must be one of %v, got %q", Prefix, logLevels, cfg.LogLevel)
	}
	return cfg, nil
}
