// Package config reads newstr-gen defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the generator defaults. Command-line flags override it.
type Config struct {
	// File is the declaration file, relative to Dir.
	File string `env:"NEWSTR_FILE" envDefault:"newstr.yaml"`
	// Dir is the package directory to analyse and generate into.
	Dir string `env:"NEWSTR_DIR" envDefault:"."`
	// Runtime overrides the runtime import path of declaration files.
	Runtime string `env:"NEWSTR_RUNTIME"`
	// Debug enables debug logging.
	Debug bool `env:"NEWSTR_DEBUG"`
	// NoColor follows the no-color.org convention: any value disables color.
	NoColor string `env:"NO_COLOR"`
}

// Load reads the configuration. Variables from dotenv, when that file
// exists, fill in what the environment does not set.
func Load(dotenv string) (Config, error) {
	if dotenv != "" {
		err := godotenv.Load(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", dotenv, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// ColorDisabled reports whether colored output was turned off.
func (c Config) ColorDisabled() bool {
	return c.NoColor != ""
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
