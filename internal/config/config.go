// Package config reads goprior CLI defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/reoring/goprior/model"
)

// Config holds environment defaults. Command-line flags override them.
type Config struct {
	Lang        string  `env:"GOPRIOR_LANG" envDefault:"en"`
	Format      string  `env:"GOPRIOR_FORMAT" envDefault:"auto"`
	Verbose     bool    `env:"GOPRIOR_VERBOSE" envDefault:"false"`
	Credibility float64 `env:"GOPRIOR_CREDIBILITY" envDefault:"90"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env parsing cannot.
func (c Config) Validate() error {
	switch c.Lang {
	case "en", "ja":
	default:
		return fmt.Errorf("GOPRIOR_LANG: unsupported language %q (want en or ja)", c.Lang)
	}
	if _, err := model.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("GOPRIOR_FORMAT: %w", err)
	}
	if c.Credibility <= 0 || c.Credibility >= 100 {
		return fmt.Errorf("GOPRIOR_CREDIBILITY: %v is outside (0, 100)", c.Credibility)
	}
	return nil
}

// ModelFormat returns Format as a model.Format. Validate has already vetted it.
func (c Config) ModelFormat() model.Format {
	f, _ := model.ParseFormat(c.Format)
	return f
}
