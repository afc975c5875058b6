// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/faq/internal/accordion"
	"github.com/idilsaglam/faq/internal/ui"
)

// Config holds the settings shared by every subcommand. Root flags
// override values read from the environment.
type Config struct {
	ContentPath string `env:"FAQ_CONTENT"`
	Heading     string `env:"FAQ_HEADING" envDefault:"Frequently Asked Questions"`
	Theme       string `env:"FAQ_THEME" envDefault:"classic"`
	LogLevel    string `env:"FAQ_LOG_LEVEL" envDefault:"warn"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Heading:  accordion.DefaultHeading,
		Theme:    "classic",
		LogLevel: "warn",
	}
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Heading) == "" {
		return fmt.Errorf("heading must not be empty")
	}
	if !slices.Contains(ui.ThemeNames(), strings.ToLower(c.Theme)) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
