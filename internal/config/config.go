package config

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/internal/logging"
	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every environment variable name.
const Prefix = "GRIDWALK_"

// Config holds process-wide settings read from the environment.
// Command-line flags take precedence; see cmd/gridwalk.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Addr      string `env:"ADDR" envDefault:":8080"`
	Style     string `env:"STYLE" envDefault:"object"`
	Fixtures  string `env:"FIXTURES"`
	Metrics   bool   `env:"METRICS" envDefault:"true"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is like Load but reads from the given map instead of the process
// environment when environ is non-nil.
func LoadFrom(environ map[string]string) (Config, error) {
	cfg, err := ParseFrom(environ)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads the environment without validating enumerated fields, so that
// callers can apply overrides before calling Validate.
func Parse() (Config, error) {
	return ParseFrom(nil)
}

// ParseFrom is like Parse but reads from environ when it is non-nil.
func ParseFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, err := gridwalk.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%sSTYLE: %w", Prefix, err)
	}
	switch logging.Format(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%sLOG_FORMAT: unknown format %q", Prefix, c.LogFormat)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

// WalkStyle returns the parsed style. Validate guarantees it is known.
func (c Config) WalkStyle() gridwalk.Style {
	s, _ := gridwalk.ParseStyle(c.Style)
	return s
}
