// SPDX-License-Identifier: MIT

// Package config loads the lvla command configuration from YAML with
// environment overrides and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted after the file is read.
const (
	EnvLogLevel      = "LVLA_LOG_LEVEL"
	EnvLogConsole    = "LVLA_LOG_CONSOLE"
	EnvPivoting      = "LVLA_PIVOTING"
	EnvRankTolerance = "LVLA_RANK_TOLERANCE"
	EnvMetricsFile   = "LVLA_METRICS_TEXTFILE"
)

// ErrInvalid reports a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete lvla configuration.
type Config struct {
	Log     LogSection     `yaml:"log"`
	Linalg  LinalgSection  `yaml:"linalg"`
	Metrics MetricsSection `yaml:"metrics"`
}

// LogSection controls the process logger.
type LogSection struct {
	Level   string `yaml:"level"`   // zerolog level name
	Console *bool  `yaml:"console"` // nil: console output only when stderr is a terminal
}

// LinalgSection holds the defaults passed to package linalg.
type LinalgSection struct {
	Pivoting      string  `yaml:"pivoting"`       // "partial" or "adjacent"
	RankTolerance float64 `yaml:"rank_tolerance"` // 0 means linalg.DefaultRankTolerance
}

// MetricsSection configures the Prometheus textfile output.
type MetricsSection struct {
	Textfile string `yaml:"textfile"` // empty disables metrics output
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and defaults, then validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides copies LVLA_* variables over file values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogConsole); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvLogConsole, v, ErrInvalid)
		}
		cfg.Log.Console = &b
	}
	if v := os.Getenv(EnvPivoting); v != "" {
		cfg.Linalg.Pivoting = v
	}
	if v := os.Getenv(EnvRankTolerance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvRankTolerance, v, ErrInvalid)
		}
		cfg.Linalg.RankTolerance = f
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		cfg.Metrics.Textfile = v
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = zerolog.InfoLevel.String()
	}
	if c.Linalg.Pivoting == "" {
		c.Linalg.Pivoting = linalg.PivotPartial.String()
	}
	if c.Linalg.RankTolerance == 0 {
		c.Linalg.RankTolerance = linalg.DefaultRankTolerance
	}
}

// Validate checks every field that has a restricted domain.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	if _, err := linalg.ParsePivoting(c.Linalg.Pivoting); err != nil {
		return fmt.Errorf("linalg.pivoting: %w: %w", ErrInvalid, err)
	}
	if c.Linalg.RankTolerance < 0 {
		return fmt.Errorf("linalg.rank_tolerance %g: %w", c.Linalg.RankTolerance, ErrInvalid)
	}

	return nil
}

// LogLevel returns the parsed log level, InfoLevel if it does not parse.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// LinalgOptions converts the linalg section into options, routing debug events to logger.
func (c *Config) LinalgOptions(logger zerolog.Logger) []linalg.Option {
	p, err := linalg.ParsePivoting(c.Linalg.Pivoting)
	if err != nil {
		p = linalg.PivotPartial
	}

	return []linalg.Option{
		linalg.WithPivoting(p),
		linalg.WithRankTolerance(c.Linalg.RankTolerance),
		linalg.WithLogger(logger),
	}
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
