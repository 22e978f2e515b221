// SPDX-License-Identifier: MIT
// Package: lvlalg/config
//
// config.go — TOML configuration for the CLI and the HTTP server.
//
// Resolution: explicit path ⇒ $LVLALG_CONFIG ⇒ built-in defaults. Missing
// keys keep their defaults; Validate rejects inconsistent values.
//
// Example file:
//
//	[server]
//	host = "127.0.0.1"
//	port = 8080
//	read_timeout = "5s"
//	write_timeout = "10s"
//	shutdown_timeout = "15s"
//
//	[generator]
//	mode = "numeric"
//	min_terms = 3
//	max_terms = 5
//	max_degree_or_power = 3
//	include_integers = true
//	seed = 0
//	terms_limit = 10
//	degree_or_power_limit = 6

// Package config loads and validates lvlalg configuration files.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvlalg/exercise"
)

// EnvConfigPath names the environment variable consulted by Resolve.
const EnvConfigPath = "LVLALG_CONFIG"

var (
	// ErrInvalidConfig wraps every Validate failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrLimitExceeded is returned by CheckLimits for oversized requests.
	ErrLimitExceeded = errors.New("config: request exceeds generator limits")
)

// Duration wraps time.Duration for TOML strings such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the root document.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Generator GeneratorConfig `toml:"generator"`
}

// ServerConfig configures the HTTP layer.
type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Addr is host:port.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GeneratorConfig holds the defaults for generated exercises. The page
// draws the term count uniformly from [MinTerms, MaxTerms]; Seed 0 means a
// clock-seeded stream. TermsLimit and DegreeOrPowerLimit bound what a single
// HTTP or CLI request may ask for.
type GeneratorConfig struct {
	Mode               string `toml:"mode"`
	MinTerms           int    `toml:"min_terms"`
	MaxTerms           int    `toml:"max_terms"`
	MaxDegreeOrPower   int    `toml:"max_degree_or_power"`
	IncludeIntegers    bool   `toml:"include_integers"`
	Seed               int64  `toml:"seed"`
	TermsLimit         int    `toml:"terms_limit"`
	DegreeOrPowerLimit int    `toml:"degree_or_power_limit"`
}

// CheckLimits rejects explicit request values above the configured limits.
// Values below the minimums are left to exercise.Params.Normalized.
func (g GeneratorConfig) CheckLimits(terms, degreeOrPower int) error {
	if terms > g.TermsLimit {
		return fmt.Errorf("%w: terms %d > %d", ErrLimitExceeded, terms, g.TermsLimit)
	}
	if degreeOrPower > g.DegreeOrPowerLimit {
		return fmt.Errorf("%w: max %d > %d", ErrLimitExceeded, degreeOrPower, g.DegreeOrPowerLimit)
	}
	return nil
}

// ParsedMode returns the generator mode; Validate guarantees it parses.
func (g GeneratorConfig) ParsedMode() exercise.Mode {
	m, _ := exercise.ParseMode(g.Mode)
	return m
}

// Default returns the built-in configuration: numeric exercises of 3..5
// terms with powers up to 3 served on 127.0.0.1:8080.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     Duration{5 * time.Second},
			WriteTimeout:    Duration{10 * time.Second},
			ShutdownTimeout: Duration{15 * time.Second},
		},
		Generator: GeneratorConfig{
			Mode:               exercise.ModeNumeric.String(),
			MinTerms:           3,
			MaxTerms:           5,
			MaxDegreeOrPower:   exercise.DefaultMaxPower,
			IncludeIntegers:    true,
			TermsLimit:         10,
			DegreeOrPowerLimit: 6,
		},
	}
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads path, or $LVLALG_CONFIG when path is empty, or returns
// Default when neither is set.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks ranges and the mode name.
func (c *Config) Validate() error {
	g := c.Generator
	switch {
	case c.Server.Port < 0 || c.Server.Port > 65535:
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	case c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 || c.Server.ShutdownTimeout.Duration < 0:
		return fmt.Errorf("%w: negative server timeout", ErrInvalidConfig)
	case g.MinTerms < exercise.MinTerms:
		return fmt.Errorf("%w: generator.min_terms %d < %d", ErrInvalidConfig, g.MinTerms, exercise.MinTerms)
	case g.MaxTerms < g.MinTerms:
		return fmt.Errorf("%w: generator.max_terms %d < min_terms %d", ErrInvalidConfig, g.MaxTerms, g.MinTerms)
	case g.MaxDegreeOrPower < exercise.MinDegreeOrPower:
		return fmt.Errorf("%w: generator.max_degree_or_power %d < %d", ErrInvalidConfig, g.MaxDegreeOrPower, exercise.MinDegreeOrPower)
	case g.TermsLimit < g.MaxTerms || g.TermsLimit > exercise.TermsCeiling:
		return fmt.Errorf("%w: generator.terms_limit %d outside [max_terms %d, %d]", ErrInvalidConfig, g.TermsLimit, g.MaxTerms, exercise.TermsCeiling)
	case g.DegreeOrPowerLimit < g.MaxDegreeOrPower || g.DegreeOrPowerLimit > exercise.DegreeOrPowerCeiling:
		return fmt.Errorf("%w: generator.degree_or_power_limit %d outside [max_degree_or_power %d, %d]",
			ErrInvalidConfig, g.DegreeOrPowerLimit, g.MaxDegreeOrPower, exercise.DegreeOrPowerCeiling)
	}
	if _, err := exercise.ParseMode(g.Mode); err != nil {
		return fmt.Errorf("%w: generator.mode: %v", ErrInvalidConfig, err)
	}
	return nil
}
