// Package config loads fsprobe settings from a YAML file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/logging"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = ".fsprobe.yaml"

// CacheConfig controls the location cache.
type CacheConfig struct {
	// TTL is how long a located path is remembered.
	TTL time.Duration `yaml:"ttl"`

	// Cleanup is the interval expired entries are purged at.
	Cleanup time.Duration `yaml:"cleanup"`
}

// ExecConfig controls command execution.
type ExecConfig struct {
	// Timeout bounds each command.
	Timeout time.Duration `yaml:"timeout"`
}

// SecurityConfig restricts what the MCP tools may touch.
type SecurityConfig struct {
	AllowedPaths    []string `yaml:"allowed_paths"`
	BlockedPaths    []string `yaml:"blocked_paths"`
	BlockedCommands []string `yaml:"blocked_commands"`
}

// Config represents fsprobe configuration options
type Config struct {
	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color is auto, always or never
	Color string `yaml:"color"`

	// SearchRoot is where LocateFile searches when no root is given
	SearchRoot string `yaml:"search_root"`

	Cache    CacheConfig    `yaml:"cache"`
	Exec     ExecConfig     `yaml:"exec"`
	Security SecurityConfig `yaml:"security"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Color:      "auto",
		SearchRoot: ".",
		Cache: CacheConfig{
			TTL:     5 * time.Minute,
			Cleanup: 10 * time.Minute,
		},
		Exec: ExecConfig{
			Timeout: 2 * time.Minute,
		},
	}
}

// rawConfig mirrors Config with durations as strings so "30s" parses.
type rawConfig struct {
	LogLevel   string `yaml:"log_level"`
	Color      string `yaml:"color"`
	SearchRoot string `yaml:"search_root"`
	Cache      struct {
		TTL     string `yaml:"ttl"`
		Cleanup string `yaml:"cleanup"`
	} `yaml:"cache"`
	Exec struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"exec"`
	Security SecurityConfig `yaml:"security"`
}

// Load reads configuration from path. A missing file yields the defaults;
// a malformed one is an error. LOG_LEVEL in the environment overrides the
// file's log level.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, errors.ConfigurationWithCause("failed to read config file", err)
	default:
		if err := cfg.merge(data); err != nil {
			return nil, err
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(data []byte) error {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.ConfigurationWithCause("failed to parse config file", err)
	}

	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}
	if raw.Color != "" {
		c.Color = raw.Color
	}
	if raw.SearchRoot != "" {
		c.SearchRoot = raw.SearchRoot
	}

	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"cache.ttl", raw.Cache.TTL, &c.Cache.TTL},
		{"cache.cleanup", raw.Cache.Cleanup, &c.Cache.Cleanup},
		{"exec.timeout", raw.Exec.Timeout, &c.Exec.Timeout},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		v, err := time.ParseDuration(d.value)
		if err != nil {
			return errors.ConfigurationWithCause("invalid "+d.name+" "+d.value, err)
		}
		*d.dst = v
	}

	c.Security.AllowedPaths = append(c.Security.AllowedPaths, raw.Security.AllowedPaths...)
	c.Security.BlockedPaths = append(c.Security.BlockedPaths, raw.Security.BlockedPaths...)
	c.Security.BlockedCommands = append(c.Security.BlockedCommands, raw.Security.BlockedCommands...)
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return errors.Configuration("invalid log_level " + c.LogLevel)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return errors.Configuration("invalid color " + c.Color + " (want auto, always or never)")
	}
	if c.Cache.TTL <= 0 {
		return errors.Configuration("cache.ttl must be positive")
	}
	if c.Cache.Cleanup <= 0 {
		return errors.Configuration("cache.cleanup must be positive")
	}
	if c.Exec.Timeout <= 0 {
		return errors.Configuration("exec.timeout must be positive")
	}
	for _, p := range c.Security.AllowedPaths {
		if !filepath.IsAbs(p) {
			return errors.Configuration("security.allowed_paths entry must be absolute: " + p)
		}
	}
	return nil
}

// Logger builds the logger this configuration describes, writing to w
// (stderr when nil).
func (c *Config) Logger(w io.Writer) *logging.Logger {
	return logging.New(logging.Options{Level: c.LogLevel, Color: c.Color, Writer: w})
}
