// Package config loads and validates airis configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/airisdev/airis-agent/internal/confidence"
)

// HistoryConfig represents assessment history configuration
type HistoryConfig struct {
	// Enabled enables recording of confidence assessments
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database, relative to airis home
	// unless absolute
	DBPath string `yaml:"db_path"`

	// KeepDays is the number of days to keep assessment records
	KeepDays int `yaml:"keep_days"`
}

// Config represents airis configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Weights overrides individual signal weights in the confidence gate.
	// Signals not listed keep their default weight; the resulting table
	// must still sum to 1.0.
	Weights map[string]float64 `yaml:"weights"`

	// History contains assessment history configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Weights:  nil, // Default weight table
		History: HistoryConfig{
			Enabled:  true,
			DBPath:   "history.db",
			KeepDays: 90,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads config.yaml from the given directory, falling
// back to defaults when absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, "config.yaml"))
}

// MergeWithFlags overrides config values with any non-nil flag values
func (c *Config) MergeWithFlags(logLevel *string, historyEnabled *bool) {
	if logLevel != nil && *logLevel != "" {
		c.LogLevel = *logLevel
	}
	if historyEnabled != nil {
		c.History.Enabled = *historyEnabled
	}
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	if c.History.KeepDays < 0 {
		return fmt.Errorf("history.keep_days must be >= 0, got %d", c.History.KeepDays)
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path is required when history is enabled")
	}

	if _, err := c.WeightTable(); err != nil {
		return err
	}

	return nil
}

// WeightTable resolves the effective confidence weight table: the default
// table with any configured overrides applied.
func (c *Config) WeightTable() (confidence.WeightTable, error) {
	if len(c.Weights) == 0 {
		return confidence.DefaultWeights(), nil
	}
	table, err := confidence.DefaultWeights().Override(c.Weights)
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	return table, nil
}

// HistoryDBPath resolves the history database path against the airis
// home directory when relative.
func (c *Config) HistoryDBPath(home string) string {
	if filepath.IsAbs(c.History.DBPath) {
		return c.History.DBPath
	}
	return filepath.Join(home, c.History.DBPath)
}
