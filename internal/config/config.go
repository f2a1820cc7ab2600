// Package config holds the CLI's own preferences. These are distinct from
// the tracker config JSON in the history directory, which is a persisted
// interface read by the hook drivers and external tooling.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all hooklog CLI configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Report  ReportConfig  `toml:"report"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DataDir overrides the default ~/.claude/.plugin-history location.
	DataDir string `toml:"data_dir,omitempty"`
}

// ReportConfig holds reporting defaults.
type ReportConfig struct {
	DefaultDays int `toml:"default_days"`
	ToolLimit   int `toml:"tool_limit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Report: ReportConfig{
			DefaultDays: 30,
			ToolLimit:   10,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hooklog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hooklog")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
