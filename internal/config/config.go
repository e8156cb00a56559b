// Package config loads and saves the Tasktide configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full Tasktide configuration
type Config struct {
	DataDir       string        `json:"dataDir"`
	Timer         TimerConfig   `json:"timer"`
	Notifications NotifyConfig  `json:"notifications"`
	Display       DisplayConfig `json:"display"`
}

// TimerConfig contains focus timer settings
type TimerConfig struct {
	SessionMinutes int `json:"sessionMinutes"`
}

// NotifyConfig contains notification settings
type NotifyConfig struct {
	SessionComplete bool `json:"sessionComplete"`
}

// DisplayConfig contains view settings
type DisplayConfig struct {
	DefaultCategory string `json:"defaultCategory"`
	StartCompact    bool   `json:"startCompact"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		DataDir: filepath.Join(homeDir, ".tasktide"),
		Timer: TimerConfig{
			SessionMinutes: 25,
		},
		Notifications: NotifyConfig{
			SessionComplete: true,
		},
		Display: DisplayConfig{
			DefaultCategory: "work",
			StartCompact:    false,
		},
	}
}

// LoadConfig loads configuration with priority:
// 1. .tasktide.json in the given directory
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".tasktide.json")
	data, err := os.ReadFile(path)
	if err != nil {
		// Missing config is the common case
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.Timer.SessionMinutes <= 0 {
		cfg.Timer.SessionMinutes = defaults.Timer.SessionMinutes
	}
	if cfg.Display.DefaultCategory == "" {
		cfg.Display.DefaultCategory = defaults.Display.DefaultCategory
	}

	return cfg
}

// Load is a convenience function that loads config from the home
// directory
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return LoadConfig(home)
}
