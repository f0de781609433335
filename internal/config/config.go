package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Listing defaults applied when the config file is absent or silent.
const (
	DefaultPageSize     = 5
	DefaultSiblingCount = 1
)

// Config represents the flat empdir configuration
type Config struct {
	Version      string `json:"version"`
	PageSize     int    `json:"page_size,omitempty"`     // employees per listing page
	SiblingCount int    `json:"sibling_count,omitempty"` // page buttons flanking the current page
}

// Default returns a config carrying the built-in defaults.
func Default() *Config {
	return &Config{
		Version:      "1",
		PageSize:     DefaultPageSize,
		SiblingCount: DefaultSiblingCount,
	}
}

// EffectivePageSize returns the configured page size or the default.
func (c *Config) EffectivePageSize() int {
	if c == nil || c.PageSize < 1 {
		return DefaultPageSize
	}
	return c.PageSize
}

// EffectiveSiblingCount returns the configured sibling count or the default.
func (c *Config) EffectiveSiblingCount() int {
	if c == nil || c.SiblingCount < 1 {
		return DefaultSiblingCount
	}
	return c.SiblingCount
}

// LoadConfig reads .empdir/config.json from the specified directory.
// Returns error if no config found - caller should fall back to Default.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".empdir", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	empdirDir := filepath.Join(dir, ".empdir")
	if err := os.MkdirAll(empdirDir, 0755); err != nil {
		return fmt.Errorf("failed to create .empdir dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(empdirDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadUserConfig reads the config from the user's home directory, falling
// back to the defaults when no file exists.
func LoadUserConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default()
	}
	cfg, err := LoadConfig(home)
	if err != nil {
		return Default()
	}
	return cfg
}
