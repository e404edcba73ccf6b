package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/baton/internal/core/handoff"
)

// Defaults applied when a field is missing from the config file.
const (
	DefaultFormat    = string(handoff.FormatCompact)
	DefaultReadLimit = 20
)

// Config represents the flat baton configuration
type Config struct {
	Version       string `json:"version"`
	DefaultFormat string `json:"default_format,omitempty"` // "compact" or "detailed"
	ReadLimit     int    `json:"read_limit,omitempty"`     // messages returned by read_session
}

// LoadConfig reads .baton/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".baton", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = DefaultFormat
	}
	if cfg.ReadLimit <= 0 {
		cfg.ReadLimit = DefaultReadLimit
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	batonDir := filepath.Join(dir, ".baton")
	if err := os.MkdirAll(batonDir, 0755); err != nil {
		return fmt.Errorf("failed to create .baton dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(batonDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveFormat picks the prompt format: an explicit flag value wins, then
// the config default, then compact.
func ResolveFormat(flagValue string, cfg *Config) (handoff.Format, error) {
	if flagValue != "" {
		return handoff.ParseFormat(flagValue)
	}
	if cfg != nil && cfg.DefaultFormat != "" {
		return handoff.ParseFormat(cfg.DefaultFormat)
	}
	return handoff.FormatCompact, nil
}
