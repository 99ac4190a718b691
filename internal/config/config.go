// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete Cosmic Archive client configuration.
type Config struct {
	// Archive backend configuration
	Archive ArchiveConfig `toml:"archive"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging"`
}

// ArchiveConfig contains archive backend configuration.
type ArchiveConfig struct {
	// BaseURL is the base URL of the archive backend. The client appends
	// /rag/ask and /rag/funfact to it.
	BaseURL string `toml:"base_url"`
	// FunFactEnabled controls fetching the welcome-screen fun fact.
	FunFactEnabled bool `toml:"funfact_enabled"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// SidebarVisible controls whether the conversation sidebar starts open.
	SidebarVisible bool `toml:"sidebar_visible"`
	// SearchMode controls whether deep search starts enabled.
	SearchMode bool `toml:"search_mode"`
}

// LoggingConfig contains file logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`
	// MaxSizeMB is the log file size before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `toml:"max_backups"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Archive: ArchiveConfig{
			BaseURL:        "http://127.0.0.1:8000",
			FunFactEnabled: true,
		},
		UI: UIConfig{
			Theme:          "dark",
			SidebarVisible: true,
			SearchMode:     false,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the Cosmic Archive configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".cosmic-archive"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file, falling back to
// defaults when no file exists. A .env file in the working directory is
// loaded first so COSMIC_ARCHIVE_* variables from it take effect; the
// environment is applied last and wins over the file.
func Load() (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Used by the watcher on reload.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# Cosmic Archive configuration file")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	u, err := url.Parse(c.Archive.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "archive.base_url",
			Message: fmt.Sprintf("invalid URL %q, must include scheme and host", c.Archive.BaseURL),
		})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, ValidationError{
			Field:   "archive.base_url",
			Message: fmt.Sprintf("unsupported scheme %q, must be http or https", u.Scheme),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme %q, must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q, must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Message: "cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills in any missing values with defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Archive.BaseURL == "" {
		c.Archive.BaseURL = defaults.Archive.BaseURL
	}
	c.Archive.BaseURL = strings.TrimRight(c.Archive.BaseURL, "/")

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = defaults.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = defaults.Logging.MaxBackups
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - COSMIC_ARCHIVE_URL: overrides archive.base_url
//   - COSMIC_ARCHIVE_THEME: overrides ui.theme
//   - COSMIC_ARCHIVE_LOG_LEVEL: overrides logging.level
//   - COSMIC_ARCHIVE_NO_FUNFACT: set to "1" or "true" to skip the fun fact
func (c *Config) ApplyEnvOverrides() {
	// COSMIC_ARCHIVE_URL
	if baseURL := os.Getenv("COSMIC_ARCHIVE_URL"); baseURL != "" {
		c.Archive.BaseURL = baseURL
	}

	// COSMIC_ARCHIVE_THEME
	if theme := os.Getenv("COSMIC_ARCHIVE_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	// COSMIC_ARCHIVE_LOG_LEVEL
	if level := os.Getenv("COSMIC_ARCHIVE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	// COSMIC_ARCHIVE_NO_FUNFACT
	if noFact := os.Getenv("COSMIC_ARCHIVE_NO_FUNFACT"); noFact != "" {
		if noFact == "1" || strings.ToLower(noFact) == "true" {
			c.Archive.FunFactEnabled = false
		}
	}
}
