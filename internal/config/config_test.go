// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Archive.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("BaseURL = %q", cfg.Archive.BaseURL)
	}
	if !cfg.Archive.FunFactEnabled {
		t.Error("FunFactEnabled should default to true")
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[archive]
base_url = "https://archive.example.org"

[ui]
theme = "light"
sidebar_visible = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Archive.BaseURL != "https://archive.example.org" {
		t.Errorf("BaseURL = %q", cfg.Archive.BaseURL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	// Unset sections fall back to defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default", cfg.Logging.Level)
	}
}

func TestLoadFromPath_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("[archive\nbroken"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("COSMIC_ARCHIVE_URL", "http://10.0.0.5:9000")
	t.Setenv("COSMIC_ARCHIVE_THEME", "light")
	t.Setenv("COSMIC_ARCHIVE_NO_FUNFACT", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Archive.BaseURL != "http://10.0.0.5:9000" {
		t.Errorf("BaseURL = %q", cfg.Archive.BaseURL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q", cfg.UI.Theme)
	}
	if cfg.Archive.FunFactEnabled {
		t.Error("FunFactEnabled should be disabled by env override")
	}
}

func TestSetDefaults_TrimsTrailingSlash(t *testing.T) {
	cfg := Default()
	cfg.Archive.BaseURL = "http://localhost:8000/"
	cfg.SetDefaults()

	if strings.HasSuffix(cfg.Archive.BaseURL, "/") {
		t.Errorf("BaseURL = %q, trailing slash should be trimmed", cfg.Archive.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"https URL", func(c *Config) { c.Archive.BaseURL = "https://example.org" }, false},
		{"missing scheme", func(c *Config) { c.Archive.BaseURL = "example.org:8000" }, true},
		{"bad scheme", func(c *Config) { c.Archive.BaseURL = "ftp://example.org" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"negative size", func(c *Config) { c.Logging.MaxSizeMB = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Archive.BaseURL = "http://roundtrip.example.org"
	cfg.UI.SearchMode = true

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Archive.BaseURL != cfg.Archive.BaseURL {
		t.Errorf("BaseURL = %q, want %q", loaded.Archive.BaseURL, cfg.Archive.BaseURL)
	}
	if !loaded.UI.SearchMode {
		t.Error("SearchMode lost in round trip")
	}
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	write := func(baseURL string) {
		t.Helper()
		content := "[archive]\nbase_url = \"" + baseURL + "\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	write("http://before.example.org")

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	write("http://after.example.org")

	select {
	case cfg := <-w.Updates():
		if cfg.Archive.BaseURL != "http://after.example.org" {
			t.Errorf("reloaded BaseURL = %q", cfg.Archive.BaseURL)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcher_KeepsPreviousOnInvalidRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("[archive]\nbase_url = \"http://ok.example.org\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("[archive\nbroken"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case cfg := <-w.Updates():
		t.Errorf("invalid rewrite should not publish a config, got %+v", cfg)
	case <-time.After(1 * time.Second):
		// Expected: nothing published.
	}
}
