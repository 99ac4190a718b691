// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// Cosmic Archive client.
//
// Configuration is read from ~/.cosmic-archive/config.toml with built-in
// defaults and environment variable overrides (COSMIC_ARCHIVE_*). A .env
// file in the working directory is honored before the environment is read,
// so local development setups can point the client at a scratch backend
// without touching the real config file.
//
// The Watcher re-reads the file on change and publishes the fresh config,
// letting a running session pick up a new archive URL without a restart.
package config
