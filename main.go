// Cosmic Archive - a terminal client for the space biology archive.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/config"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/logging"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/rag"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/session"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/storage"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/chat"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("cosmic-archive %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			printUsage()
			return
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: cosmic-archive needs an interactive terminal")
		os.Exit(1)
	}

	runTUI()
}

func printUsage() {
	fmt.Println("cosmic-archive - terminal client for the space biology archive")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cosmic-archive              Start the interactive TUI")
	fmt.Println("  cosmic-archive --version    Print version information")
	fmt.Println()
	fmt.Println("Configuration lives in ~/.cosmic-archive/config.toml and is")
	fmt.Println("reloaded while the program runs.")
}

// runTUI wires the application together and starts the Bubble Tea program.
func runTUI() {
	// Load configuration at startup. A broken config file is fatal here;
	// once running, the watcher keeps the previous config instead.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	dataDir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating data directory: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so the logger writes to a file only.
	logger := logging.New(logging.Options{
		Dir:        dataDir,
		Level:      cfg.Logging.Level,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	defer logger.Sync()

	logger.Info("starting cosmic-archive",
		zap.String("version", Version),
		zap.String("base_url", cfg.Archive.BaseURL))

	// Conversation persistence. A failed load is not fatal: the user can
	// still chat, they just start from an empty archive.
	convStore, err := storage.NewConversationStore(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize conversation storage: %v\n", err)
	}

	var conversations []*model.Conversation
	if convStore != nil {
		conversations, err = convStore.Load()
		if err != nil {
			logger.Warn("could not load saved conversations", zap.Error(err))
		}
	}
	store := model.NewStoreWith(conversations)

	client := rag.NewClient(rag.ClientConfig{BaseURL: cfg.Archive.BaseURL})

	var persist session.Persister
	if convStore != nil {
		persist = convStore
	}
	controller := session.NewController(store, persist, logger)

	theme := styles.NewTheme(cfg.UI.Theme)
	m := chat.New(controller, client, cfg, theme, logger)

	// Hot reload of the config file. If the watcher cannot start the app
	// still runs, just without live reloads.
	configPath, err := config.ConfigPath()
	if err == nil {
		watcher, werr := config.NewWatcher(configPath, logger)
		if werr != nil {
			logger.Warn("config watcher unavailable", zap.Error(werr))
		} else {
			defer watcher.Close()
			if werr := watcher.Watch(); werr != nil {
				logger.Warn("config watcher failed to start", zap.Error(werr))
			} else {
				m.SetConfigUpdates(watcher.Updates())
			}
		}
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running cosmic-archive: %v\n", err)
		os.Exit(1)
	}
}
