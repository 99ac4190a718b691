// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows
// +build !windows

// Package util provides utility functions shared across the cosmic-archive TUI.
package util

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenURL opens an absolute URL in the user's default browser.
// Article links always open in an external browsing context; the TUI never
// tries to render remote pages itself.
func OpenURL(url string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "darwin" {
		cmd = exec.Command("open", url)
	} else {
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	// Detach: the browser outlives us and we never wait on it. Reap the
	// child in the background so it does not linger as a zombie.
	go cmd.Wait()

	return nil
}
