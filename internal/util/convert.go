// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across the cosmic-archive TUI.
package util

import "strconv"

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// Int64ToString converts an int64 to string.
// Uses strconv.FormatInt for optimal performance.
func Int64ToString(i int64) string {
	return strconv.FormatInt(i, 10)
}
