// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the application logger. The TUI owns stdout and
// stderr, so all logging goes to a rotated file under the data directory.
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the log file inside the data directory.
const LogFileName = "archive.log"

// Options tunes the file logger.
type Options struct {
	// Dir is the data directory the log file lives in.
	Dir string
	// Level is "debug", "info", "warn" or "error". Empty means info.
	Level string
	// MaxSizeMB rotates the file once it exceeds this size. Zero means 10.
	MaxSizeMB int
	// MaxBackups keeps this many rotated files. Zero means 3.
	MaxBackups int
}

// New creates a zap logger writing JSON lines to a rotated file. It never
// writes to the terminal.
func New(opts Options) *zap.Logger {
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 3
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, LogFileName),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		writer,
		parseLevel(opts.Level),
	)

	return zap.New(core)
}

// parseLevel maps a config string to a zap level, defaulting to info.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
