// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// newLogger returns tint output for terminals and JSON lines otherwise,
// matching what a log collector expects when stderr is redirected.
func newLogger(output io.Writer, terminal, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	if terminal {
		return slog.New(tint.NewHandler(output, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}))
	}
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
}

// stderrLogger builds the process logger from the environment.
func stderrLogger() *slog.Logger {
	debug := os.Getenv("PHANTOM_DEBUG") != "" && os.Getenv("PHANTOM_DEBUG") != "0"
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), debug)
}
