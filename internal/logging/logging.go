// SPDX-License-Identifier: Unlicense OR MIT

// Package logging holds the process-wide slog logger used by the
// command line tools. The core packages never log.
package logging

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

// Options selects the log level and output encoding.
type Options struct {
	Level string
	JSON  bool
}

var def atomic.Value

func init() {
	cfg := &slog.HandlerOptions{Level: slog.LevelInfo}
	def.Store(slog.New(slog.NewTextHandler(os.Stderr, cfg)))
}

// Configure replaces the process logger.
func Configure(opts Options) {
	cfg := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(os.Stderr, cfg)
	} else {
		h = slog.NewTextHandler(os.Stderr, cfg)
	}
	def.Store(slog.New(h))
}

// InitFromEnv configures the logger from C44_LOG_LEVEL and
// C44_LOG_JSON.
func InitFromEnv() {
	json := false
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("C44_LOG_JSON"))); err == nil {
		json = b
	}
	Configure(Options{Level: os.Getenv("C44_LOG_LEVEL"), JSON: json})
}

// L returns the current process logger.
func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
