// SPDX-License-Identifier: MIT

// Package log provides the structured zerolog logger shared by enumkit packages.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
}

var (
	mu   sync.RWMutex
	base *zerolog.Logger
)

// Configure replaces the global logger. The last call wins, so flags parsed
// after the environment defaults were applied still take effect.
func Configure(cfg Config) {
	l := New(cfg)
	mu.Lock()
	base = &l
	mu.Unlock()
}

// New builds a logger from cfg without touching the global one.
// Unset fields fall back to ENUMKIT_LOG_LEVEL, os.Stderr and "enumkit".
func New(cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("ENUMKIT_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	service := cfg.Service
	if service == "" {
		service = "enumkit"
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str(FieldService, service).
		Logger()
}

// logger returns the global logger, building a default one on first use.
func logger() zerolog.Logger {
	mu.RLock()
	l := base
	mu.RUnlock()
	if l != nil {
		return *l
	}

	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		d := New(Config{})
		base = &d
	}
	return *base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str(FieldComponent, component).Logger()
}

// Derive attaches arbitrary fields to a child logger using the provided builder function.
func Derive(build func(*zerolog.Context)) zerolog.Logger {
	ctx := logger().With()
	if build != nil {
		build(&ctx)
	}
	return ctx.Logger()
}
