// ============================================================================
// dayx - calendar-aware date-time toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for the loggers used by dayx commands
// Author:      dayx team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/dayx/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the binary name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format, "json" or "text" (default: text)
	Format string

	// Destination, stderr when nil
	Output io.Writer

	// Correlation id attached to every entry; generated when empty
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger tagged with a correlation id
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelWarn
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	id := cfg.CorrelationID
	if id == "" {
		id = NewCorrelationID()
	}

	return mdwlog.New().
		WithLevel(level).
		WithFormat(format).
		WithOutput(output).
		WithName(cfg.Name).
		WithCorrelationID(id)
}

// NewCorrelationID returns a random id for one command invocation
func NewCorrelationID() string {
	return uuid.NewString()
}
