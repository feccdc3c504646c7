// Package log provides structured logging for dayx command line tools.
//
// Package: log
// Title: dayx Structured Logging
// Description: A small structured logger with levels, key/value fields and
//              JSON or text output. Loggers are immutable: every With* call
//              returns a derived logger. The timex package itself never logs;
//              this logger is used at the application boundary.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-12-14 v0.2.0: Removed async workers and timers, sorted text fields
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "dayx",
//	})
//
//	logger.WithCorrelationID(id).Debug("parsed input",
//		log.String("input", text),
//		log.Int64("unix", v.Unix()))
package log
