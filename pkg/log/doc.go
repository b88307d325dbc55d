// Package log provides structured diagnostic logging for countdown runs.
//
// This package defines the Logger interface and Event types the countdown
// core reports through. Diagnostics are purely observational: events never
// affect control flow, and the core works with a nil or NoopLogger.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For analysis: write to binary file
//	cfg.Logger, _ = log.NewFileLogger("/var/log/selftimer/run.clog")
//
//	// Both: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events carry one of two payloads:
//   - StateChange: a countdown state transition (old/new state, reason)
//   - Tick: a received remaining-time value and the run's countdown length
//
// Events without a payload are plain notices (invalid-start attempts,
// anomalous tick conditions) carried in the Message field.
//
// # File Format
//
// Log files use CBOR encoding with .clog extension. Reader streams events
// back with optional filtering by run, severity, category, or time range.
package log
