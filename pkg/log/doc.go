// Package log provides structured playback event logging.
//
// This package defines the Logger interface and Event types for capturing
// what a playback engine does: which title was shown to which target, when a
// session started, looped or stopped, and any display errors. It is separate
// from operational logging (slog). The event log is a complete,
// machine-readable trace of playback for debugging and analysis.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/titles/player.tlog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Display: a title shown to, or cleared from, a target (DisplayEvent)
//   - State: a session lifecycle change (StateChangeEvent)
//   - Error: a display sink failure (ErrorEventData)
//
// # File Format
//
// Log files use CBOR encoding with the .tlog extension. The titles-log CLI
// tool provides viewing, filtering and statistics.
package log
