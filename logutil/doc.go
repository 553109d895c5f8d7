// Package logutil provides a structured logging abstraction built on top of slog.
//
// This package provides a simple, consistent logging interface for urldial.
// It wraps the standard library's slog package with convenience functions and
// environment-aware configuration.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("probing target", "url", target)
//	logutil.Info("probe completed", "latency", elapsed)
//	logutil.Warn("target degraded", "url", target)
//	logutil.Error("probe failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set URLDIAL_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"probe completed","latency":"12ms"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="probe completed" latency=12ms
package logutil
