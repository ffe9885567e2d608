// Package logging provides structured logging utilities for threadgen components.
//
// # Overview
//
// This package wraps the standard library slog package with threadgen-specific defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended; an empty level reads LOG_LEVEL):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("threadgen", "v1.0.0", "")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("installer", "v2.0.0", "debug")
//	logger.Info("copying thread data", "dir", dir)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug threadgen generate
//	LOG_LEVEL=error threadgen install
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "thread data generated",
//	    "module": "threadgen",
//	    "version": "v1.0.0",
//	    "threads": 20020
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "threaddata.(*Builder).Build",
//	        "file": "builder.go",
//	        "line": 45
//	    },
//	    "msg": "building thread size",
//	    "module": "threadgen",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("myapp", version, "")
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("document written",
//	    "path", path,
//	    "sizes", len(sizes),
//	    "duration_ms", 125,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("designation", "name", n) // Development/troubleshooting
//	slog.Info("document written")        // Normal operations
//	slog.Warn("tap drill is zero")       // Potential issues
//	slog.Error("install failed")         // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to copy thread data",
//	    "error", err,
//	    "source", src,
//	    "dir", dir,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/threaddata - Document generation logging
//   - pkg/installer - Fusion 360 install logging
//
// All components share consistent logging format and configuration.
package logging
