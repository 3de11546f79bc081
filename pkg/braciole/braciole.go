package braciole

import (
	"log/slog"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before any logging (or
// router construction) to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging. The
// router and the platform packages log through a separate framework logger
// whose level is controlled independently.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetFrameworkLogLevel sets the minimum log level for the framework's own
// diagnostics, covering the router and the platform packages.
func SetFrameworkLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger closes the log file. Call before program exit.
func CloseLogger() {
	internal.CloseLogger()
}
