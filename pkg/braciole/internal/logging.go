// Package internal holds shared infrastructure for the braciole framework.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Two loggers share one destination: the application logger is handed to
// consuming apps, the internal logger carries framework diagnostics. Their
// levels move independently so a quiet app can still debug navigation.

const defaultLogPath = "logs/braciole.log"

var (
	logPath string
	logFile *os.File

	writerOnce sync.Once
	logWriter  io.Writer

	appOnce  sync.Once
	appLog   *slog.Logger
	appLevel *slog.LevelVar

	frameworkOnce  sync.Once
	frameworkLog   *slog.Logger
	frameworkLevel *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created as needed. Call before the first logger
// use to take effect.
func SetLogPath(path string) {
	logPath = path
}

// setup opens the log file once and builds the shared writer. Logging
// falls back to console-only when the file cannot be opened; a handheld
// with a full SD card still needs its screens.
func setup() io.Writer {
	writerOnce.Do(func() {
		logWriter = os.Stdout

		target := logPath
		if target == "" {
			target = defaultLogPath
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		logFile = f
		logWriter = io.MultiWriter(os.Stdout, logFile)
	})
	return logWriter
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	handler := slog.NewJSONHandler(setup(), &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	appOnce.Do(func() {
		appLevel = &slog.LevelVar{}
		appLog = newLogger(appLevel)
	})
	return appLog
}

// GetInternalLogger returns the framework logger used by the router and
// the platform packages.
func GetInternalLogger() *slog.Logger {
	frameworkOnce.Do(func() {
		frameworkLevel = &slog.LevelVar{}
		frameworkLog = newLogger(frameworkLevel)
	})
	return frameworkLog
}

// SetLogLevel sets the minimum level for the application logger.
func SetLogLevel(level slog.Level) {
	GetLogger()
	appLevel.Set(level)
}

// SetInternalLogLevel sets the minimum level for the framework logger.
func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	frameworkLevel.Set(level)
}

// SetRawLogLevel parses a level name ("debug", "info", "warn", "error")
// and applies it to the application logger. Unknown names select info.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	SetLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
