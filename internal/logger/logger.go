package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation

var (
	defaultLogger *slog.Logger
	levelVar      slog.LevelVar // defaults to info
)

// getLogFilePath determines the path for the application log file based on XDG spec.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "fitbook", "app.log"), nil
}

// SetLevelFromString applies the configured log level. Unknown values keep
// the current level and are reported to the caller.
func SetLevelFromString(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		levelVar.Set(slog.LevelInfo)
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "warn", "warning":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

// setupLogging configures the default logger based on whether to log to file and/or stderr.
func setupLogging(logToFile bool, logToStderr bool) {
	if !logToFile && !logToStderr {
		// Default to stderr if neither is specified, to ensure logs aren't lost.
		logToStderr = true
	}

	var writers []io.Writer

	if logToFile {
		logFilePath, err := getLogFilePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error determining log file path: %v. File logging disabled.\n", err)
		} else {
			logDir := filepath.Dir(logFilePath)
			if err := os.MkdirAll(logDir, 0750); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating log directory %s: %v. File logging disabled.\n", logDir, err)
			} else {
				file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error opening log file %s: %v. File logging disabled.\n", logFilePath, err)
				} else {
					writers = append(writers, file)
				}
			}
		}
	}

	if logToStderr {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		// All writers failed to initialize; stderr is the fallback.
		finalWriter = os.Stderr
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	// JSON handler for structured logging consistency.
	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: &levelVar})
	defaultLogger = slog.New(handler)
}

// InitLogger initializes the logger based on the execution mode (TUI or CLI).
// It MUST be called once at the beginning of the application. In TUI mode
// stderr logging is suppressed so log lines don't tear the rendered screen.
func InitLogger(isTUI bool) {
	setupLogging(true, !isTUI)
}

// SetLogger allows replacing the default logger instance, e.g. in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		InitLogger(false) // CLI defaults as a safety measure
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Warn(fmt.Sprintf(format, v...))
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Debugf logs a formatted debug message.
func Debugf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Debug(fmt.Sprintf(format, v...))
}
