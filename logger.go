package multivec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with multivec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithColumns adds a columns (arity) field to the logger.
func (l *Logger) WithColumns(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("columns", k),
	}
}

// LogGrow logs a storage reallocation.
func (l *Logger) LogGrow(oldCap, newCap int, reserved int64) {
	l.Debug("storage grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"reserved_bytes", reserved,
	)
}

// LogFree logs the release of a storage.
func (l *Logger) LogFree(capacity int, reserved int64) {
	l.Debug("storage freed",
		"capacity", capacity,
		"reserved_bytes", reserved,
	)
}

// LogFatal logs an unrecoverable storage failure right before the panic.
func (l *Logger) LogFatal(err error) {
	l.Error("storage failure",
		"error", err,
	)
}
