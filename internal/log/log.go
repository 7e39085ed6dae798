package log

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger provides centralized logging for the kit and demo program.
// A TUI owns stdout, so file output is the useful mode; the default
// stderr handler exists for non-interactive use and tests.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

var globalLogger *Logger

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	globalLogger = &Logger{
		logger: slog.New(handler),
		file:   os.Stderr,
	}
}

// SetFileOutput configures the logger to write to the specified file.
func SetFileOutput(filename string, level slog.Level) error {
	logger, err := NewLogger(filename, level)
	if err != nil {
		return err
	}

	if globalLogger != nil && globalLogger.file != os.Stderr {
		globalLogger.file.Close()
	}

	globalLogger = logger
	return nil
}

// NewLogger creates a logger that appends to the specified file.
func NewLogger(filename string, level slog.Level) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{
		logger: slog.New(handler),
		file:   file,
	}, nil
}

// ParseLevel maps a config string to a slog level. Unknown values get Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}
