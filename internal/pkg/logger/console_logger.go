package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger writes human-readable records to stderr so that command output
// on stdout stays clean for piping.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stderr, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{slogLogger: newSlogLogger(handler)}
}
