// Package logger provides the application logger: a slog text logger for the console and a
// slog JSON logger writing to a rotated file, created once through InitLogger.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// ServiceName is attached to every record as the "service" attribute.
const ServiceName = "cipher-lab"

// slogLogger adapts a *slog.Logger to Logger. Arguments are concatenated like fmt.Sprint.
type slogLogger struct {
	logger *slog.Logger
	// beforeExit runs after a fatal record is written
	beforeExit func()
	exit       func(code int)
}

func newSlogLogger(handler slog.Handler) slogLogger {
	return slogLogger{
		logger: slog.New(handler).With(slog.String("service", ServiceName)),
		exit:   os.Exit,
	}
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at critical level and exits with status 1.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Log(context.Background(), LevelCritical, formatArgs(args...))
	if l.beforeExit != nil {
		l.beforeExit()
	}
	l.exit(1)
}

// Panic logs at critical level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Log(context.Background(), LevelCritical, msg)
	panic(msg)
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
