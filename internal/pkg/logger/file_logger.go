package logger

import (
	"log/slog"

	"github.com/MGTheTrain/cipher-lab/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON lines to a file rotated by lumberjack.
type FileLogger struct {
	slogLogger
	writer *lumberjack.Logger
}

// NewFileLogger creates a new file logger using the rotation policy of settings.
func NewFileLogger(settings *config.LoggerSettings) *FileLogger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)})
	fileLogger := &FileLogger{slogLogger: newSlogLogger(handler), writer: writer}
	fileLogger.beforeExit = func() { _ = writer.Close() }
	return fileLogger
}

// Close closes the underlying log file.
func (l *FileLogger) Close() error {
	return l.writer.Close()
}
