//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelWarning)

	logger.Info("session ", 7, " created")
	logger.Warn("key shorter than ", 256, " bits")
	logger.Error("decryption failed")

	output := buf.String()
	assert.NotContains(t, output, "session 7 created")
	assert.Contains(t, output, `msg="key shorter than 256 bits"`)
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "service=cipher-lab")
}

func TestConsoleLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelInfo)

	var code int
	logger.exit = func(c int) { code = c }

	logger.Fatal("database unavailable")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "level=ERROR+4")
	assert.Contains(t, buf.String(), "database unavailable")
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "boom 42", func() {
		logger.Panic("boom ", 42)
	})
	assert.Contains(t, buf.String(), "boom 42")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelDebug)
	require.IsType(t, &ConsoleLogger{}, logger)
}
