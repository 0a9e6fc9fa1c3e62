// Package testutil provides helpers shared by tests across packages.
package testutil

import (
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/pkg/config"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a console logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
