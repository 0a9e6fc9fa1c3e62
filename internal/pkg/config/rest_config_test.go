//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	path := writeConfigFile(t, `
port: "8090"
allowed_origins:
  - "http://localhost:3000"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
  name: cipher_lab
`)

	restConfig, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8090", restConfig.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, restConfig.AllowedOrigins)
	assert.Equal(t, LogLevelDebug, restConfig.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, restConfig.Logger.LogType)
	assert.Equal(t, SqliteDbType, restConfig.Database.Type)
	assert.Equal(t, ":memory:", restConfig.Database.DSN)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, "port: \"8081\"\n")

	restConfig, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"*"}, restConfig.AllowedOrigins)
	assert.Equal(t, LogLevelInfo, restConfig.Logger.LogLevel)
	assert.Equal(t, SqliteDbType, restConfig.Database.Type)
	assert.Equal(t, "cipher_lab", restConfig.Database.Name)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, "port: \"8081\"\n")
	t.Setenv("CIPHER_LAB_PORT", "9191")
	t.Setenv("CIPHER_LAB_LOGGER_LOG_LEVEL", "error")

	restConfig, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9191", restConfig.Port)
	assert.Equal(t, LogLevelError, restConfig.Logger.LogLevel)
}

func TestInitializeRestConfig_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid port", func(t *testing.T) {
		path := writeConfigFile(t, "port: \"http\"\n")
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid database type", func(t *testing.T) {
		path := writeConfigFile(t, "database:\n  type: oracle\n")
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("file logger without rotation", func(t *testing.T) {
		path := writeConfigFile(t, "logger:\n  log_type: file\n  file_path: /tmp/cipher-lab.log\n")
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
