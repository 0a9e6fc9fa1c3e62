//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/config"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	SessionRepo sessions.SessionRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	sessionRepo, err := NewGormSessionRepository(db, logger)
	require.NoError(t, err, "Failed to create session repository")

	return &TestContext{
		DB:          db,
		SessionRepo: sessionRepo,
	}
}

// CreateTestSession creates a session holding plaintext
func CreateTestSession(t *testing.T, plaintext string) *sessions.Session {
	t.Helper()

	session := sessions.NewSession()
	if plaintext != "" {
		session.SetPlaintext(plaintext)
	}
	return session
}
