package persistence

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/MGTheTrain/cipher-lab/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteInMemoryDSN = ":memory:"

// databaseNamePattern restricts names that are interpolated into CREATE/DROP DATABASE.
var databaseNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// gormConfig keeps timestamps in UTC and leaves logging to the application logger.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// NewDBConnection opens the session store described by settings.
// PostgreSQL databases named in settings are created on first use.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	switch settings.Type {
	case config.PostgresDbType:
		return connectPostgres(settings)
	case config.SqliteDbType:
		return connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

func validateDatabaseName(name string) error {
	if !databaseNamePattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}
	return nil
}

func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	if settings.Name == "" {
		db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return db, nil
	}

	if err := validateDatabaseName(settings.Name); err != nil {
		return nil, err
	}

	if err := ensurePostgresDatabase(settings.DSN, settings.Name); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

// ensurePostgresDatabase creates name through the server DSN unless it already exists.
func ensurePostgresDatabase(serverDSN, name string) error {
	admin, err := gorm.Open(postgres.Open(serverDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	var count int64
	err = admin.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", name).Scan(&count).Error
	if err == nil && count == 0 {
		// #nosec G201 -- name is validated against databaseNamePattern
		err = admin.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, name)).Error
	}

	if closeErr := CloseDB(admin); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("failed to ensure database '%s': %w", name, err)
	}
	return nil
}

// connectSQLite opens a file database, or a private in-memory one when no DSN is set.
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = sqliteInMemoryDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// every connection to ":memory:" gets its own empty database
	if dsn == sqliteInMemoryDSN {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database. Used to clean up after integration tests.
func DropDatabase(adminDSN, dbName string) error {
	if err := validateDatabaseName(dbName); err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// #nosec G201 -- dbName is validated against databaseNamePattern
	err = db.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS "%s"`, dbName)).Error
	if closeErr := CloseDB(db); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}
