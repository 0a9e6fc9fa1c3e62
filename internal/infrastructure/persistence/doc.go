// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store analysis sessions in PostgreSQL
// or SQLite.
package persistence
