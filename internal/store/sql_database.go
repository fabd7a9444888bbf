package store

import (
	"database/sql"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/migrations"
)

// DB is a connection pool shared by the repositories of one process.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateClient applies the local SQLite schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// MigrateServer applies the task service PostgreSQL schema.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// Retryable reports whether err is a transient database failure.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
