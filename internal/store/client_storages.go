package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
)

// ClientStorages groups the client-side views of the local database.
type ClientStorages struct {
	// LocalStore is read and committed by sync runs.
	LocalStore LocalStore
	// TaskRepository is edited by the CLI between runs.
	TaskRepository LocalTaskRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating it
// if needed, and applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := newLocalTaskStore(db, logger)
	return &ClientStorages{
		LocalStore:     s,
		TaskRepository: s,
		db:             db,
	}, nil
}

// Close releases the database connection.
func (c *ClientStorages) Close() error {
	return c.db.Close()
}
