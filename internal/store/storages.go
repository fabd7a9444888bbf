package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
)

// Storages groups the repositories of the task service.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository

	db *DB
}

// NewStorages connects to PostgreSQL and applies pending migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.MigrateServer(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
