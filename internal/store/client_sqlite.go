package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/models"
)

// localTaskStore is the SQLite-backed implementation of [LocalStore] and
// [LocalTaskRepository].
type localTaskStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStore returns the sync view of the client database.
func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	return newLocalTaskStore(db, logger)
}

// NewLocalTaskRepository returns the editing view of the client database.
func NewLocalTaskRepository(db *DB, logger *logger.Logger) LocalTaskRepository {
	return newLocalTaskStore(db, logger)
}

func newLocalTaskStore(db *DB, logger *logger.Logger) *localTaskStore {
	return &localTaskStore{
		DB:     db,
		logger: logger,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocalList(row rowScanner) (models.TaskList, error) {
	var (
		list     models.TaskList
		remoteID sql.NullString
	)

	err := row.Scan(
		&list.ID,
		&list.Account,
		&remoteID,
		&list.Title,
		&list.ETag,
		&list.Deleted,
		&list.Updated,
		&list.Modified,
	)
	list.RemoteID = remoteID.String

	return list, err
}

func scanLocalTask(row rowScanner) (models.Task, error) {
	var (
		task             models.Task
		remoteID         sql.NullString
		status           string
		due              sql.NullTime
		parent, previous sql.NullInt64
	)

	err := row.Scan(
		&task.ID,
		&task.ListID,
		&remoteID,
		&task.Title,
		&task.Notes,
		&status,
		&due,
		&task.Deleted,
		&task.Updated,
		&task.ETag,
		&parent,
		&previous,
		&task.RemoteParent,
		&task.RemotePrevious,
		&task.Modified,
	)
	if err != nil {
		return models.Task{}, err
	}

	task.RemoteID = remoteID.String
	task.Status = models.TaskStatus(status)
	if due.Valid {
		d := due.Time
		task.Due = &d
	}
	task.LocalParent = int64Ptr(parent)
	task.LocalPrevious = int64Ptr(previous)

	return task, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func sameRef(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
