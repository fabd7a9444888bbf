package store

import (
	"context"

	"github.com/MKhiriev/go-task-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// TaskRepository persists the lists and tasks of the task service.
// Every mutation bumps the owner's revision in the same transaction.
type TaskRepository interface {
	GetLists(ctx context.Context, userID int64) ([]models.TaskList, error)
	GetList(ctx context.Context, userID int64, listID string) (models.TaskList, error)
	CreateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error)
	UpdateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error)

	GetTasks(ctx context.Context, query models.TaskQuery) ([]models.Task, error)
	CreateTask(ctx context.Context, userID int64, listID string, task models.Task) (models.Task, error)
	// UpdateTask fails with [ErrVersionConflict] when ifMatch is set and
	// differs from the stored version.
	UpdateTask(ctx context.Context, userID int64, listID string, task models.Task, ifMatch *int64) (models.Task, error)

	// Revision returns the change counter of the user, 0 before the first mutation.
	Revision(ctx context.Context, userID int64) (int64, error)
}
