package store

import (
	"context"

	"github.com/MKhiriev/go-task-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStore is the view of the client database taken by a sync run.
type LocalStore interface {
	// GetAllLists returns every list of the account and the lists waiting for upload.
	GetAllLists(ctx context.Context, account string) (all, toUpload []models.TaskList, err error)

	// GetAllTasks returns every task of the account keyed by local list id,
	// the upload candidates and an [models.IDMap] of the uploaded tasks.
	GetAllTasks(ctx context.Context, account string) (byList, toUpload map[int64][]models.Task, ids *models.IDMap, err error)

	// GetSyncState returns the saved change-token and timestamp.
	// A never-synced account yields the zero state.
	GetSyncState(ctx context.Context, account string) (models.SyncState, error)

	// Commit writes set back in one transaction. ids is extended with every
	// saved task. A nil state leaves the saved sync state untouched.
	Commit(ctx context.Context, account string, set *models.SaveSet, ids *models.IDMap, state *models.SyncState) error
}

// LocalTaskRepository edits the local lists and tasks between sync runs.
// Every change marks the row for upload.
type LocalTaskRepository interface {
	CreateList(ctx context.Context, account, title string) (models.TaskList, error)
	GetLists(ctx context.Context, account string) ([]models.TaskList, error)

	CreateTask(ctx context.Context, account string, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, account string, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, account string, task models.Task) error
	MarkTaskDeleted(ctx context.Context, account string, taskID int64) error
	ListTasks(ctx context.Context, account string, listID int64) ([]models.Task, error)
}
