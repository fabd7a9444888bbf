package service

import (
	"context"

	"github.com/MKhiriev/go-task-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService owns the lists and tasks of the task service users.
// Every mutation advances the change-token of the owner.
type TaskService interface {
	// ChangeToken returns the current change-token of the user.
	ChangeToken(ctx context.Context, userID int64) (string, error)

	// GetLists returns every list of the user, tombstones included,
	// together with the change-token they were read under.
	GetLists(ctx context.Context, userID int64) (models.ListsResponse, error)
	CreateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error)
	UpdateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error)

	GetTasks(ctx context.Context, query models.TaskQuery) ([]models.Task, error)
	CreateTask(ctx context.Context, userID int64, listID string, task models.Task) (models.Task, error)
	// UpdateTask rejects the change with store.ErrVersionConflict when
	// ifMatch is not empty and no longer names the stored version.
	UpdateTask(ctx context.Context, userID int64, listID string, task models.Task, ifMatch string) (models.Task, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
