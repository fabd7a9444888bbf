// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote task service.
//
// [RemoteClient] is what a sync run sees of the remote side. The package
// ships an HTTP/REST implementation on top of resty ([NewHTTPRemoteClient]).
// Status codes are mapped to the sentinel errors of errors.go so callers can
// use [errors.Is]; upload conflicts (404, 409, 412) are reported as a nil
// result instead of an error.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RemoteClient is the remote side of one sync run. It is not safe for
// concurrent use; a run owns its client from Authenticate to Close.
type RemoteClient interface {
	// Authenticate logs account in. A rejected login yields [ErrUnauthorized].
	Authenticate(ctx context.Context, account models.Account, scope string) error

	// FetchChangeTokenAndLists returns the current change-token and every
	// remote list, deleted ones included. Lists matching one of localLists by
	// remote id carry its local id. When the token still equals localToken
	// the lists are nil.
	FetchChangeTokenAndLists(ctx context.Context, localToken string, localLists []models.TaskList) (string, []models.TaskList, error)

	// FetchModifiedTasks returns the tasks of list changed after since,
	// deleted ones included. Local ids and local tree references are
	// resolved through localTasks and ids where possible.
	FetchModifiedTasks(ctx context.Context, list models.TaskList, localTasks []models.Task, since time.Time, ids *models.IDMap) ([]models.Task, error)

	// UploadList creates or updates list. A nil result means the remote
	// side rejected it as conflicting.
	UploadList(ctx context.Context, list models.TaskList) (*models.TaskList, error)

	// UploadTask creates or updates task in list. In strict mode the task
	// etag must still match the remote one. A nil result means conflict.
	UploadTask(ctx context.Context, task models.Task, list models.TaskList, strict bool) (*models.Task, error)

	// FetchChangeToken returns the current change-token.
	FetchChangeToken(ctx context.Context) (string, error)

	// Close drops the session and idle connections.
	Close()
}

// AccountClient manages remote accounts.
type AccountClient interface {
	Register(ctx context.Context, account models.Account) error
}
