package service

import (
	"context"

	"github.com/MKhiriev/go-task-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService reconciles the local store of an account with the task
// service. A run never returns an error: every failure is folded into the
// returned [models.SyncResult].
type ClientSyncService interface {
	// FullSync downloads remote changes, resolves conflicts, uploads local
	// changes and commits the merged state together with the new
	// change-token.
	FullSync(ctx context.Context, account models.Account) models.SyncResult

	// UploadOnlySync pushes local changes without looking at remote ones.
	// Uploads are conditional on the task etag and the saved change-token
	// is left alone.
	UploadOnlySync(ctx context.Context, account models.Account) models.SyncResult
}

// ClientAuthService registers accounts on the task service.
type ClientAuthService interface {
	Register(ctx context.Context, account models.Account) error
}
