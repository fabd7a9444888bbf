package service

import (
	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/store"
)

// RemoteService is everything the client needs from the task service.
type RemoteService interface {
	adapter.RemoteClient
	adapter.AccountClient
}

type ClientServices struct {
	AuthService ClientAuthService
	SyncService ClientSyncService
}

func NewClientServices(local store.LocalStore, remote RemoteService, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(remote, logger),
		SyncService: NewClientSyncService(local, remote, cfg, logger),
	}
}
