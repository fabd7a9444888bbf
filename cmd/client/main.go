package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/client"
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/service"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/internal/telemetry"
	"github.com/MKhiriev/go-task-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	root := client.NewRootCommand(build, func(ctx context.Context, command string, args []string) (client.Dependencies, func(), error) {
		return setup(ctx, command, args, build)
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "taskctl: %v\n", err)
		os.Exit(client.ExitCode(err))
	}
}

// setup wires the collaborators command needs. Local commands never build
// the remote client, so they work without -server and credentials.
func setup(ctx context.Context, command string, args []string, build models.AppBuildInfo) (client.Dependencies, func(), error) {
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		return client.Dependencies{}, nil, err
	}

	log := logger.NewClientLogger("taskctl", logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Level:      cfg.Log.Level,
	})

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry disabled")
	}
	closers = append(closers, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Err(err).Msg("telemetry shutdown failed")
		}
	})
	log = log.WithOTel("taskctl")

	deps := client.Dependencies{
		Config: cfg,
		Build:  build,
		Logger: log,
	}

	if !client.NeedsStore(command) {
		return deps, cleanup, nil
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		cleanup()
		return client.Dependencies{}, nil, fmt.Errorf("open local store: %w", err)
	}
	closers = append(closers, func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("closing local store")
		}
	})
	deps.Tasks = storages.TaskRepository

	if !client.NeedsRemote(command) {
		return deps, cleanup, nil
	}

	if err = cfg.RequireRemote(); err != nil {
		cleanup()
		return client.Dependencies{}, nil, err
	}

	remote, err := adapter.NewHTTPRemoteClient(cfg.Adapter, log)
	if err != nil {
		cleanup()
		return client.Dependencies{}, nil, fmt.Errorf("create remote client: %w", err)
	}

	services := service.NewClientServices(storages.LocalStore, remote, cfg.Sync, log)
	deps.Sync = services.SyncService
	deps.Auth = services.AuthService

	return deps, cleanup, nil
}
