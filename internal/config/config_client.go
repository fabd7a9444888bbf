package config

import (
	"fmt"
	"time"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultScope          = "tasks"
	defaultClientDSN      = "taskctl.db"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the task service base URL or "host:port".
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync runs.
	SyncInterval time.Duration
}

// ClientSync describes the synchronized account.
type ClientSync struct {
	Account    string
	Login      string
	Password   string
	Scope      string
	UploadOnly bool
}

// ClientLog configures the rotated client log file.
type ClientLog struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter   ClientAdapter
	Storage   ClientStorage
	Workers   ClientWorkers
	Sync      ClientSync
	Log       ClientLog
	Telemetry Telemetry

	// Args holds the positional arguments left after the flags.
	Args []string
}

// GetClientConfig builds and validates the client view from the merged
// configuration. args are the command-line arguments after the subcommand.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := load(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	clientCfg.Args = rest

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Sync: ClientSync{
			Account:    cfg.Sync.Account,
			Login:      cfg.Sync.Login,
			Password:   cfg.Sync.Password,
			Scope:      cfg.Sync.Scope,
			UploadOnly: cfg.Sync.UploadOnly,
		},
		Log: ClientLog{
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			Level:      cfg.Log.Level,
		},
		Telemetry: cfg.Telemetry,
	}

	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = defaultClientDSN
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = defaultSyncInterval
	}
	if clientCfg.Sync.Scope == "" {
		clientCfg.Sync.Scope = defaultScope
	}
	if clientCfg.Sync.Account == "" {
		clientCfg.Sync.Account = clientCfg.Sync.Login
	}
	if clientCfg.Telemetry.ServiceName == "" {
		clientCfg.Telemetry.ServiceName = "taskctl"
	}

	return clientCfg
}
