package config

import (
	"fmt"
	"time"
)

const (
	defaultTokenDuration   = 24 * time.Hour
	defaultTokenIssuer     = "go-task-sync"
	defaultShutdownTimeout = 10 * time.Second
)

// ServerConfig is the task service view of [StructuredConfig].
type ServerConfig struct {
	App       App
	Storage   Storage
	Server    Server
	Telemetry Telemetry
}

// GetServerConfig builds and validates the task service view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:       cfg.App,
		Storage:   cfg.Storage,
		Server:    cfg.Server,
		Telemetry: cfg.Telemetry,
	}

	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = defaultTokenDuration
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if serverCfg.Server.ShutdownTimeout == 0 {
		serverCfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if serverCfg.Telemetry.ServiceName == "" {
		serverCfg.Telemetry.ServiceName = "tasksyncd"
	}

	return serverCfg
}
