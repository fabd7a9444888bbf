// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// task service and the sync client. It is populated by merging environment
// variables, command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token keys, the change-token hash key and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection of either side.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the task service.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote endpoint used by the sync client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the account synchronized by the client.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds client log file settings.
	Log Log `envPrefix:"LOG_"`

	// Telemetry holds the OTLP exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// ConfigFilePath is the optional JSON or YAML file merged last.
	// Env: CONFIG, flags: -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level secrets and versioning.
type App struct {
	// TokenSignKey signs and verifies JWT bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key the change-token is derived with.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds inbound transport settings of the task service.
type Server struct {
	// HTTPAddress is the "host:port" the service listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds the database connection string. PostgreSQL DSN for the service,
// SQLite file path for the client.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the remote endpoint used by the sync client.
type Adapter struct {
	// HTTPAddress is the base URL or "host:port" of the task service.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration of background workers.
type Workers struct {
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Sync describes the account the client synchronizes.
type Sync struct {
	// Account keys local data and sync state. Defaults to Login.
	// Env: SYNC_ACCOUNT
	Account string `env:"ACCOUNT"`

	// Env: SYNC_LOGIN
	Login string `env:"LOGIN"`

	// Env: SYNC_PASSWORD
	Password string `env:"PASSWORD"`

	// Scope is requested at login.
	// Env: SYNC_SCOPE
	Scope string `env:"SCOPE"`

	// UploadOnly makes the periodic worker push without fetching.
	// Env: SYNC_UPLOAD_ONLY
	UploadOnly bool `env:"UPLOAD_ONLY"`
}

// Log holds client log file settings.
type Log struct {
	// Env: LOG_FILE
	File string `env:"FILE"`
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Telemetry holds OTLP exporter settings. An empty endpoint disables export.
type Telemetry struct {
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	// Env: TELEMETRY_INSECURE
	Insecure bool `env:"INSECURE"`
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// GetStructuredConfig loads and merges configuration from all sources.
// Later sources override non-zero fields of earlier ones:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, _, err := load(args)
	return cfg, err
}

// load also returns the positional arguments left after the flags.
func load(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile()

	cfg, err := b.build()
	return cfg, b.args, err
}
