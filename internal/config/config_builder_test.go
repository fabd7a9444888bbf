package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempConfig(t, "config.json", string(data))
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of later
// sources win while zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env"}},
		&StructuredConfig{App: App{TokenIssuer: "flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
}

// ── withFlags / withFile ──────────────────────────────────────────────────────

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-bogus"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_AppendsConfigFromJSON(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{
		"sync": map[string]any{"login": "alice"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: p})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "alice", b.configs[1].Sync.Login)
}

func TestWithFile_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/no/such/file.json"})
	b.withFile()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_SkippedWhenErrorAlreadySet(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{})
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: p})
	b.withFile()

	assert.Len(t, b.configs, 1)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestGetClientConfig_MergesSourcesAndDefaults(t *testing.T) {
	p := writeTempConfig(t, "client.yaml", `
adapter:
  http_address: http://file:8080
sync:
  login: alice
  password: from-file
`)
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "/tmp/tasks.db",
		"SYNC_PASSWORD":           "from-env",
	})

	cfg, err := GetClientConfig([]string{"-config", p, "-server", "http://flag:9090", "7"})
	require.NoError(t, err)

	// file is merged last
	assert.Equal(t, "http://file:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "from-file", cfg.Sync.Password)
	assert.Equal(t, "/tmp/tasks.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "alice", cfg.Sync.Account)
	assert.Equal(t, defaultScope, cfg.Sync.Scope)
	assert.Equal(t, defaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"7"}, cfg.Args)
	assert.NoError(t, cfg.RequireRemote())
}

func TestGetServerConfig_Defaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/tasks",
		"SERVER_ADDRESS":          ":8080",
		"APP_TOKEN_SIGN_KEY":      "sign",
		"APP_HASH_KEY":            "hash",
	})

	cfg, err := GetServerConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "tasksyncd", cfg.Telemetry.ServiceName)
}
