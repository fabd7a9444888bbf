package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "tasks.db"}},
			Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
			Sync:    Sync{Login: "alice", Password: "secret"},
		})
	}

	assert.NoError(t, valid().validate())
	assert.NoError(t, valid().RequireRemote())

	cfg := valid()
	cfg.Storage.DB.DSN = "file::memory:?cache=shared"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = newClientConfig(&StructuredConfig{})
	assert.Equal(t, defaultClientDSN, cfg.Storage.DB.DSN)
	assert.NoError(t, cfg.validate())

	cfg = valid()
	cfg.Adapter.HTTPAddress = ""
	assert.NoError(t, cfg.validate(), "local commands work without a remote")
	assert.ErrorIs(t, cfg.RequireRemote(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Sync.Password = ""
	assert.ErrorIs(t, cfg.RequireRemote(), ErrInvalidSyncConfigs)
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return newServerConfig(&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "postgres://localhost/tasks"}},
			Server:  Server{HTTPAddress: ":8080"},
			App:     App{TokenSignKey: "sign", HashKey: "hash"},
		})
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.App.HashKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
