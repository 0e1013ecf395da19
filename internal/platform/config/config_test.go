package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "petclinic", cfg.App.Name)
}

func TestLoadPrefixedEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PETCLINIC_SERVER_PORT", "9090")
	t.Setenv("PETCLINIC_STORAGE_DRIVER", "sqlite")
	t.Setenv("PETCLINIC_STORAGE_DSN", "petclinic.db")
	t.Setenv("PETCLINIC_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "petclinic.db", cfg.Storage.DSN)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoadLegacyEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "7070")
	t.Setenv("DB_DSN", "postgres://localhost/petclinic")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8181
  write_timeout: 30s
logger:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadRejectsBadDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PETCLINIC_STORAGE_DRIVER", "mongo")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadRequiresDSN(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PETCLINIC_STORAGE_DRIVER", "postgres")

	_, err := Load("")
	require.ErrorContains(t, err, "storage.dsn")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
