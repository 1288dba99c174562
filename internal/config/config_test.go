package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 4, cfg.MaxConcurrentFetches)
	assert.Equal(t, "gg-map", cfg.ContainerClass)
	assert.Equal(t, "詳細を見る", cfg.LinkLabel)
	assert.Equal(t, int64(2<<20), cfg.MaxConfigBytes)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=:9090\nDB_SOURCE=postgres://file\nFETCH_TIMEOUT=3s\nMAX_CONCURRENT_FETCHES=0\nMAX_CONFIG_BYTES=65536\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	t.Setenv("DB_SOURCE", "postgres://env")
	t.Setenv("LINK_LABEL", "View details")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "postgres://env", cfg.DBSource)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 1, cfg.MaxConcurrentFetches)
	assert.Equal(t, "View details", cfg.LinkLabel)
	assert.Equal(t, int64(65536), cfg.MaxConfigBytes)
}
