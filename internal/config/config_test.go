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

	assert.Equal(t, ":8081", cfg.Server.Address)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, "cookie", cfg.Session.Backend)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "es", cfg.I18n.Default)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EDU_API_BASEURL", "http://api.test/api/")
	t.Setenv("EDU_SESSION_BACKEND", "POSTGRES")
	t.Setenv("EDU_CACHE_TTL", "5m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://api.test/api", cfg.API.BaseURL)
	assert.Equal(t, "postgres", cfg.Session.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EDU_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("EDU_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	file := filepath.Join(dir, "eduaventuras.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server:\n  address: \":9000\"\ni18n:\n  remote: true\n"), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.True(t, cfg.I18n.Remote)
}

func TestLoadMissingConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
