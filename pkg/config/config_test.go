package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "duckdb", cfg.Storage.Driver)
	assert.Equal(t, 10*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 0, cfg.Probe.Concurrency)
	assert.Equal(t, "mangas_backup.json", filepath.Base(cfg.Backup.Path))
	assert.NotEmpty(t, cfg.Bookmarks)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: sqlite3
  path: /tmp/mangas.sqlite
probe:
  timeout: 3s
  concurrency: 4
  ratePerHost: 1.5
server:
  checkInterval: 30m
bookmarks:
  - name: Example
    url: https://example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/mangas.sqlite", cfg.Storage.Path)
	assert.Equal(t, 3*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 4, cfg.Probe.Concurrency)
	assert.Equal(t, 1.5, cfg.Probe.RatePerHost)
	assert.Equal(t, "mangatrack/1.0", cfg.Probe.UserAgent, "unset keys keep defaults")
	assert.Equal(t, 30*time.Minute, cfg.Server.CheckInterval)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []Bookmark{{Name: "Example", URL: "https://example.com"}}, cfg.Bookmarks)
}

func TestLoadKeepsDefaultBookmarks(t *testing.T) {
	cfg, err := Load(writeConfig(t, "probe:\n  concurrency: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, Default().Bookmarks, cfg.Bookmarks)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "probe: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "duckdb", cfg.Storage.Driver)
}

func TestLoadFromXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "mangatrack")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage:\n  driver: sqlite3\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", cfg.Storage.Driver)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MANGATRACK_DB_DRIVER", "sqlite3")
	t.Setenv("MANGATRACK_DB_PATH", "/data/m.db")
	t.Setenv("MANGATRACK_BACKUP_PATH", "/data/backup.json")
	t.Setenv("MANGATRACK_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("MANGATRACK_PROBE_TIMEOUT", "2s")
	t.Setenv("MANGATRACK_PROBE_CONCURRENCY", "3")

	cfg := Default()
	require.NoError(t, ApplyEnvOverrides(&cfg))

	assert.Equal(t, "sqlite3", cfg.Storage.Driver)
	assert.Equal(t, "/data/m.db", cfg.Storage.Path)
	assert.Equal(t, "/data/backup.json", cfg.Backup.Path)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Probe.Timeout)
	assert.Equal(t, 3, cfg.Probe.Concurrency)
}

func TestApplyEnvOverridesInvalid(t *testing.T) {
	t.Setenv("MANGATRACK_PROBE_CONCURRENCY", "many")
	cfg := Default()
	assert.Error(t, ApplyEnvOverrides(&cfg))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "x.db"), expandHome("~/x.db"))
	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, "/abs/x.db", expandHome("/abs/x.db"))
}
