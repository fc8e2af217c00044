package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.False(t, Exists())
	})

	t.Run("keeps defaults for sections missing from the file", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		writeConfig(t, dir, "[appearance]\ntheme = \"tokyo-night\"\n")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
		assert.Equal(t, 5, cfg.Defaults.WorkDaysPerWeek)
		assert.Equal(t, "$", cfg.General.Currency)
	})

	t.Run("rejects an out-of-range schedule default", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		writeConfig(t, dir, "[defaults]\nwork_days_per_week = 9\n")

		cfg, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "defaults.work_days_per_week")
		assert.Contains(t, err.Error(), "at most 7")
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("wraps parse errors", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		writeConfig(t, dir, "[general\n")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})
}

func TestSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.Defaults.SalaryPeriod = "monthly"
	cfg.Defaults.WorkDaysPerWeek = 4
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Server.LogFormat = "xml"

	err := Save(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.log_format")
	assert.False(t, Exists())
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("WORTHIT_ADDR", "")
	assert.Equal(t, "127.0.0.1:8787", GetServerAddr(cfg))

	t.Setenv("WORTHIT_ADDR", ":9000")
	t.Setenv("WORTHIT_LOG_LEVEL", "debug")
	t.Setenv("WORTHIT_THEME", "terminal")
	assert.Equal(t, ":9000", GetServerAddr(cfg))
	assert.Equal(t, "debug", GetLogLevel(cfg))
	assert.Equal(t, "terminal", GetTheme(cfg))
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	assert.Equal(t, filepath.Join("/tmp/cfg", "worthit", "config.toml"), Path())
	assert.Equal(t, filepath.Join("/tmp/data", "worthit", "prefs.db"), PrefsPath())
}

func writeConfig(t *testing.T, xdgDir, body string) {
	t.Helper()
	dir := filepath.Join(xdgDir, "worthit")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))
}
