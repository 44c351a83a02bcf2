package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendANSI, cfg.Backend)
	assert.False(t, cfg.EnableLogger)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFrom(t *testing.T) {
	path := writeFile(t, `
enable_logger = true
log_file = "/tmp/cellpad-test.log"
backend = "tcell"
ambiguous_wide = false
`)
	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		EnableLogger:  true,
		LogFile:       "/tmp/cellpad-test.log",
		Backend:       BackendTcell,
		AmbiguousWide: false,
	}, cfg)
}

func TestLoadConfigFrom_PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(writeFile(t, `ambiguous_wide = true`))
	require.NoError(t, err)
	assert.True(t, cfg.AmbiguousWide)
	assert.Equal(t, BackendANSI, cfg.Backend)
	assert.Equal(t, "cellpad.log", cfg.LogFile)
}

func TestLoadConfigFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `backend = `},
		{"wrong type", `enable_logger = "yes"`},
		{"bad backend", `backend = "curses"`},
		{"logger without file", "enable_logger = true\nlog_file = \"\""},
		{"ambiguous wide on tcell", "backend = \"tcell\"\nambiguous_wide = true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFrom(writeFile(t, tt.content))
			assert.Error(t, err)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestLoadConfigFrom_Missing(t *testing.T) {
	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "none.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveConfigTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := DefaultConfig()
	want.EnableLogger = true
	want.AmbiguousWide = true

	require.NoError(t, SaveConfigTo(path, want))
	got, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig_UsesUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)

	assert.Equal(t, DefaultConfig(), LoadConfig())

	path, err := Path()
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Backend = BackendTcell
	require.NoError(t, SaveConfigTo(path, cfg))

	assert.Equal(t, BackendTcell, LoadConfig().Backend)
}
