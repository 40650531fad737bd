package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/users/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.True(t, cfg.UseAltScreen())
}

func TestLoad_Overrides(t *testing.T) {
	p := writeFile(t, "theme: neon\nlog_level: debug\nchar_limit: 40\nalt_screen: false\n")

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 40, cfg.CharLimit)
	assert.Equal(t, "User name...", cfg.Placeholder)
	assert.False(t, cfg.UseAltScreen())
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = config.Load(writeFile(t, "colour: red\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = config.Load(writeFile(t, "char_limit: [1\n"))
	assert.Error(t, err)
}
