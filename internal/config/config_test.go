package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, defaultPrompt, cfg.Prompt)
	assert.Equal(t, home, cfg.HomeDir)
	assert.False(t, cfg.Color)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := "prompt: '> '\nhome_dir: /tmp\ncolor: true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "/tmp", cfg.HomeDir)
	assert.True(t, cfg.Color)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
