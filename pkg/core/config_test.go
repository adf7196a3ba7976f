package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compiler: clang++\njobs: 4\n"), 0o644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "clang++", cfg.Compiler)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "CONDA_PREFIX", cfg.EnvVar)
	assert.Equal(t, "-O3", cfg.Optimization)
	assert.Equal(t, "c++11", cfg.CXXStandard)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: [1, 2\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.PythonVersion = "3.11"
	cfg.Debug = true

	require.NoError(t, SaveConfig(cfg, path))
	loaded, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
