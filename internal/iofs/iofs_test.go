package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnfixture/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// repeated calls are fine
	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	for _, dir := range []string{
		filepath.Join(tmpDir, ".config", "gnfixture"),
		filepath.Join(tmpDir, ".local", "share", "gnfixture", "logs"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}
}

func TestEnsureDirsError(t *testing.T) {
	tmpDir := t.TempDir()
	// a file where a directory should be
	require.NoError(t,
		os.WriteFile(filepath.Join(tmpDir, ".config"), nil, 0644))

	err := EnsureDirs(tmpDir)
	assert.Error(t, err)
}

func TestTouchDirExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "existing")
	require.NoError(t, os.MkdirAll(dir, 0700))

	require.NoError(t, touchDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm(),
		"existing directory is not modified")
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gnfixture", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	custom := "database:\n  host: myhost\n"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content),
		"existing config file is not overwritten")
}

// TestConfigYAMLDefaults keeps the embedded config in line with
// config.New().
func TestConfigYAMLDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	def := config.New()
	assert.Equal(t, def.Database, cfg.Database)
	assert.Equal(t, def.Fixture, cfg.Fixture)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, 0, cfg.JobsNumber)
}
