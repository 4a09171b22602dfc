package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnfixture/internal/ioconfig"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `
database:
  dialect: sqlite
  url: /tmp/fixture.db
  batch_size: 50
fixture:
  data_dir: fixtures
  resource_dirs:
    - conf
    - testdata
log:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := ioconfig.Load(writeConfig(t, configYAML))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Dialect)
	assert.Equal(t, "/tmp/fixture.db", cfg.Database.URL)
	assert.Equal(t, 50, cfg.Database.BatchSize)
	assert.Equal(t, "fixtures", cfg.Fixture.DataDir)
	assert.Equal(t, []string{"conf", "testdata"}, cfg.Fixture.ResourceDirs)
	assert.Equal(t, "debug", cfg.Log.Level)

	// keys missing in the file keep defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "@auto", cfg.Fixture.AutoMarker)
	assert.Equal(t, config.DefaultPropertiesFile, cfg.Fixture.PropertiesFile)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := ioconfig.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.New().Database, cfg.Database)
}

func TestLoadBadFile(t *testing.T) {
	_, err := ioconfig.Load(writeConfig(t, "database: [unclosed"))
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GNFIXTURE_DATABASE_DIALECT", "sqlite")
	t.Setenv("GNFIXTURE_DATABASE_PORT", "6543")
	t.Setenv("GNFIXTURE_FIXTURE_AUTO_MARKER", "[auto]")

	cfg, err := ioconfig.Load(writeConfig(t, "database:\n  dialect: postgresql\n"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Dialect, "env wins over file")
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "[auto]", cfg.Fixture.AutoMarker)
}

func TestLoadEnvFile(t *testing.T) {
	// t.Setenv restores the previous values after the test.
	t.Setenv("GNFIXTURE_DATABASE_HOST", "")
	t.Setenv("GNFIXTURE_DATABASE_USER", "kept")
	require.NoError(t, os.Unsetenv("GNFIXTURE_DATABASE_HOST"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"GNFIXTURE_DATABASE_HOST=db.example.org\n"+
			"GNFIXTURE_DATABASE_USER=ignored\n"), 0644))

	require.NoError(t, ioconfig.LoadEnvFile(path))
	cfg, err := ioconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, "kept", cfg.Database.User, "set variables are not overridden")

	assert.NoError(t, ioconfig.LoadEnvFile(filepath.Join(t.TempDir(), "none")))

	bad := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(bad, []byte("BAD-KEY=1\n"), 0644))
	assert.Error(t, ioconfig.LoadEnvFile(bad))
}

func TestFlagOptions(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("dialect", "postgresql", "")
	cmd.Flags().String("url", "", "")
	cmd.Flags().StringSlice("resources", nil, "")
	cmd.Flags().String("data-dir", "testdata", "")
	cmd.Flags().Int("jobs", 1, "")
	require.NoError(t, cmd.ParseFlags([]string{
		"--url", "/tmp/a.db",
		"--resources", "a,b",
		"--jobs", "3",
	}))

	opts, err := ioconfig.FlagOptions(cmd)
	require.NoError(t, err)
	assert.Len(t, opts, 3, "only changed flags become options")

	cfg := config.New()
	cfg.Update(opts)
	assert.Equal(t, "postgresql", cfg.Database.Dialect)
	assert.Equal(t, "/tmp/a.db", cfg.Database.URL)
	assert.Equal(t, []string{"a", "b"}, cfg.Fixture.ResourceDirs)
	assert.Equal(t, "testdata", cfg.Fixture.DataDir)
	assert.Equal(t, 3, cfg.JobsNumber)
}
