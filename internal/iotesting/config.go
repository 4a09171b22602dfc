// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnfixture/internal/ioconfig"
	"github.com/gnames/gnfixture/pkg/config"
)

// TestDatabaseName is the PostgreSQL database used by integration tests.
// Tests never touch a database with another name.
const TestDatabaseName = "gnfixture_test"

// GetTestConfig returns configuration for PostgreSQL integration tests.
// It reads ~/.config/gnfixture/config.yaml and GNFIXTURE_ environment
// variables, the dialect and the database name are always replaced.
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    ...
//	}
func GetTestConfig() *config.Config {
	var path string
	if home, err := os.UserHomeDir(); err == nil {
		path = config.ConfigFilePath(home)
	}

	cfg, err := ioconfig.Load(path)
	if err != nil {
		cfg = config.New()
	}

	cfg.Database.Dialect = "postgresql"
	cfg.Database.URL = ""
	cfg.Database.Database = TestDatabaseName
	return cfg
}

// GetTestDatabaseConfig returns only the database part of GetTestConfig.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SQLiteDatabaseConfig returns a database configuration for a fresh
// sqlite file in a temporary directory of the test.
func SQLiteDatabaseConfig(t testing.TB) *config.DatabaseConfig {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDialect("sqlite"),
		config.OptDatabaseURL(filepath.Join(t.TempDir(), "test.db")),
	})
	return &cfg.Database
}

// SetupTempHome points HOME to a temporary directory, so commands create
// their config and log files there.
func SetupTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}
