// Package config provides configuration management for GNfixture.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest):
// profile properties > CLI flags > env vars > config.yaml > defaults
//
// Profile properties (gnfixture.properties and the files it declares with
// profile.<name> keys) only touch database settings. They are translated to
// Options by the profile package and applied on a copy of the Config.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: dialect, url, host, port, user, password, database,
//     ssl_mode, schema, batch_size
//   - Fixture: properties_file, resource_dirs, data_dir, setup_suffix,
//     verify_suffix, auto_marker
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - WithProgress (set by CLI commands that insert data)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNFIXTURE_ prefix with underscores for nesting:
//
//	GNFIXTURE_DATABASE_DIALECT=sqlite
//	GNFIXTURE_DATABASE_URL=/tmp/test.db
//	GNFIXTURE_FIXTURE_DATA_DIR=testdata
//	GNFIXTURE_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete GNfixture configuration.
type Config struct {
	// Database contains connection settings used when a profile does not
	// override them.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Fixture contains dataset and properties lookup settings.
	Fixture FixtureConfig `mapstructure:"fixture" yaml:"fixture"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations,
	// for example checking connections of all profiles.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// WithProgress shows a progress bar during inserts.
	// Runtime-only, CLI sets it, tests leave it off.
	WithProgress bool `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains database connection parameters.
type DatabaseConfig struct {
	// Dialect of the database.
	// Valid values: "postgresql", "sqlite".
	Dialect string `mapstructure:"dialect" yaml:"dialect"`

	// URL is a complete connection string. When it is set, Host, Port, User,
	// Password, Database and SSLMode are ignored. For sqlite it is the path
	// to the database file.
	URL string `mapstructure:"url" yaml:"url"`

	// Host is the database server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the database server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Schema qualifies table names of datasets. Empty means the default
	// schema of the connection.
	Schema string `mapstructure:"schema" yaml:"schema"`

	// BatchSize is the number of rows inserted per statement batch.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// FixtureConfig contains settings for locating properties and datasets.
type FixtureConfig struct {
	// PropertiesFile is the resource name of the default profile properties.
	PropertiesFile string `mapstructure:"properties_file" yaml:"properties_file"`

	// ResourceDirs is the search path for properties resources.
	// The first directory that contains a resource wins.
	ResourceDirs []string `mapstructure:"resource_dirs" yaml:"resource_dirs"`

	// DataDir is the root directory of dataset files.
	// Dataset names are resolved relative to DataDir joined with the
	// package of a test identity.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// SetupSuffix is appended to default dataset names for setup.
	SetupSuffix string `mapstructure:"setup_suffix" yaml:"setup_suffix"`

	// VerifySuffix is appended to default dataset names for verification.
	VerifySuffix string `mapstructure:"verify_suffix" yaml:"verify_suffix"`

	// AutoMarker is the dataset value that requests an auto-generated value.
	AutoMarker string `mapstructure:"auto_marker" yaml:"auto_marker"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Dialect:   "postgresql",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnfixture_test",
			SSLMode:   "disable",
			BatchSize: 1_000,
		},
		Fixture: FixtureConfig{
			PropertiesFile: DefaultPropertiesFile,
			ResourceDirs:   []string{".", "testdata"},
			DataDir:        "testdata",
			SetupSuffix:    "",
			VerifySuffix:   "-verify",
			AutoMarker:     "@auto",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// Copy returns a deep copy of the Config, so per-profile options do not
// leak into the shared configuration.
func (c *Config) Copy() *Config {
	res := *c
	res.Fixture.ResourceDirs = append([]string(nil), c.Fixture.ResourceDirs...)
	return &res
}
