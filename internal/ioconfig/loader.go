// Package ioconfig loads configuration from config.yaml, environment
// variables and command line flags.
// This is an impure package that handles file system and flag operations.
package ioconfig

import (
	"os"
	"strings"

	"github.com/gnames/gnfixture/internal/iofs"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables.
const EnvPrefix = "GNFIXTURE"

// LoadEnvFile exports variables of a dotenv file to the environment, so
// GNFIXTURE_* settings can be kept next to a project. A missing file is
// not an error. Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return iofs.ReadFileError(path, err)
	}
	return nil
}

// Load reads configuration from a YAML file and environment variables.
// A missing file is not an error, then defaults and environment are used.
// Precedence: env vars > config file > defaults.
func Load(configPath string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	initEnvVars(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err = v.ReadInConfig(); err != nil {
				return nil, iofs.ReadFileError(configPath, err)
			}
		}
	}

	var cfgViper config.Config
	if err := v.Unmarshal(&cfgViper); err != nil {
		return nil, iofs.ReadFileError(configPath, err)
	}

	res := config.New()
	res.Update(cfgViper.ToOptions())
	return res, nil
}

// setDefaults makes viper aware of every persistent key, so environment
// variables are seen even when config file does not have the key.
func setDefaults(v *viper.Viper) {
	d := config.New()
	v.SetDefault("database.dialect", d.Database.Dialect)
	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.database", d.Database.Database)
	v.SetDefault("database.ssl_mode", d.Database.SSLMode)
	v.SetDefault("database.schema", d.Database.Schema)
	v.SetDefault("database.batch_size", d.Database.BatchSize)
	v.SetDefault("fixture.properties_file", d.Fixture.PropertiesFile)
	v.SetDefault("fixture.resource_dirs", d.Fixture.ResourceDirs)
	v.SetDefault("fixture.data_dir", d.Fixture.DataDir)
	v.SetDefault("fixture.setup_suffix", d.Fixture.SetupSuffix)
	v.SetDefault("fixture.verify_suffix", d.Fixture.VerifySuffix)
	v.SetDefault("fixture.auto_marker", d.Fixture.AutoMarker)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.destination", d.Log.Destination)
	v.SetDefault("jobs_number", d.JobsNumber)
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables are bound one by one, they match the fields of
	// config.ToOptions().
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.dialect", EnvPrefix+"_DATABASE_DIALECT")
	v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL")
	v.BindEnv("database.host", EnvPrefix+"_DATABASE_HOST")
	v.BindEnv("database.port", EnvPrefix+"_DATABASE_PORT")
	v.BindEnv("database.user", EnvPrefix+"_DATABASE_USER")
	v.BindEnv("database.password", EnvPrefix+"_DATABASE_PASSWORD")
	v.BindEnv("database.database", EnvPrefix+"_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", EnvPrefix+"_DATABASE_SSL_MODE")
	v.BindEnv("database.schema", EnvPrefix+"_DATABASE_SCHEMA")
	v.BindEnv("database.batch_size", EnvPrefix+"_DATABASE_BATCH_SIZE")

	// Fixture configuration
	v.BindEnv("fixture.properties_file", EnvPrefix+"_FIXTURE_PROPERTIES_FILE")
	v.BindEnv("fixture.resource_dirs", EnvPrefix+"_FIXTURE_RESOURCE_DIRS")
	v.BindEnv("fixture.data_dir", EnvPrefix+"_FIXTURE_DATA_DIR")
	v.BindEnv("fixture.setup_suffix", EnvPrefix+"_FIXTURE_SETUP_SUFFIX")
	v.BindEnv("fixture.verify_suffix", EnvPrefix+"_FIXTURE_VERIFY_SUFFIX")
	v.BindEnv("fixture.auto_marker", EnvPrefix+"_FIXTURE_AUTO_MARKER")

	// Log configuration
	v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL")
	v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT")
	v.BindEnv("log.destination", EnvPrefix+"_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", EnvPrefix+"_JOBS_NUMBER")

	v.AutomaticEnv()
}

// FlagOptions converts command line flags that were set by a user to
// config options. Flags that are not defined by the command are ignored.
func FlagOptions(cmd *cobra.Command) ([]config.Option, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	var res []config.Option
	if v.IsSet("dialect") {
		res = append(res, config.OptDatabaseDialect(v.GetString("dialect")))
	}
	if v.IsSet("url") {
		res = append(res, config.OptDatabaseURL(v.GetString("url")))
	}
	if v.IsSet("properties") {
		res = append(res, config.OptFixturePropertiesFile(v.GetString("properties")))
	}
	if v.IsSet("resources") {
		res = append(res, config.OptFixtureResourceDirs(v.GetStringSlice("resources")))
	}
	if v.IsSet("data-dir") {
		res = append(res, config.OptFixtureDataDir(v.GetString("data-dir")))
	}
	if v.IsSet("jobs") {
		res = append(res, config.OptJobsNumber(v.GetInt("jobs")))
	}
	return res, nil
}
