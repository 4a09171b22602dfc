/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/internal/ioconfig"
	"github.com/gnames/gnfixture/internal/iodb"
	"github.com/gnames/gnfixture/internal/iofs"
	"github.com/gnames/gnfixture/internal/iologger"
	app "github.com/gnames/gnfixture/pkg"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnfixture",
		Short:   "GNfixture loads database fixtures for integration tests",
		Long: `GNfixture loads reproducible database fixtures for integration tests.

Datasets are flat XML files. Every element under the root is a row, the
element name is a table name and attributes are columns. A value equal to
the auto marker (default "@auto") is replaced by a generated value that
depends on the column type.

Database connection settings come from profiles. The default profile is
read from gnfixture.properties, other profiles are declared there with
"profile.<name>=<resource>" keys.

Configuration precedence (highest to lowest):
  1. Profile properties (database.* keys)
  2. CLI flags (--dialect, --url, --data-dir, etc.)
  3. Environment variables (GNFIXTURE_*, also read from ./.env)
  4. Config file (~/.config/gnfixture/config.yaml)
  5. Built-in defaults

Environment variables use underscores for nesting, for example
database.host becomes GNFIXTURE_DATABASE_HOST.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionFlag(cmd)
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for gnfixture")

	pf := rootCmd.PersistentFlags()
	pf.String("dialect", "", "database dialect (postgresql, sqlite)")
	pf.String("url", "", "database connection string or sqlite file")
	pf.String("properties", "", "resource name of default profile properties")
	pf.StringSlice("resources", nil, "directories with properties resources")
	pf.String("data-dir", "", "root directory of dataset files")
	pf.IntP("jobs", "j", 0, "number of concurrent jobs")

	rootCmd.AddCommand(
		getProfilesCmd(),
		getResolveCmd(),
		getSetupCmd(),
		getCheckCmd(),
		getAutovalueCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Hardcoded defaults until the user's config is loaded.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioconfig.LoadEnvFile(".env"); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg, err = ioconfig.Load(config.ConfigFilePath(homeDir))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	opts, err = ioconfig.FlagOptions(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	opts = append(opts, config.OptHomeDir(homeDir))
	cfg.Update(opts)

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"dialect", cfg.Database.Dialect,
	)
	return nil
}

// printError shows a detailed user message for errors that carry one,
// other errors are printed with their short message.
func printError(err error) {
	var connErr iodb.ConnectionError
	if errors.As(err, &connErr) {
		gnlib.PrintUserMessage(connErr)
		return
	}
	gn.PrintErrorMessage(err)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
