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
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/internal/iodb"
	"github.com/gnames/gnfixture/internal/iofixture"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check database connections of all profiles",
		Long: `Connect to the database of every profile and report the result.

Connections are checked concurrently, --jobs limits the number of
simultaneous connections.

Examples:
  gnfixture check
  gnfixture check -j 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}

	return checkCmd
}

func runCheck(cmd *cobra.Command) error {
	fx, err := iofixture.New(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer fx.Close()

	names := fx.Profiles().Names()
	errs := make([]error, len(names))

	ctx := context.Background()
	var g errgroup.Group
	g.SetLimit(max(cfg.JobsNumber, 1))
	for i, name := range names {
		g.Go(func() error {
			errs[i] = checkProfile(ctx, fx, name)
			return nil
		})
	}
	g.Wait()

	out := cmd.OutOrStdout()
	var failed int
	for i, name := range names {
		label := name
		if label == "" {
			label = "(default)"
		}
		if errs[i] != nil {
			failed++
			fmt.Fprintf(out, "FAIL\t%s\n", label)
			printError(errs[i])
			continue
		}
		fmt.Fprintf(out, "OK\t%s\n", label)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d profiles cannot connect", failed, len(names))
	}
	return nil
}

// checkProfile opens and closes its own connection, so profiles do not
// wait for each other.
func checkProfile(
	ctx context.Context,
	fx *iofixture.Fixture,
	name string,
) error {
	dbCfg, err := fx.DatabaseConfig(name)
	if err != nil {
		return err
	}
	op := iodb.NewOperator(false)
	if err = op.Connect(ctx, dbCfg); err != nil {
		slog.Warn("Profile database is not available",
			"profile", name, "error", err)
		return err
	}
	return op.Close()
}
