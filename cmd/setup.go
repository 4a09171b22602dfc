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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/internal/iofixture"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getSetupCmd returns the setup command.
func getSetupCmd() *cobra.Command {
	var rf requestFlags
	var profileName string

	setupCmd := &cobra.Command{
		Use:   "setup TYPE [METHOD]",
		Short: "Load dataset files of a test into the database",
		Long: `Load dataset files of a test into the database of a profile.

All rows of the dataset tables are deleted, then dataset rows are
inserted, in one transaction. Auto marker values are generated from
column types of the database.

Examples:
  gnfixture setup TestPerson
  gnfixture setup TestPerson find_by_name -p reporting
  gnfixture setup TestPerson -f person.xml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, args, &rf, profileName)
		},
	}

	addRequestFlags(setupCmd, &rf)
	addProfileFlag(setupCmd, &profileName)

	return setupCmd
}

func runSetup(
	cmd *cobra.Command,
	args []string,
	rf *requestFlags,
	profileName string,
) error {
	start := time.Now()
	ctx := context.Background()
	cfg.Update([]config.Option{config.OptWithProgress(true)})

	fx, err := iofixture.New(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer fx.Close()

	ds, err := fx.Setup(ctx, profileName, rf.request(args))
	if err != nil {
		printError(err)
		return err
	}

	gn.Info("Inserted <em>%s</em> rows into <em>%d</em> tables in %s",
		humanize.Comma(int64(ds.RowsNum())),
		len(ds.Tables),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}
