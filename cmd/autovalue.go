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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/autovalue"
	"github.com/spf13/cobra"
)

// getAutovalueCmd returns the autovalue command.
func getAutovalueCmd() *cobra.Command {
	var count int

	autovalueCmd := &cobra.Command{
		Use:   "autovalue TABLE COLUMN TYPE",
		Short: "Print auto-generated values for a column",
		Long: `Print values that replace the auto marker in a column.

TYPE is a database type name, for example integer, varchar(64),
numeric, date or "timestamp without time zone". Values are the same that
the first rows of a dataset would get.

Examples:
  gnfixture autovalue person name varchar
  gnfixture autovalue person born date -n 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAutovalue(cmd, args, count)
		},
	}

	autovalueCmd.Flags().IntVarP(&count, "number", "n", 3,
		"number of values to print")

	return autovalueCmd
}

func runAutovalue(cmd *cobra.Command, args []string, count int) error {
	table, column := args[0], args[1]
	dt, err := autovalue.ParseDataType(args[2])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	engine := autovalue.New()
	for range count {
		val, err := engine.Generate(table, column, dt)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), val)
	}
	return nil
}
