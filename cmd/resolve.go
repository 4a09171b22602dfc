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
	"github.com/gnames/gnfixture/internal/iofixture"
	"github.com/spf13/cobra"
)

// getResolveCmd returns the resolve command.
func getResolveCmd() *cobra.Command {
	var rf requestFlags

	resolveCmd := &cobra.Command{
		Use:   "resolve TYPE [METHOD]",
		Short: "Show dataset files of a test",
		Long: `Show dataset files that setup would load for a test.

Without --file names the method file <TYPE>.<METHOD><suffix>.xml is used
if it exists, otherwise the class file <TYPE><suffix>.xml.

Examples:
  gnfixture resolve TestPerson
  gnfixture resolve TestPerson find_by_name
  gnfixture resolve TestPerson --verify
  gnfixture resolve TestPerson -f person.xml -f address.xml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, &rf)
		},
	}

	addRequestFlags(resolveCmd, &rf)

	return resolveCmd
}

func runResolve(cmd *cobra.Command, args []string, rf *requestFlags) error {
	fx, err := iofixture.New(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer fx.Close()

	sources, err := fx.Sources(rf.request(args))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, v := range sources {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Name, v.Path)
	}
	return nil
}
