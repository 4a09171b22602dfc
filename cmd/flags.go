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
	"os"

	app "github.com/gnames/gnfixture/pkg"
	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/gnames/gnfixture/pkg/profile"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// requestFlags are flags of commands that work with a dataset request.
type requestFlags struct {
	pkg    string
	files  []string
	verify bool
}

func addRequestFlags(cmd *cobra.Command, rf *requestFlags) {
	cmd.Flags().StringVar(&rf.pkg, "package", "",
		"package directory of the test under data directory")
	cmd.Flags().StringSliceVarP(&rf.files, "file", "f", nil,
		"dataset file names, they replace default names")
	cmd.Flags().BoolVar(&rf.verify, "verify", false,
		"use verify suffix for default names")
}

// request creates a dataset request from TYPE [METHOD] arguments.
func (rf *requestFlags) request(args []string) dataset.Request {
	id := dataset.Identity{Package: rf.pkg, Type: args[0]}
	if len(args) > 1 {
		id.Method = args[1]
	}
	suffix := cfg.Fixture.SetupSuffix
	if rf.verify {
		suffix = cfg.Fixture.VerifySuffix
	}
	return dataset.Request{ID: id, Suffix: suffix, Names: rf.files}
}

func addProfileFlag(cmd *cobra.Command, name *string) {
	cmd.Flags().StringVarP(name, "profile", "p", profile.Default,
		"profile name, default profile if empty")
}
