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
	"github.com/gnames/gnfixture/pkg/profile"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type profileOutput struct {
	Name       string            `json:"name"       yaml:"name"`
	Properties map[string]string `json:"properties" yaml:"properties"`
}

// getProfilesCmd returns the profiles command.
func getProfilesCmd() *cobra.Command {
	var asJSON bool

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles and their properties",
		Long: `List profiles found in the default properties resource.

The default profile has an empty name. Passwords are masked.

Examples:
  gnfixture profiles
  gnfixture profiles --json
  gnfixture profiles --resources conf,testdata`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfiles(cmd, asJSON)
		},
	}

	profilesCmd.Flags().BoolVar(&asJSON, "json", false,
		"print profiles as JSON instead of YAML")

	return profilesCmd
}

func runProfiles(cmd *cobra.Command, asJSON bool) error {
	fx, err := iofixture.New(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer fx.Close()

	out := profilesOutput(fx.Profiles())

	var res []byte
	if asJSON {
		res, err = gnfmt.GNjson{Pretty: true}.Encode(out)
	} else {
		res, err = yaml.Marshal(out)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(res))
	return nil
}

func profilesOutput(idx profile.Index) []profileOutput {
	names := idx.Names()
	res := make([]profileOutput, 0, len(names))
	for _, name := range names {
		props := make(map[string]string, len(idx[name]))
		for k, v := range idx[name] {
			if k == profile.KeyPassword && v != "" {
				v = "****"
			}
			props[k] = v
		}
		res = append(res, profileOutput{Name: name, Properties: props})
	}
	return res
}
