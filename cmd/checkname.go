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
	"github.com/gnames/npdb/internal/iosources"
	"github.com/gnames/npdb/pkg/names"
	"github.com/spf13/cobra"
)

// getCheckNameCmd returns a command that tests names against
// low-quality name rules.
func getCheckNameCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check-name NAME...",
		Short: "Check if names are placeholders",
		Long: `Check names against low-quality name rules of
~/.config/npdb/rules.yaml.

A low-quality name (a vendor id, a CAS number, a formula, 'Compound
42'...) is replaced by a better name during curation. For every name
the matching rule is printed.

Examples:
  npdb check-name "Quercetin" "CHEBI:12345"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := iosources.LoadRules(cfg.HomeDir)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			checkNames(cmd, names.New(rules), args)
			return nil
		},
	}
	return checkCmd
}

func checkNames(cmd *cobra.Command, nc *names.Curator, args []string) {
	out := cmd.OutOrStdout()
	for _, v := range args {
		if r, ok := nc.Match(v); ok {
			fmt.Fprintf(out, "%q\tlow-quality\t%s\n", v, r)
			continue
		}
		fmt.Fprintf(out, "%q\tok\n", v)
	}
}
