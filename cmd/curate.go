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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/npdb/internal/iocurate"
	"github.com/gnames/npdb/internal/iodb"
	"github.com/gnames/npdb/internal/iofetch"
	"github.com/gnames/npdb/internal/iosources"
	"github.com/gnames/npdb/pkg/names"
	"github.com/gnames/npdb/pkg/npdb"
	"github.com/gnames/npdb/pkg/schema"
	"github.com/gnames/npdb/pkg/sources"
	"github.com/spf13/cobra"
)

// getCurateCmd returns the curate command that merges vendor exports.
func getCurateCmd() *cobra.Command {
	curateCmd := &cobra.Command{
		Use:   "curate [source...]",
		Short: "Merge vendor exports into natural products",
		Long: `Merge vendor exports into records of natural_products.

Vendors: knapsack, chebi, cmaup, pubchem. Without arguments all of
them are merged in this order.

Locations of vendor files and tags of every vendor are configured in
~/.config/npdb/sources.yaml. A location can be a local path, an
http(s) URL or an s3://bucket/key object.

Rows with unknown accession ids are logged and skipped. Rows with too
few columns are logged and counted as malformed.

Examples:
  npdb curate
  npdb curate chebi pubchem
  npdb curate knapsack --dry-run`,
		ValidArgs: sources.VendorOrder,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs := args
			if len(srcs) == 0 {
				srcs = sources.VendorOrder
			}
			return runPass(cmd, func(ctx context.Context, cur npdb.Curator) error {
				for _, v := range srcs {
					if _, err := cur.Vendor(ctx, v); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	passFlags(curateCmd)
	refreshFlag(curateCmd)
	return curateCmd
}

// getNamesCmd returns the names command.
func getNamesCmd() *cobra.Command {
	namesCmd := &cobra.Command{
		Use:   "names",
		Short: "Apply IUPAC names and clean placeholder names",
		Long: `Apply systematic (IUPAC) names from the iupac source.

For every record of the file:
  - IUPAC name is set if the record has none
  - a placeholder display name (vendor id, CAS number, formula...)
    is replaced by the IUPAC name
  - a display name shaped like a CAS number becomes the CAS number
  - placeholder synonyms are removed

Placeholder rules live in ~/.config/npdb/rules.yaml, use
'npdb check-name' to test them.

Examples:
  npdb names
  npdb names --title-case`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPass(cmd, func(ctx context.Context, cur npdb.Curator) error {
				_, err := cur.Names(ctx)
				return err
			})
		},
	}
	passFlags(namesCmd)
	refreshFlag(namesCmd)
	namesCmd.Flags().BoolP("title-case", "t", false,
		"capitalize words of names that differ from IUPAC names")
	return namesCmd
}

// getClassifyCmd returns the classify command.
func getClassifyCmd() *cobra.Command {
	var useAPI bool
	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "Import chemical classification",
		Long: `Set chemical superclass, class, subclass and direct parent of
records by InChIKey.

By default the classification export configured as the
'classification' source in sources.yaml is used. Records without a
match keep their classification.

With --api, structures of records without classification are sent to
the ClassyFire service configured in config.yaml. Results are cached
in ~/.cache/npdb/classyfire.sqlite.

Examples:
  npdb classify
  npdb classify --api --after CNP0123456`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPass(cmd, func(ctx context.Context, cur npdb.Curator) error {
				_, err := cur.Classify(ctx, useAPI)
				return err
			})
		},
	}
	passFlags(classifyCmd)
	refreshFlag(classifyCmd)
	afterFlag(classifyCmd)
	classifyCmd.Flags().BoolVar(&useAPI, "api", false,
		"classify structures with the ClassyFire service")
	return classifyCmd
}

const (
	passXRefs    = iocurate.PassXRefs
	passTaxIDs   = iocurate.PassTaxIDs
	passAnnotate = iocurate.PassAnnotate
	passTaxa     = iocurate.PassTaxa
)

var collectionDocs = map[string][2]string{
	passXRefs: {
		"Rebuild normalized cross-references",
		`Remove duplicate cross-references and rebuild display
cross-references with readable source names and links.`,
	},
	passTaxIDs: {
		"Strip qualifiers from taxonomy ids",
		`Remove everything from the first '-' of taxonomy ids, for example
'3897-2' becomes '3897'.`,
	},
	passAnnotate: {
		"Recompute annotation levels",
		`Recompute annotation levels of all records. A record gets one point,
plus one for a curated name, one for a trusted database, one for an
organism and one for a literature reference. Trusted databases are
set in config.yaml.`,
	},
	passTaxa: {
		"Replace organism names with canonical forms",
		`Parse organism names and replace them with canonical scientific
names. Names that do not parse, like 'plants', stay as they are.`,
	},
}

// getCollectionCmd returns a command running a transform pass over all
// records.
func getCollectionCmd(pass string) *cobra.Command {
	doc := collectionDocs[pass]
	res := &cobra.Command{
		Use:   pass,
		Short: doc[0],
		Long: doc[1] + `

Records are processed in accession id order. Progress is logged after
every batch, use --after with the last logged accession id to resume.

Examples:
  npdb ` + pass + `
  npdb ` + pass + ` --after CNP0123456 --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPass(cmd, func(ctx context.Context, cur npdb.Curator) error {
				_, err := cur.Collection(ctx, pass)
				return err
			})
		},
	}
	passFlags(res)
	afterFlag(res)
	return res
}

type passFunc func(ctx context.Context, cur npdb.Curator) error

// runPass applies pass flags, connects to the database and runs fn.
// Interrupt signals cancel the pass between batches.
func runPass(cmd *cobra.Command, fn passFunc) error {
	cfg.Update(passOptions(cmd))

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	exists, err := op.TableExists(ctx, schema.NaturalProduct{}.TableName())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !exists {
		err = iodb.EmptyDatabaseError(cfg.Database.Host, cfg.Database.Database)
		gn.PrintErrorMessage(err)
		return err
	}

	st, err := iodb.NewStore(op)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	rules, err := iosources.LoadRules(cfg.HomeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
		if err = iofetch.New(cfg).ClearCache(); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Removed cached vendor files")
	}

	if cfg.Curate.DryRun {
		gn.Warn("Dry run: changes are logged, not written")
	}

	cur := iocurate.New(cfg, st, names.New(rules))
	if err = fn(ctx, cur); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

