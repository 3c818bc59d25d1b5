package cmd

import (
	"github.com/gnames/npdb/pkg/config"
	"github.com/spf13/cobra"
)

// passFlags adds flags shared by all curation passes.
func passFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("dry-run", "n", false,
		"compute and log changes without writing them")
	cmd.Flags().IntP("batch-size", "b", 0,
		"vendor rows or records per chunk (default from config.yaml)")
}

// afterFlag adds the resume flag of collection passes.
func afterFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("after", "a", "",
		"start after this accession id, for resuming a pass")
}

// passOptions converts explicitly set flags to config options.
func passOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("dry-run") {
		b, _ := flags.GetBool("dry-run")
		res = append(res, config.OptCurateDryRun(b))
	}
	if flags.Changed("batch-size") {
		i, _ := flags.GetInt("batch-size")
		res = append(res, config.OptDatabaseBatchSize(i))
	}
	if flags.Changed("after") {
		s, _ := flags.GetString("after")
		res = append(res, config.OptCurateAfter(s))
	}
	if flags.Changed("title-case") {
		b, _ := flags.GetBool("title-case")
		res = append(res, config.OptCurateTitleCase(b))
	}
	return res
}

// refreshFlag adds the flag of passes that read vendor files.
func refreshFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("refresh", "r", false,
		"download remote vendor files again instead of using the cache")
}
