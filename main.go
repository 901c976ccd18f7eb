// Package main provides the entry point for the lineagecli tool.
//
// lineagecli extracts data-lineage components from SAS-dialect scripts and
// their execution logs, builds a per-file lineage graph, and writes mapping
// CSVs, macro-variable CSVs, and DOT graphs.
//
// The CLI is organized into parent commands with subcommands:
//   - extract: Extract lineage components from a script or log
//     - script: Extract from .sas scripts
//     - log: Extract from .log execution logs
//   - compare: Compare extraction-run output files
//     - runs: Diff two mapping/macro-variable CSVs
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/viant-archive/lineagecli/commands/compare"
	"github.com/viant-archive/lineagecli/commands/extract"
)

// normalizeFlagName lets underscore-style flag spellings (--output_path)
// resolve to their dashed equivalents (--output-path).
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "lineagecli",
		Short: "A CLI tool for extracting data lineage from SAS scripts and logs",
		Long: `lineagecli parses SAS-dialect scripts and their execution logs to recover
data-lineage information: which datasets were read, which were written, and by
which procedure. It builds a per-file lineage graph and writes mapping CSVs,
macro-variable CSVs, and DOT graphs for downstream tooling.`,
	}

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCmd.AddCommand(extract.NewExtractCommand())
	rootCmd.AddCommand(compare.NewCompareCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
