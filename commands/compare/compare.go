// Package compare provides the parent command for comparing extraction-run
// outputs.
//
// This package serves as the parent command for comparison operations.
// Currently supports:
//   - runs: Diff mapping/macro-variable CSVs between two extraction runs
package compare

import (
	"github.com/spf13/cobra"

	"github.com/viant-archive/lineagecli/commands/compare/runs"
)

// NewCompareCommand creates the compare parent command.
//
// This command serves as a parent for comparison operations on extraction
// output files. It doesn't perform any operations itself but provides a
// namespace for subcommands.
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare extraction-run output files",
		Long: `Compare output files produced by separate extraction runs of the same
script or log, to see how lineage has drifted between runs.`,
	}

	cmd.AddCommand(runs.NewCompareCommand())

	return cmd
}
