// Package runs implements the "compare runs" subcommand: unified-diff two
// mapping CSVs (or two residual-line dumps) produced by separate extraction
// runs of the same file, so a writer can see how lineage has drifted between
// runs.
package runs

import (
	"fmt"
	"os"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"
)

// NewCompareCommand creates the "compare runs" subcommand.
func NewCompareCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "runs [first-file] [second-file]",
		Short: "Diff two extraction-run output files (mapping CSV, macro CSV, or DOT graph)",
		Long: `Compare two output files from separate extraction runs of the same
script or log — typically a mapping_NAME.csv before and after a script edit —
and print a unified diff of the differences.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := CompareFiles(args[0], args[1])
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Println("No differences found.")
				return nil
			}
			fmt.Print(diff)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Accepted but has no effect; the output is the same without it")

	return cmd
}

// CompareFiles reads fromPath and toPath and returns their unified diff, or
// an empty string if they are identical.
func CompareFiles(fromPath, toPath string) (string, error) {
	fromContent, err := os.ReadFile(fromPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", fromPath, err)
	}
	toContent, err := os.ReadFile(toPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", toPath, err)
	}

	if string(fromContent) == string(toContent) {
		return "", nil
	}

	return udiff.Unified(fromPath, toPath, string(fromContent), string(toContent)), nil
}
