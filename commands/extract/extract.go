// Package extract provides the parent command for extracting lineage
// components from SAS scripts and execution logs.
//
// This package serves as the parent command for the two extraction modes:
//   - script: Extract lineage components from .sas scripts
//   - log: Extract lineage components from .log execution logs
package extract

import (
	"github.com/spf13/cobra"

	"github.com/viant-archive/lineagecli/commands/extract/log"
	"github.com/viant-archive/lineagecli/commands/extract/script"
)

// NewExtractCommand creates the extract parent command.
//
// This command serves as a parent for the two extraction operations. It
// doesn't perform any operations itself but provides a namespace for
// subcommands.
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract lineage components from SAS scripts or execution logs",
		Long: `Extract data-lineage components from SAS-dialect scripts (.sas) or their
execution logs (.log). Scripts and logs are two independent sources of the
same lineage information — run one or both against a file and compare the
resulting mapping tables.`,
	}

	cmd.AddCommand(script.NewScriptCommand())
	cmd.AddCommand(log.NewLogCommand())

	return cmd
}
