// Package log implements the "extract log" subcommand: it walks a directory
// (or processes a single file) of SAS execution logs, runs the
// segmentation/classification/grouping pipeline over each one, and writes a
// mapping CSV plus a lineage DOT graph per file.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant-archive/lineagecli/internal/csvio"
	"github.com/viant-archive/lineagecli/internal/dotio"
	"github.com/viant-archive/lineagecli/internal/fswalk"
	"github.com/viant-archive/lineagecli/internal/lineage"
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/logextract"
	"github.com/viant-archive/lineagecli/internal/report"
)

// NewLogCommand creates the "extract log" subcommand.
func NewLogCommand() *cobra.Command {
	var (
		outputPath string
		recursive  bool
		verbose    bool
		encoding   string
	)

	cmd := &cobra.Command{
		Use:   "log [input-path]",
		Short: "Extract lineage components from SAS execution logs",
		Long: `Segment .log files into NOTE/WARNING/MACROGEN/script-line components,
classify NOTE lines by lineage meaning (input, output, procedure terminator,
libref assign/deassign), group them into procedures, and write a mapping CSV
plus a lineage DOT graph per file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEncoding(encoding); err != nil {
				return err
			}
			return run(args[0], outputPath, recursive, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output-path", "o", "./output", "Output directory for mapping CSVs and DOT graphs")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recursively scan directories for .log files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show per-file processing detail")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "Text encoding assumed when reading input files")

	return cmd
}

// validateEncoding rejects encodings the reader cannot honor. Input files are
// read as host-default text; only utf-8 is supported today.
func validateEncoding(encoding string) error {
	if strings.EqualFold(encoding, "utf-8") || strings.EqualFold(encoding, "utf8") {
		return nil
	}
	return fmt.Errorf("unsupported encoding %q: only utf-8 is supported", encoding)
}

func run(inputPath, outputPath string, recursive, verbose bool) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("failed to access path %s: %w", inputPath, err)
	}

	var files []string
	if info.IsDir() {
		if verbose {
			fmt.Printf("Scanning directory: %s (recursive: %v)\n", inputPath, recursive)
		}
		files, err = fswalk.Discover(inputPath, fswalk.LogMode, recursive)
		if err != nil {
			return fmt.Errorf("failed to traverse directory: %w", err)
		}
	} else {
		files = []string{inputPath}
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rep := NewReport()
	for _, file := range files {
		if verbose {
			fmt.Printf("Processing: %s\n", file)
		}
		if err := processFile(file, outputPath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to process %s: %v\n", file, err)
			continue
		}
	}

	PrintReport(rep, verbose)
	return nil
}

func processFile(file, outputPath string, rep *Report) error {
	buf, err := linebuf.Load(file)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}

	components := logextract.Segment(buf)
	logextract.ClassifyAll(components)
	procedures := logextract.GroupProcedures(components)

	name := fswalk.BaseName(file)

	mappingRows := report.BuildLogMapping(procedures)
	if err := csvio.WriteMapping(filepath.Join(outputPath, "mapping_"+name+".csv"), mappingRows); err != nil {
		return fmt.Errorf("failed to write mapping csv: %w", err)
	}

	g := lineage.NewGraph()
	g.BuildFromLog(procedures)
	if err := dotio.WriteFlowGraph(filepath.Join(outputPath, "flow_"+name+".dot"), g); err != nil {
		return fmt.Errorf("failed to write flow graph: %w", err)
	}

	summary := report.BuildLogSummary(buf.Len(), components, procedures)
	if err := os.WriteFile(filepath.Join(outputPath, "summary_"+name+".txt"), []byte(report.FormatSummary(name, summary)), 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	rep.AddFile(file, len(procedures), len(mappingRows), len(g.Edges()))

	return nil
}
