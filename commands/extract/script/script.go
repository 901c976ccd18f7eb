// Package script implements the "extract script" subcommand: it walks a
// directory (or processes a single file) of SAS-dialect scripts, runs the
// stripping-pipeline extraction over each one, and writes mapping/macro-variable
// CSVs plus a lineage DOT graph per file.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/viant-archive/lineagecli/internal/csvio"
	"github.com/viant-archive/lineagecli/internal/dotio"
	"github.com/viant-archive/lineagecli/internal/fswalk"
	"github.com/viant-archive/lineagecli/internal/lineage"
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
	"github.com/viant-archive/lineagecli/internal/report"
	"github.com/viant-archive/lineagecli/internal/script"
)

// Profile is the optional --profile YAML document: additional user-defined
// macro names extending the pattern library's keyword registry for
// site-specific macro dialects.
type Profile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadProfile reads and parses a --profile YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &p, nil
}

// NewScriptCommand creates the "extract script" subcommand.
func NewScriptCommand() *cobra.Command {
	var (
		outputPath string
		recursive  bool
		verbose    bool
		profile    string
		keywords   []string
		encoding   string
	)

	cmd := &cobra.Command{
		Use:   "script [input-path]",
		Short: "Extract lineage components from SAS-dialect scripts",
		Long: `Parse .sas scripts for DATA steps, PROC SQL/SORT/IMPORT/EXPORT blocks,
macro-variable assignments and references, and user-defined macro calls, then
write mapping and macro-variable CSVs plus a lineage DOT graph per file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEncoding(encoding); err != nil {
				return err
			}
			return run(args[0], outputPath, recursive, verbose, profile, keywords)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output-path", "o", "./output", "Output directory for mapping/macro-variable CSVs and DOT graphs")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recursively scan directories for .sas files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show per-file processing detail")
	cmd.Flags().StringVar(&profile, "profile", "", "YAML file with a keywords list of additional macro names (other keys are ignored)")
	cmd.Flags().StringArrayVar(&keywords, "keyword", nil, "Additional user-defined macro name to recognize (repeatable)")
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

func run(inputPath, outputPath string, recursive, verbose bool, profilePath string, keywords []string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("failed to access path %s: %w", inputPath, err)
	}

	reg := patterns.NewRegistry()
	for _, k := range keywords {
		reg.AddKeyword(k)
	}
	if profilePath != "" {
		p, err := LoadProfile(profilePath)
		if err != nil {
			return err
		}
		for _, k := range p.Keywords {
			reg.AddKeyword(k)
		}
	}

	var files []string
	if info.IsDir() {
		if verbose {
			fmt.Printf("Scanning directory: %s (recursive: %v)\n", inputPath, recursive)
		}
		files, err = fswalk.Discover(inputPath, fswalk.ScriptMode, recursive)
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
		if err := processFile(file, outputPath, reg, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to process %s: %v\n", file, err)
			continue
		}
	}

	PrintReport(rep, verbose)
	return nil
}

func processFile(file, outputPath string, reg *patterns.Registry, rep *Report) error {
	buf, err := linebuf.Load(file)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	before := buf.NonBlankCount()

	components := script.Extract(buf, reg)
	after := buf.NonBlankCount()

	name := fswalk.BaseName(file)

	mappingRows := report.BuildScriptMapping(components)
	if err := csvio.WriteMapping(filepath.Join(outputPath, "mapping_"+name+".csv"), mappingRows); err != nil {
		return fmt.Errorf("failed to write mapping csv: %w", err)
	}

	macroRows := report.BuildMacroVarRows(components)
	if err := csvio.WriteMacroVars(filepath.Join(outputPath, "macros_"+name+".csv"), macroRows); err != nil {
		return fmt.Errorf("failed to write macro-variable csv: %w", err)
	}

	g := lineage.NewGraph()
	g.BuildFromScript(components)
	if err := dotio.WriteFlowGraph(filepath.Join(outputPath, "flow_"+name+".dot"), g); err != nil {
		return fmt.Errorf("failed to write flow graph: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outputPath, "residuals_"+name+".txt"), []byte(buf.Residual()), 0644); err != nil {
		return fmt.Errorf("failed to write residuals: %w", err)
	}

	summary := report.BuildSummary(buf.Len(), before, after, components)
	summary.Warnings = script.Warnings(buf)
	if err := os.WriteFile(filepath.Join(outputPath, "summary_"+name+".txt"), []byte(report.FormatSummary(name, summary)), 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	rep.AddFile(file, summary, len(mappingRows), len(macroRows), len(g.Edges()))

	return nil
}
