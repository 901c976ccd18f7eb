package script

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant-archive/lineagecli/internal/report"
)

// Report accumulates per-run statistics across every script file processed.
type Report struct {
	FilesProcessed int
	MappingRows    int
	MacroVarRows   int
	GraphEdges     int
	PerFile        map[string]report.Summary
	order          []string
}

// NewReport returns an initialized, empty Report.
func NewReport() *Report {
	return &Report{PerFile: make(map[string]report.Summary)}
}

// AddFile records one processed file's summary and row counts.
func (r *Report) AddFile(file string, summary report.Summary, mappingRows, macroRows, graphEdges int) {
	r.FilesProcessed++
	r.MappingRows += mappingRows
	r.MacroVarRows += macroRows
	r.GraphEdges += graphEdges
	r.PerFile[file] = summary
	r.order = append(r.order, file)
}

// PrintReport prints the extraction report to stdout.
func PrintReport(r *Report, verbose bool) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SCRIPT EXTRACTION REPORT")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nFiles Processed: %d\n", r.FilesProcessed)
	fmt.Printf("Mapping Rows Written: %d\n", r.MappingRows)
	fmt.Printf("Macro-Variable Rows Written: %d\n", r.MacroVarRows)
	fmt.Printf("Lineage Graph Edges: %d\n", r.GraphEdges)

	if verbose {
		fmt.Println("\nPer-File Summary:")
		for _, file := range r.order {
			s := r.PerFile[file]
			fmt.Printf("  %s:\n", file)
			fmt.Printf("    Lines: %d, Residual: %.2f%%, Comments: %.2f%%\n",
				s.LineCount, s.ResidualRatio*100, s.CommentLineRatio*100)

			kinds := make([]string, 0, len(s.KindCounts))
			for _, kc := range s.KindCounts {
				kinds = append(kinds, fmt.Sprintf("%s=%d", kc.Kind, kc.Count))
			}
			sort.Strings(kinds)
			if len(kinds) > 0 {
				fmt.Printf("    Kinds: %s\n", strings.Join(kinds, ", "))
			}
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
}
