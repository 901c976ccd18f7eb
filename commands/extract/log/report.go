package log

import (
	"fmt"
	"strings"
)

// Report accumulates per-run statistics across every log file processed.
type Report struct {
	FilesProcessed int
	Procedures     int
	MappingRows    int
	GraphEdges     int
	order          []string
	perFile        map[string]int
}

// NewReport returns an initialized, empty Report.
func NewReport() *Report {
	return &Report{perFile: make(map[string]int)}
}

// AddFile records one processed file's procedure/row counts.
func (r *Report) AddFile(file string, procedures, mappingRows, graphEdges int) {
	r.FilesProcessed++
	r.Procedures += procedures
	r.MappingRows += mappingRows
	r.GraphEdges += graphEdges
	r.perFile[file] = procedures
	r.order = append(r.order, file)
}

// PrintReport prints the extraction report to stdout.
func PrintReport(r *Report, verbose bool) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("LOG EXTRACTION REPORT")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nFiles Processed: %d\n", r.FilesProcessed)
	fmt.Printf("Procedures Grouped: %d\n", r.Procedures)
	fmt.Printf("Mapping Rows Written: %d\n", r.MappingRows)
	fmt.Printf("Lineage Graph Edges: %d\n", r.GraphEdges)

	if verbose {
		fmt.Println("\nPer-File Procedure Counts:")
		for _, file := range r.order {
			fmt.Printf("  %s: %d\n", file, r.perFile[file])
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
}
