package report

import (
	"sort"
	"strings"

	"github.com/viant-archive/lineagecli/internal/logextract"
	"github.com/viant-archive/lineagecli/internal/script"
)

func joinNames(names []script.DataName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, "|")
}

// mappingKind returns the uppercased procedure-kind label for a script
// component kind, or "" for components that never represent a procedure
// step: comments, which appear in neither table, and %let, call symput and
// macro-var references, which surface only in the macro-variables table (see
// BuildMacroVarRows).
func mappingKind(k script.Kind) string {
	switch k {
	case script.DataStep:
		return "DATASTEP"
	case script.ProcSql:
		return "PROCSQL"
	case script.ProcSort:
		return "PROCSORT"
	case script.ProcImport:
		return "PROCIMPORT"
	case script.ProcExport:
		return "PROCEXPORT"
	case script.MacroCallUserDef:
		return "MACROCALLUSERDEF"
	default:
		return ""
	}
}

// BuildScriptMapping produces the mapping rows for script mode: components
// are re-sorted by start line before the 0-based Sequence is assigned, so
// the external order is always textual order regardless of the stripping
// pipeline's internal processing order.
func BuildScriptMapping(components []script.Component) []MappingRow {
	steps := make([]script.Component, 0, len(components))
	for _, c := range components {
		if mappingKind(c.Kind) != "" {
			steps = append(steps, c)
		}
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].StartLine < steps[j].StartLine })

	rows := make([]MappingRow, 0, len(steps))
	for i, c := range steps {
		rows = append(rows, MappingRow{
			Sequence:      i,
			StartLine:     c.StartLine + 1,
			EndLine:       c.EndLine,
			ProcedureKind: mappingKind(c.Kind),
			Inputs:        joinNames(c.DataIn),
			Outputs:       joinNames(c.DataOut),
		})
	}
	return rows
}

// BuildLogMapping produces the mapping rows for log mode, sharing the exact
// same schema as BuildScriptMapping. Libref assign/deassign procedures mark
// session plumbing, not data-flow steps, and are omitted from the table the
// same way the graph builder skips them.
func BuildLogMapping(procedures []logextract.Procedure) []MappingRow {
	sorted := make([]logextract.Procedure, 0, len(procedures))
	for _, p := range procedures {
		if p.Kind == "LIBREFASSIGN" || p.Kind == "LIBREFDEASSIGN" {
			continue
		}
		sorted = append(sorted, p)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartLine < sorted[j].StartLine })

	rows := make([]MappingRow, 0, len(sorted))
	for i, p := range sorted {
		rows = append(rows, MappingRow{
			Sequence:      i,
			StartLine:     p.StartLine + 1,
			EndLine:       p.EndLine,
			ProcedureKind: p.Kind,
			Inputs:        joinNames(p.Inputs),
			Outputs:       joinNames(p.Outputs),
		})
	}
	return rows
}
