package script

import (
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// Extract runs the ordered stripping pipeline over buf: each sub-extractor
// finds all of its pattern in the current buffer, appends matches to the
// component list, and blanks their spans (except MacroVarRef, which never
// blanks — see extractMacroVarRefs). Components are returned in pipeline
// order; the tabular emitter re-sorts by start line before producing
// output.
func Extract(buf *linebuf.Buffer, reg *patterns.Registry) []Component {
	var all []Component

	appendAndBlank := func(comps []Component) {
		for _, c := range comps {
			all = append(all, c)
			buf.Blank(linebuf.Span{Start: c.StartLine, End: c.EndLine})
		}
	}

	// 1. Block comments.
	appendAndBlank(extractBlockComments(buf))

	// 2. Macro-variable references — non-blanking by design.
	all = append(all, extractMacroVarRefs(buf)...)

	// 3. %let statements.
	appendAndBlank(extractLet(buf))

	// 4. call symput(...).
	appendAndBlank(extractSymput(buf))

	// 5. DATA steps.
	appendAndBlank(extractDataSteps(buf))

	// 6. PROC SQL blocks.
	appendAndBlank(extractProcSql(buf))

	// 7. PROC SORT / PROC IMPORT.
	appendAndBlank(extractProcSort(buf))
	appendAndBlank(extractProcImport(buf))

	// 8. PROC EXPORT.
	appendAndBlank(extractProcExport(buf))

	// 9. User-defined macro calls.
	appendAndBlank(extractUserMacroCalls(buf, reg))

	// 10. Inline comments.
	appendAndBlank(extractInlineComments(buf))

	return all
}
