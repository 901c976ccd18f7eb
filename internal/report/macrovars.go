package report

import (
	"sort"

	"github.com/viant-archive/lineagecli/internal/script"
)

// BuildMacroVarRows produces the macros_NAME.csv rows (script mode only):
// one row per MacroLet/MacroSymput component, and one row per individual
// reference inside each MacroVarRef component.
func BuildMacroVarRows(components []script.Component) []MacroVarRow {
	filtered := make([]script.Component, 0, len(components))
	for _, c := range components {
		switch c.Kind {
		case script.MacroLet, script.MacroSymput, script.MacroVarRef:
			filtered = append(filtered, c)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].StartLine < filtered[j].StartLine })

	var rows []MacroVarRow
	seq := 0
	for _, c := range filtered {
		switch c.Kind {
		case script.MacroLet:
			rows = append(rows, MacroVarRow{
				Sequence:   seq,
				StartLine:  c.StartLine + 1,
				EndLine:    c.EndLine,
				Kind:       string(script.MacroLet),
				OutputName: c.MacroName,
				Value:      c.MacroValue,
			})
			seq++
		case script.MacroSymput:
			rows = append(rows, MacroVarRow{
				Sequence:   seq,
				StartLine:  c.StartLine + 1,
				EndLine:    c.EndLine,
				Kind:       string(script.MacroSymput),
				OutputName: c.MacroName,
				Value:      c.MacroValue,
			})
			seq++
		case script.MacroVarRef:
			for _, ref := range c.MacroRefs {
				rows = append(rows, MacroVarRow{
					Sequence:  seq,
					StartLine: c.StartLine + 1,
					EndLine:   c.EndLine,
					Kind:      string(script.MacroVarRef),
					InputRef:  ref.Name,
					Value:     ref.Line,
				})
				seq++
			}
		}
	}
	return rows
}
