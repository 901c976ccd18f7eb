package script

import (
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractUserMacroCalls is sub-extractor #9: recognized user-defined macro
// invocations ("%libname(...)", "%exist_file(...)"), from "%name(" to the
// terminating ");". Only names in reg.UserMacroNames are recognized; unknown
// macro calls are left untouched (they surface as residual text).
func extractUserMacroCalls(buf *linebuf.Buffer, reg *patterns.Registry) []Component {
	var comps []Component
	for _, name := range reg.UserMacroNames {
		re := patterns.UserMacroCallRegex(name)
		macroName := name
		spans := scanBlocks(buf,
			func(line string) bool { return re.MatchString(line) },
			func(line string) bool { return patterns.SemicolonEndRegex.MatchString(line) },
			func(line string) bool {
				return re.MatchString(line) && patterns.SemicolonEndRegex.MatchString(line)
			},
			nil,
		)
		for _, sp := range spans {
			comps = append(comps, Component{
				Kind:      MacroCallUserDef,
				StartLine: sp.Start,
				EndLine:   sp.End,
				Content:   buf.Joined(sp.Start, sp.End),
				MacroName: macroName,
			})
		}
	}
	return comps
}
