package script

import (
	"fmt"

	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// Warnings inspects the residual buffer after Extract has run and reports
// every opener that survived the pipeline: a block that opened but never
// reached its terminator before EOF was discarded without blanking, so its
// opening line is still visible in the residual. Plain unrecognized text
// produces no warning (an unmatched construct is not an error).
func Warnings(buf *linebuf.Buffer) []string {
	openers := []struct {
		re   func(line string) bool
		what string
	}{
		{patterns.BlockCommentOpenRegex.MatchString, "block comment"},
		{patterns.ProcSqlBeginRegex.MatchString, "proc sql block"},
		{patterns.ProcSortBeginRegex.MatchString, "proc sort block"},
		{patterns.ProcImportBeginRegex.MatchString, "proc import block"},
		{patterns.ProcExportBeginRegex.MatchString, "proc export block"},
		{patterns.DataStepBeginRegex.MatchString, "data step"},
		{patterns.LetBeginRegex.MatchString, "%let statement"},
		{patterns.SymputBeginRegex.MatchString, "call symput statement"},
	}

	var warnings []string
	for i := 0; i < buf.Len(); i++ {
		line := buf.Line(i)
		if line == "" {
			continue
		}
		for _, o := range openers {
			if o.re(line) {
				warnings = append(warnings, fmt.Sprintf("line %d: unterminated %s discarded at EOF", i+1, o.what))
				break
			}
		}
	}
	return warnings
}
