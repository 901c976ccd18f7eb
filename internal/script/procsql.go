package script

import (
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractProcSql is sub-extractor #6: "proc sql ...;" up to a terminator
// that is any of "run;", "quit;", or the start of another "proc " — a
// dangling PROC SQL (no run/quit before the next proc) is implicitly closed
// by that next proc, which is then re-scanned from its own opening line.
func extractProcSql(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.ProcSqlBeginRegex.MatchString(line) },
		func(line string) bool { return patterns.ProcSqlTerminatorRegex.MatchString(line) },
		func(line string) bool {
			return patterns.ProcSqlBeginRegex.MatchString(line) && patterns.ProcSqlTerminatorRegex.MatchString(line)
		},
		func(line string) bool { return patterns.ProcRegex.MatchString(line) },
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		joined := buf.Joined(sp.Start, sp.End)

		var dataOut []DataName
		for _, m := range patterns.CreateTableRegex.FindAllStringSubmatch(joined, -1) {
			dataOut = append(dataOut, ParseDataName(m[1]))
		}
		for _, m := range patterns.InsertIntoRegex.FindAllStringSubmatch(joined, -1) {
			dataOut = append(dataOut, ParseDataName(m[1]))
		}
		for _, m := range patterns.UpdateRegex.FindAllStringSubmatch(joined, -1) {
			dataOut = append(dataOut, ParseDataName(m[1]))
		}

		var dataIn []DataName
		for _, m := range patterns.FromRegex.FindAllStringSubmatch(joined, -1) {
			dataIn = append(dataIn, ParseDataName(m[1]))
		}
		for _, m := range patterns.JoinRegex.FindAllStringSubmatch(joined, -1) {
			dataIn = append(dataIn, ParseDataName(m[1]))
		}

		comps = append(comps, Component{
			Kind:      ProcSql,
			StartLine: sp.Start,
			EndLine:   sp.End,
			Content:   joined,
			DataIn:    dataIn,
			DataOut:   dataOut,
		})
	}
	return comps
}
