package script

import (
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractProcSort is (half of) sub-extractor #7: "proc sort data=... out=...;
// ... run;". When "out=" is absent, data_out defaults to the input's bare
// member name, which re-qualifies to the work libref like any other
// unqualified name.
func extractProcSort(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.ProcSortBeginRegex.MatchString(line) },
		func(line string) bool { return patterns.ProcSqlTerminatorRegex.MatchString(line) },
		func(line string) bool {
			return patterns.ProcSortBeginRegex.MatchString(line) && patterns.ProcSqlTerminatorRegex.MatchString(line)
		},
		nil,
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		joined := buf.Joined(sp.Start, sp.End)

		dataMatch := patterns.ProcSortDataRegex.FindStringSubmatch(joined)
		if dataMatch == nil {
			continue
		}
		in := ParseDataName(dataMatch[1])

		out := ParseDataName(in.Member)
		if outMatch := patterns.ProcSortOutRegex.FindStringSubmatch(joined); outMatch != nil {
			out = ParseDataName(outMatch[1])
		}

		comps = append(comps, Component{
			Kind:      ProcSort,
			StartLine: sp.Start,
			EndLine:   sp.End,
			Content:   joined,
			DataIn:    []DataName{in},
			DataOut:   []DataName{out},
		})
	}
	return comps
}
