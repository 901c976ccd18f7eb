package script

import (
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractProcImport is the other half of sub-extractor #7: "proc import
// datafile=... out=...; ... run;". The filesystem path is tagged with
// libref "none" to mark it as a physical-path source rather than a SAS
// dataset.
func extractProcImport(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.ProcImportBeginRegex.MatchString(line) },
		func(line string) bool { return patterns.ProcSqlTerminatorRegex.MatchString(line) },
		func(line string) bool {
			return patterns.ProcImportBeginRegex.MatchString(line) && patterns.ProcSqlTerminatorRegex.MatchString(line)
		},
		nil,
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		joined := buf.Joined(sp.Start, sp.End)

		fileMatch := patterns.ProcImportDatafileRegex.FindStringSubmatch(joined)
		outMatch := patterns.ProcImportOutRegex.FindStringSubmatch(joined)
		if fileMatch == nil || outMatch == nil {
			continue
		}

		comps = append(comps, Component{
			Kind:      ProcImport,
			StartLine: sp.Start,
			EndLine:   sp.End,
			Content:   joined,
			DataIn:    []DataName{PathDataName(fileMatch[1])},
			DataOut:   []DataName{ParseDataName(outMatch[1])},
		})
	}
	return comps
}
