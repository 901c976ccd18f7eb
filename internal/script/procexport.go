package script

import (
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractProcExport is sub-extractor #8: "proc export data=... outfile=...;
// ... run;", the mirror image of PROC IMPORT — the SAS dataset is the
// input, the filesystem path (libref "none") is the output.
func extractProcExport(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.ProcExportBeginRegex.MatchString(line) },
		func(line string) bool { return patterns.ProcSqlTerminatorRegex.MatchString(line) },
		func(line string) bool {
			return patterns.ProcExportBeginRegex.MatchString(line) && patterns.ProcSqlTerminatorRegex.MatchString(line)
		},
		nil,
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		joined := buf.Joined(sp.Start, sp.End)

		dataMatch := patterns.ProcExportDataRegex.FindStringSubmatch(joined)
		outMatch := patterns.ProcExportOutfileRegex.FindStringSubmatch(joined)
		if dataMatch == nil || outMatch == nil {
			continue
		}

		comps = append(comps, Component{
			Kind:      ProcExport,
			StartLine: sp.Start,
			EndLine:   sp.End,
			Content:   joined,
			DataIn:    []DataName{ParseDataName(dataMatch[1])},
			DataOut:   []DataName{PathDataName(outMatch[1])},
		})
	}
	return comps
}
