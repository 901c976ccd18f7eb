package script

import (
	"strings"

	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractDataSteps is sub-extractor #5: "data out1 out2; ... run;", the
// terminating "run;" required on its own line. Only the first SET statement
// in the body is captured as an input; subsequent SETs are ignored.
func extractDataSteps(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.DataStepBeginRegex.MatchString(line) },
		func(line string) bool { return patterns.RunRegex.MatchString(line) },
		nil,
		nil,
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		joined := buf.Joined(sp.Start, sp.End)

		begin := patterns.DataStepBeginRegex.FindStringSubmatch(joined)
		if begin == nil {
			continue
		}
		// Dataset options like "(compress=yes)" ride along with the output
		// names and are not names themselves.
		outList := patterns.DataSetOptionsRegex.ReplaceAllString(begin[1], " ")
		var dataOut []DataName
		for _, tok := range strings.Fields(outList) {
			tok = strings.TrimSuffix(tok, ",")
			if tok == "" {
				continue
			}
			dataOut = append(dataOut, ParseDataName(tok))
		}

		var dataIn []DataName
		if set := patterns.SetStatementRegex.FindStringSubmatch(joined); set != nil {
			dataIn = append(dataIn, ParseDataName(set[1]))
		}

		comps = append(comps, Component{
			Kind:      DataStep,
			StartLine: sp.Start,
			EndLine:   sp.End,
			Content:   joined,
			DataIn:    dataIn,
			DataOut:   dataOut,
		})
	}
	return comps
}
