package logextract

import (
	"regexp"
	"strconv"

	"github.com/viant-archive/lineagecli/internal/linebuf"
)

var (
	notePrefixRegex     = regexp.MustCompile(`^NOTE:\s`)
	macroGenPrefixRegex = regexp.MustCompile(`^MACROGEN(?:\(EXTRACT\))?:`)
	warningPrefixRegex  = regexp.MustCompile(`^WARNING:\s`)
	scriptLinePrefixRegex = regexp.MustCompile(`^(\d+)\s+`)
)

// Segment walks buf and groups its lines into Components, starting a new one
// whenever the current line matches a recognized first-line prefix:
//
//   - "NOTE: "                         -> Note
//   - "MACROGEN(EXTRACT):" / "MACROGEN:" -> MacroGen
//   - "WARNING: "                      -> Warning
//   - "<n>  " where n is strictly greater than the previous script-line
//     counter                          -> ScriptLine (a smaller n is a
//     wrapped continuation line, absorbed into the prior component)
//
// Any other line extends the currently open component (or starts a Misc one
// if none is open). The previous component's EndLine is set when the next
// one opens; the final component closes at EOF.
func Segment(buf *linebuf.Buffer) []Component {
	var comps []Component
	lastScriptLineNum := -1

	open := func(kind ComponentKind, start int) {
		if len(comps) > 0 {
			comps[len(comps)-1].EndLine = start
		}
		comps = append(comps, Component{Kind: kind, StartLine: start})
	}

	for i := 0; i < buf.Len(); i++ {
		line := buf.Line(i)

		switch {
		case notePrefixRegex.MatchString(line):
			open(Note, i)
		case macroGenPrefixRegex.MatchString(line):
			open(MacroGen, i)
		case warningPrefixRegex.MatchString(line):
			open(Warning, i)
		default:
			if m := scriptLinePrefixRegex.FindStringSubmatch(line); m != nil {
				n, err := strconv.Atoi(m[1])
				if err == nil && n > lastScriptLineNum {
					lastScriptLineNum = n
					open(ScriptLine, i)
					continue
				}
			}
			if len(comps) == 0 {
				open(Misc, i)
			}
		}
	}
	if len(comps) > 0 {
		comps[len(comps)-1].EndLine = buf.Len()
	}

	for i := range comps {
		comps[i].Raw = buf.Joined(comps[i].StartLine, comps[i].EndLine)
	}

	return comps
}
