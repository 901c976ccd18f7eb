package script

import (
	"strings"

	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractSymput is sub-extractor #4: "call symput('name', expr);", from the
// call to its terminating semicolon, possibly spanning multiple lines.
func extractSymput(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.SymputBeginRegex.MatchString(line) },
		func(line string) bool { return patterns.SemicolonEndRegex.MatchString(line) },
		func(line string) bool {
			return patterns.SymputBeginRegex.MatchString(line) && patterns.SemicolonEndRegex.MatchString(line)
		},
		nil,
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		joined := buf.Joined(sp.Start, sp.End)
		m := patterns.SymputBeginRegex.FindStringSubmatch(joined)
		if m == nil {
			continue
		}
		value := m[2]
		if idx := strings.IndexByte(value, ';'); idx >= 0 {
			value = value[:idx]
		}
		value = strings.TrimSuffix(strings.TrimSpace(value), ")")
		comps = append(comps, Component{
			Kind:       MacroSymput,
			StartLine:  sp.Start,
			EndLine:    sp.End,
			Content:    joined,
			MacroName:  m[1],
			MacroValue: strings.TrimSpace(value),
		})
	}
	return comps
}
