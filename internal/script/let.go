package script

import (
	"strings"

	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractLet is sub-extractor #3: "%let name = value;", from the %let
// keyword to its terminating semicolon, possibly spanning multiple lines.
func extractLet(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.LetBeginRegex.MatchString(line) },
		func(line string) bool { return patterns.SemicolonEndRegex.MatchString(line) },
		func(line string) bool {
			return patterns.LetBeginRegex.MatchString(line) && patterns.SemicolonEndRegex.MatchString(line)
		},
		nil,
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		joined := buf.Joined(sp.Start, sp.End)
		m := patterns.LetBeginRegex.FindStringSubmatch(joined)
		if m == nil {
			continue
		}
		value := m[2]
		if idx := strings.IndexByte(value, ';'); idx >= 0 {
			value = value[:idx]
		}
		comps = append(comps, Component{
			Kind:       MacroLet,
			StartLine:  sp.Start,
			EndLine:    sp.End,
			Content:    joined,
			MacroName:  m[1],
			MacroValue: strings.TrimSpace(value),
		})
	}
	return comps
}
