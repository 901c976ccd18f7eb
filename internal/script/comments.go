package script

import (
	"strings"

	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractBlockComments is sub-extractor #1: "/* ... */", single-line or
// spanning multiple lines.
func extractBlockComments(buf *linebuf.Buffer) []Component {
	spans := scanBlocks(buf,
		func(line string) bool { return patterns.BlockCommentOpenRegex.MatchString(line) },
		func(line string) bool { return patterns.BlockCommentCloseRegex.MatchString(line) },
		func(line string) bool { return patterns.BlockCommentSingleLineRegex.MatchString(line) },
		nil,
	)

	comps := make([]Component, 0, len(spans))
	for _, sp := range spans {
		comps = append(comps, Component{
			Kind:      CommentBlock,
			StartLine: sp.Start,
			EndLine:   sp.End,
			Content:   buf.Joined(sp.Start, sp.End),
		})
	}
	return comps
}

// extractInlineComments is sub-extractor #10: "* ... ;" lines, excluding
// lines that contain "=" (an assignment using "*" for multiplication, not a
// comment marker). The heuristic misreads a line of a semicolon-terminated
// expression that begins with a bare "*" and has no "=" on the same line
// (e.g. a continued multiplication); the rule is kept with that limitation.
func extractInlineComments(buf *linebuf.Buffer) []Component {
	var comps []Component
	for i := 0; i < buf.Len(); i++ {
		line := buf.Line(i)
		if strings.Contains(line, "=") {
			continue
		}
		if patterns.InlineCommentRegex.MatchString(line) {
			comps = append(comps, Component{
				Kind:      CommentInline,
				StartLine: i,
				EndLine:   i + 1,
				Content:   line,
			})
		}
	}
	return comps
}
