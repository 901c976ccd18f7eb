package script

import "github.com/viant-archive/lineagecli/internal/linebuf"

// blockState is the small state machine every multi-line sub-extractor
// drives: Idle -> Opened(start) -> Closed(end). Each sub-extractor only
// supplies its own begin/end/single-line predicates.
type blockState int

const (
	stateIdle blockState = iota
	stateOpened
)

// scanBlocks walks buf looking for spans where beginLine(line) is true and
// (for multi-line blocks) a later endLine(line) is true. singleLine, when it
// returns true, closes the block on the same line it opened ignoring
// endLine. backtrackOnProc, when true, treats any later "proc " line as an
// implicit terminator one line *before* it (so the following proc is
// re-scanned from its own opening line) — this is the PROC SQL "closed by
// the next proc" rule.
func scanBlocks(buf *linebuf.Buffer, beginLine, endLine, singleLine func(line string) bool, backtrackOnProc func(line string) bool) []linebuf.Span {
	var spans []linebuf.Span
	state := stateIdle
	start := -1

	i := 0
	for i < buf.Len() {
		line := buf.Line(i)
		switch state {
		case stateIdle:
			if beginLine(line) {
				if singleLine != nil && singleLine(line) {
					spans = append(spans, linebuf.Span{Start: i, End: i + 1})
					i++
					continue
				}
				state = stateOpened
				start = i
			}
		case stateOpened:
			if endLine(line) {
				spans = append(spans, linebuf.Span{Start: start, End: i + 1})
				state = stateIdle
				start = -1
			} else if backtrackOnProc != nil && backtrackOnProc(line) {
				// The open block never reached its own terminator; the next
				// proc statement implicitly closes it. Emit up to (but not
				// including) this line, then re-scan this line from Idle.
				spans = append(spans, linebuf.Span{Start: start, End: i})
				state = stateIdle
				start = -1
				continue // re-examine this same line as Idle
			}
		}
		i++
	}
	// An open block that never finds a terminator before EOF is discarded
	// without blanking; its opening line stays visible in the residual and
	// Warnings reports it.
	return spans
}
