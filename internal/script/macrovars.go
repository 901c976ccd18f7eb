package script

import (
	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/patterns"
)

// extractMacroVarRefs is sub-extractor #2: every "&ident" reference, scanned
// line by line. It intentionally does not blank its matches because a
// macro-variable reference commonly lives inside a construct (a %let value,
// a DATA step, a PROC SQL WHERE clause) that a later sub-extractor still
// needs to parse.
// It runs right after block comments are blanked, so it never reports a
// reference that only existed inside a block comment. Inline "* ... ;"
// comments are blanked later in the pipeline, so references inside them are
// reported.
func extractMacroVarRefs(buf *linebuf.Buffer) []Component {
	var refs []MacroVarUse
	for i := 0; i < buf.Len(); i++ {
		line := buf.Line(i)
		matches := patterns.MacroVarRegex.FindAllString(line, -1)
		for _, m := range matches {
			refs = append(refs, MacroVarUse{Name: m, Line: line})
		}
	}
	if len(refs) == 0 {
		return nil
	}
	return []Component{{
		Kind:      MacroVarRef,
		StartLine: 0,
		EndLine:   buf.Len(),
		MacroRefs: refs,
	}}
}
