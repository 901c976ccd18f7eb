package logextract

import (
	"regexp"
	"strings"

	"github.com/viant-archive/lineagecli/internal/script"
)

// noteRule is one row of the classification table. Rules are applied in
// order; when more than one rule matches the same note text (a log sometimes
// writes overlapping phrasings back to back), each match's field assignments
// are applied in turn, so the last matching rule wins per field.
type noteRule struct {
	pattern *regexp.Regexp
	apply   func(c *Component, m []string)
}

func trimDataToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".,;")
	return s
}

var noteRules = []noteRule{
	{
		pattern: regexp.MustCompile(`(?i)NOTE:\s*(?:There were\s+)?\d+\s+observations? read from the data set\s+(\S+)`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteInput
			c.DataName = script.ParseDataName(trimDataToken(m[1]))
			c.HasDataName = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:\s*No observations in data set\s+(\S+)`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteInput
			c.DataName = script.ParseDataName(trimDataToken(m[1]))
			c.HasDataName = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:\s*The data set\s+(\S+)\s+has\b`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteOutput
			c.DataName = script.ParseDataName(trimDataToken(m[1]))
			c.HasDataName = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:\s*DATA statement used`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteDataStep
			c.EndsProcedure = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:\s*PROCEDURE\s+(\S+)\s+used`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteProc
			c.ProcName = strings.ToUpper(m[1])
			c.EndsProcedure = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:.*read from the infile\s+(\S+)`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteInput
			c.DataName = script.ParseDataName(trimDataToken(m[1]))
			c.HasDataName = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:.*Libref\s+(\S+)\s+has been deassigned`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteLibrefDeassign
			c.LibrefName = m[1]
			c.EndsProcedure = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:.*Libref\s+(\S+)\s+was successfully assigned as follows`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteLibrefAssign
			c.LibrefName = m[1]
			c.EndsProcedure = true
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NOTE:.*%INCLUDE`),
		apply: func(c *Component, m []string) {
			c.NoteKind = NoteInclude
			c.EndsProcedure = true
		},
	},
}

// Classify fills in c.NoteKind (and its dependent fields) for a single Note
// component. Components that are not Kind == Note are left untouched.
func Classify(c *Component) {
	if c.Kind != Note {
		return
	}
	c.NoteKind = NoteOther
	for _, rule := range noteRules {
		if m := rule.pattern.FindStringSubmatch(c.Raw); m != nil {
			rule.apply(c, m)
		}
	}
}

// ClassifyAll classifies every Note component in place.
func ClassifyAll(comps []Component) {
	for i := range comps {
		Classify(&comps[i])
	}
}
