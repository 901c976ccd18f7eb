// Package patterns centralizes the regular expressions and keyword anchors
// of the script extractor.
//
// The script sub-extractors reference these compiled patterns instead of
// building their own, so a change to the data-name or macro-variable grammar
// only needs to happen in one place. The log extractor's line-prefix and
// NOTE-classification regexes are not kept here; they live in
// internal/logextract.
package patterns

import "regexp"

// DataNamePattern matches a qualified data-set name: an optional "libref."
// prefix followed by a member name. Both parts share the same identifier
// grammar, case-insensitive, and may themselves contain macro-variable
// references ("&").
const DataNamePattern = `[A-Za-z_&][A-Za-z0-9_&]{0,31}(?:\.[A-Za-z_&][A-Za-z0-9_&]{0,31})?`

// MacroVarPattern matches a single macro-variable reference, e.g. "&year".
const MacroVarPattern = `&[A-Za-z_][A-Za-z0-9_]{0,31}`

// DataNameRegex compiles DataNamePattern for standalone matching.
var DataNameRegex = regexp.MustCompile(`^` + DataNamePattern + `$`)

// MacroVarRegex finds every macro-variable reference on a line.
var MacroVarRegex = regexp.MustCompile(MacroVarPattern)

// BlockCommentOpenRegex matches the opening of a block comment.
// Example: /* this starts a comment
var BlockCommentOpenRegex = regexp.MustCompile(`/\*`)

// BlockCommentCloseRegex matches the close of a block comment.
var BlockCommentCloseRegex = regexp.MustCompile(`\*/`)

// BlockCommentSingleLineRegex matches a block comment that opens and closes
// on the same line.
var BlockCommentSingleLineRegex = regexp.MustCompile(`/\*.*?\*/`)

// InlineCommentRegex matches a SAS "* ... ;" inline comment. Lines containing
// "=" are excluded by the caller (an assignment, not a comment) per the
// source dialect's ambiguity between "*" as a comment marker and as
// multiplication.
var InlineCommentRegex = regexp.MustCompile(`(?i)^\s*\*[^;]*;`)

// LetBeginRegex matches the opening of a "%let name = value" assignment.
var LetBeginRegex = regexp.MustCompile(`(?is)%let\s+([A-Za-z_][A-Za-z0-9_]{0,31})\s*=\s*(.*)$`)

// SymputBeginRegex matches the opening of a "call symput('name', expr)" assignment.
var SymputBeginRegex = regexp.MustCompile(`(?is)call\s+symput\s*\(\s*['"]([A-Za-z_][A-Za-z0-9_]{0,31})['"]\s*,\s*(.*)$`)

// SemicolonEndRegex matches a terminating semicolon anywhere on the line.
var SemicolonEndRegex = regexp.MustCompile(`;`)

// DataStepBeginRegex matches "data out1 out2;" opening a DATA step.
var DataStepBeginRegex = regexp.MustCompile(`(?i)^\s*data\s+(.+?)\s*;`)

// DataSetOptionsRegex matches a parenthesized dataset-option group attached
// to a data-set name, e.g. "(compress=yes)" or "(keep=a b)".
var DataSetOptionsRegex = regexp.MustCompile(`\([^)]*\)`)

// SetStatementRegex matches "set in1 in2;" within a DATA step.
var SetStatementRegex = regexp.MustCompile(`(?i)\bset\s+(` + DataNamePattern + `)`)

// RunRegex matches a "run;" statement on its own line (possibly with
// surrounding whitespace).
var RunRegex = regexp.MustCompile(`(?i)^\s*run\s*;\s*$`)

// ProcSqlBeginRegex matches "proc sql;" (options ignored).
var ProcSqlBeginRegex = regexp.MustCompile(`(?i)^\s*proc\s+sql\b`)

// ProcSqlQuitRegex matches "quit;".
var ProcSqlQuitRegex = regexp.MustCompile(`(?i)^\s*quit\s*;\s*$`)

// ProcSqlTerminatorRegex matches a "run;" or "quit;" statement anywhere on
// the line. PROC SQL, unlike a DATA step, may close on the same line it
// opened.
var ProcSqlTerminatorRegex = regexp.MustCompile(`(?i)\b(?:run|quit)\s*;`)

// ProcRegex matches the start of any "proc <name>" statement.
var ProcRegex = regexp.MustCompile(`(?i)^\s*proc\s+([A-Za-z_][A-Za-z0-9_]*)`)

// CreateTableRegex matches "create table <name>" / "create view <name>".
var CreateTableRegex = regexp.MustCompile(`(?i)create\s+(?:table|view)\s+(` + DataNamePattern + `)`)

// InsertIntoRegex matches "insert into <name>".
var InsertIntoRegex = regexp.MustCompile(`(?i)insert\s+into\s+(` + DataNamePattern + `)`)

// UpdateRegex matches "update <name>".
var UpdateRegex = regexp.MustCompile(`(?i)\bupdate\s+(` + DataNamePattern + `)`)

// FromRegex matches "from <name>" in a SQL FROM clause.
var FromRegex = regexp.MustCompile(`(?i)\bfrom\s+(` + DataNamePattern + `)`)

// JoinRegex matches "join <name>" (any join flavor).
var JoinRegex = regexp.MustCompile(`(?i)\bjoin\s+(` + DataNamePattern + `)`)

// ProcSortBeginRegex matches "proc sort data=<name> ...;".
var ProcSortBeginRegex = regexp.MustCompile(`(?i)^\s*proc\s+sort\b`)

// ProcSortDataRegex extracts the "data=" argument of a PROC SORT.
var ProcSortDataRegex = regexp.MustCompile(`(?i)\bdata\s*=\s*(` + DataNamePattern + `)`)

// ProcSortOutRegex extracts the "out=" argument of a PROC SORT.
var ProcSortOutRegex = regexp.MustCompile(`(?i)\bout\s*=\s*(` + DataNamePattern + `)`)

// ProcImportBeginRegex matches "proc import datafile=... ;".
var ProcImportBeginRegex = regexp.MustCompile(`(?i)^\s*proc\s+import\b`)

// ProcImportDatafileRegex extracts the "datafile=" argument.
var ProcImportDatafileRegex = regexp.MustCompile(`(?i)\bdatafile\s*=\s*"?([^;"]+)"?`)

// ProcImportOutRegex extracts the "out=" argument of a PROC IMPORT.
var ProcImportOutRegex = regexp.MustCompile(`(?i)\bout\s*=\s*(` + DataNamePattern + `)`)

// ProcExportBeginRegex matches "proc export data=... ;".
var ProcExportBeginRegex = regexp.MustCompile(`(?i)^\s*proc\s+export\b`)

// ProcExportDataRegex extracts the "data=" argument of a PROC EXPORT.
var ProcExportDataRegex = regexp.MustCompile(`(?i)\bdata\s*=\s*(` + DataNamePattern + `)`)

// ProcExportOutfileRegex extracts the "outfile=" argument.
var ProcExportOutfileRegex = regexp.MustCompile(`(?i)\boutfile\s*=\s*"?([^;"]+)"?`)

// UserMacroNames lists the recognized user-defined macro names the script
// extractor treats as MacroCallUserDef components. Extend this list (or the
// --keyword flag registry, see internal/patterns.Registry) to recognize
// additional site-specific macros.
var UserMacroNames = []string{"libname", "exist_file"}

// UserMacroCallRegex builds a regex matching "%name(" for one recognized
// macro name.
func UserMacroCallRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)%` + regexp.QuoteMeta(name) + `\s*\(`)
}

// Registry holds the mutable, site-extensible parts of the pattern library:
// additional user-defined macro names loaded from a --profile YAML file or
// repeated --keyword flags. The read-only regexes above never change; this
// is the one piece of the pattern library that downstream code may extend
// per run.
type Registry struct {
	UserMacroNames []string
}

// NewRegistry returns a Registry seeded with the built-in macro names.
func NewRegistry() *Registry {
	names := make([]string, len(UserMacroNames))
	copy(names, UserMacroNames)
	return &Registry{UserMacroNames: names}
}

// AddKeyword registers an additional user-defined macro name to recognize.
func (r *Registry) AddKeyword(name string) {
	for _, existing := range r.UserMacroNames {
		if existing == name {
			return
		}
	}
	r.UserMacroNames = append(r.UserMacroNames, name)
}
