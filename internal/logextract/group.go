package logextract

// procedureKindLabel renders a classified Note's kind as the label a
// log-derived Procedure carries. Libref assign/deassign and includes are
// kept as distinct kinds so the lineage graph builder can recognize and
// skip them.
func procedureKindLabel(c Component) string {
	switch c.NoteKind {
	case NoteDataStep:
		return "DATASTEP"
	case NoteProc:
		return "PROC:" + c.ProcName
	case NoteLibrefAssign:
		return "LIBREFASSIGN"
	case NoteLibrefDeassign:
		return "LIBREFDEASSIGN"
	case NoteInclude:
		return "INCLUDE"
	default:
		return ""
	}
}

// GroupProcedures maintains a running buffer of Notes, and on each
// terminator note (EndsProcedure == true) flushes the buffer as one
// Procedure. Non-terminator notes still open at EOF are discarded — the job
// was still running or the log was truncated.
func GroupProcedures(comps []Component) []Procedure {
	var procedures []Procedure
	var group []Component

	flush := func(terminator Component) {
		if len(group) == 0 {
			return
		}
		proc := Procedure{
			StartLine: group[0].StartLine,
			EndLine:   terminator.EndLine,
			Kind:      procedureKindLabel(terminator),
		}
		for _, n := range group {
			if n.Kind != Note || !n.HasDataName {
				continue
			}
			switch n.NoteKind {
			case NoteInput:
				proc.Inputs = append(proc.Inputs, n.DataName)
			case NoteOutput:
				proc.Outputs = append(proc.Outputs, n.DataName)
			}
		}
		procedures = append(procedures, proc)
		group = nil
	}

	for _, c := range comps {
		if c.Kind != Note {
			continue
		}
		group = append(group, c)
		if c.EndsProcedure {
			flush(c)
		}
	}
	// Trailing non-terminated notes are discarded.

	return procedures
}
