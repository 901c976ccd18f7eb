package logextract

import (
	"testing"

	"github.com/viant-archive/lineagecli/internal/linebuf"
)

func load(t *testing.T, path string) *linebuf.Buffer {
	t.Helper()
	buf, err := linebuf.Load(path)
	if err != nil {
		t.Fatalf("linebuf.Load(%s): %v", path, err)
	}
	return buf
}

func TestGroupProcedures_DataStepInputOutput(t *testing.T) {
	buf := load(t, "../../testdata/logs/e4_datastep.log")
	comps := Segment(buf)
	ClassifyAll(comps)
	procs := GroupProcedures(comps)

	if len(procs) != 1 {
		t.Fatalf("expected 1 procedure, got %d: %+v", len(procs), procs)
	}
	p := procs[0]
	if p.Kind != "DATASTEP" {
		t.Errorf("expected kind DATASTEP, got %s", p.Kind)
	}
	if len(p.Inputs) != 1 || p.Inputs[0].String() != "WORK.IN1" {
		t.Errorf("expected inputs=[WORK.IN1], got %v", p.Inputs)
	}
	if len(p.Outputs) != 1 || p.Outputs[0].String() != "WORK.OUT1" {
		t.Errorf("expected outputs=[WORK.OUT1], got %v", p.Outputs)
	}
}

// A libref assignment is still grouped as a procedure, but callers skip it
// when building the lineage graph and the mapping table.
func TestGroupProcedures_LibrefAssignIsIgnorable(t *testing.T) {
	buf := load(t, "../../testdata/logs/e5_libref_assign.log")
	comps := Segment(buf)
	ClassifyAll(comps)
	procs := GroupProcedures(comps)

	if len(procs) != 1 {
		t.Fatalf("expected 1 procedure, got %d: %+v", len(procs), procs)
	}
	if procs[0].Kind != "LIBREFASSIGN" {
		t.Errorf("expected kind LIBREFASSIGN, got %s", procs[0].Kind)
	}
	if len(procs[0].Inputs) != 0 || len(procs[0].Outputs) != 0 {
		t.Errorf("expected no inputs/outputs, got in=%v out=%v", procs[0].Inputs, procs[0].Outputs)
	}
}

func TestClassify_ThereWerePhrasingIsAnInputNote(t *testing.T) {
	buf := linebuf.New([]string{
		"NOTE: There were 42 observations read from the data set SRC.ORDERS.",
		"NOTE: The data set WORK.SUM has 7 observations and 2 variables.",
		"NOTE: PROCEDURE MEANS used (Total process time):",
	})
	comps := Segment(buf)
	ClassifyAll(comps)
	procs := GroupProcedures(comps)

	if len(procs) != 1 {
		t.Fatalf("expected 1 procedure, got %d: %+v", len(procs), procs)
	}
	p := procs[0]
	if p.Kind != "PROC:MEANS" {
		t.Errorf("expected kind PROC:MEANS, got %s", p.Kind)
	}
	if len(p.Inputs) != 1 || p.Inputs[0].String() != "SRC.ORDERS" {
		t.Errorf("expected inputs=[SRC.ORDERS], got %v", p.Inputs)
	}
	if len(p.Outputs) != 1 || p.Outputs[0].String() != "WORK.SUM" {
		t.Errorf("expected outputs=[WORK.SUM], got %v", p.Outputs)
	}
}

func TestSegment_AbsorbsWrappedScriptLineContinuation(t *testing.T) {
	buf := linebuf.New([]string{
		"1    data a;",
		"2      set b wrapped onto",
		"1  a continuation line;", // lower number than 2: absorbed, not a new component
		"NOTE: DATA statement used (Total process time):",
	})
	comps := Segment(buf)

	var scriptLines int
	for _, c := range comps {
		if c.Kind == ScriptLine {
			scriptLines++
		}
	}
	if scriptLines != 2 {
		t.Errorf("expected 2 ScriptLine components (the second '1' line absorbed into line 2's group), got %d: %+v", scriptLines, comps)
	}
}
