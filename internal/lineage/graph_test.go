package lineage

import (
	"testing"

	"github.com/viant-archive/lineagecli/internal/linebuf"
	"github.com/viant-archive/lineagecli/internal/logextract"
	"github.com/viant-archive/lineagecli/internal/patterns"
	"github.com/viant-archive/lineagecli/internal/script"
)

func TestBuildFromScript_ProcSqlMultiOutputProducesFourEdges(t *testing.T) {
	buf, err := linebuf.Load("../../testdata/scripts/e2_proc_sql.sas")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	comps := script.Extract(buf, patterns.NewRegistry())

	g := NewGraph()
	g.BuildFromScript(comps)

	edges := g.Edges()
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d: %+v", len(edges), edges)
	}
	for _, e := range edges {
		if e.Label != "PROCSQL" {
			t.Errorf("expected label PROCSQL, got %s", e.Label)
		}
	}
}

// An in-place step ("data a; set a; run;") produces a self-referential
// edge; it survives into the flattened edge list without panicking the
// backing multigraph.
func TestBuildFromScript_SelfReferentialStepDoesNotPanic(t *testing.T) {
	comps := []script.Component{{
		Kind:    script.DataStep,
		DataIn:  []script.DataName{script.ParseDataName("work.a")},
		DataOut: []script.DataName{script.ParseDataName("work.a")},
	}}
	g := NewGraph()
	g.BuildFromScript(comps)

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d: %+v", len(edges), edges)
	}
	if edges[0].From != "work.a" || edges[0].To != "work.a" || edges[0].Label != "DATASTEP" {
		t.Errorf("unexpected edge: %+v", edges[0])
	}
}

func TestBuildFromLog_SelfReferentialProcedureDoesNotPanic(t *testing.T) {
	procs := []logextract.Procedure{{
		Kind:    "PROC:SORT",
		Inputs:  []script.DataName{script.ParseDataName("lib.t")},
		Outputs: []script.DataName{script.ParseDataName("lib.t")},
	}}
	g := NewGraph()
	g.BuildFromLog(procs)

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d: %+v", len(edges), edges)
	}
	if edges[0].From != "lib.t" || edges[0].To != "lib.t" {
		t.Errorf("unexpected edge: %+v", edges[0])
	}
}

func TestBuildFromLog_LibrefAssignEmitsNoEdges(t *testing.T) {
	procs := []logextract.Procedure{
		{Kind: "LIBREFASSIGN"},
		{Kind: "LIBREFDEASSIGN"},
		{Kind: ""},
	}
	g := NewGraph()
	g.BuildFromLog(procs)

	if len(g.Edges()) != 0 {
		t.Errorf("expected zero edges for libref/empty-kind procedures, got %v", g.Edges())
	}
}

func TestBuildFromLog_DataStepProducesEdge(t *testing.T) {
	procs := []logextract.Procedure{
		{
			Kind:    "DATASTEP",
			Inputs:  []script.DataName{script.ParseDataName("work.in1")},
			Outputs: []script.DataName{script.ParseDataName("work.out1")},
		},
	}
	g := NewGraph()
	g.BuildFromLog(procs)

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].From != "work.in1" || edges[0].To != "work.out1" || edges[0].Label != "DATASTEP" {
		t.Errorf("unexpected edge: %+v", edges[0])
	}
}
