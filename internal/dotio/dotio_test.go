package dotio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viant-archive/lineagecli/internal/lineage"
)

func TestWriteFlowGraph_RendersNodesAndLabeledEdge(t *testing.T) {
	g := lineage.NewGraph()
	g.AddEdge("work.raw", "work.clean", "DATASTEP")

	path := filepath.Join(t.TempDir(), "flow.dot")
	if err := WriteFlowGraph(path, g); err != nil {
		t.Fatalf("WriteFlowGraph: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, "work.raw") || !strings.Contains(dot, "work.clean") {
		t.Errorf("expected both node names in DOT output, got:\n%s", dot)
	}
	if !strings.Contains(dot, "DATASTEP") {
		t.Errorf("expected edge label DATASTEP in DOT output, got:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir") {
		t.Errorf("expected rankdir graph attribute, got:\n%s", dot)
	}
}

func TestWriteFlowGraph_EmptyGraphProducesValidDOT(t *testing.T) {
	g := lineage.NewGraph()
	path := filepath.Join(t.TempDir(), "empty.dot")
	if err := WriteFlowGraph(path, g); err != nil {
		t.Fatalf("WriteFlowGraph: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "digraph") {
		t.Errorf("expected digraph keyword, got:\n%s", data)
	}
}
