// Package dotio renders a lineage.Graph as a Graphviz DOT file (the
// flow_NAME.dot output) using github.com/awalterschulze/gographviz.
package dotio

import (
	"fmt"
	"os"

	"github.com/awalterschulze/gographviz"
	"github.com/viant-archive/lineagecli/internal/lineage"
)

// WriteFlowGraph renders g as a directed DOT graph at path.
func WriteFlowGraph(path string, g *lineage.Graph) error {
	gv := gographviz.NewGraph()
	if err := gv.SetName("flow"); err != nil {
		return err
	}
	if err := gv.SetDir(true); err != nil {
		return err
	}
	if err := gv.AddAttr("flow", "rankdir", "LR"); err != nil {
		return err
	}
	if err := gv.AddAttr("flow", "splines", "line"); err != nil {
		return err
	}

	for _, name := range g.Nodes() {
		if err := gv.AddNode("flow", quote(name), nil); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		attrs := map[string]string{"label": quote(e.Label)}
		if err := gv.AddEdge(quote(e.From), quote(e.To), true, attrs); err != nil {
			return err
		}
	}

	return os.WriteFile(path, []byte(gv.String()), 0644)
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
