// Package lineage builds the per-file lineage graph: a directed multigraph
// whose nodes are qualified data names and whose edges are labeled with the
// procedure kind that consumed/produced them.
//
// The multigraph itself is backed by gonum.org/v1/gonum/graph/multi — the
// same pair of datasets can be linked by more than one procedure over the
// life of a script, so plain directed edges are not enough.
package lineage

import (
	"sort"

	"github.com/viant-archive/lineagecli/internal/logextract"
	"github.com/viant-archive/lineagecli/internal/script"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// Node is a lineage graph node: a fully qualified data name.
type Node struct {
	UID  int64
	Name string
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.UID }

// Line is a labeled directed multi-edge: input --(Label)--> output.
type Line struct {
	F, T  graph.Node
	UID   int64
	Label string
}

// From implements graph.Line.
func (l Line) From() graph.Node { return l.F }

// To implements graph.Line.
func (l Line) To() graph.Node { return l.T }

// ID implements graph.Line.
func (l Line) ID() int64 { return l.UID }

// ReversedLine implements graph.Line.
func (l Line) ReversedLine() graph.Line {
	return Line{F: l.T, T: l.F, UID: l.UID, Label: l.Label}
}

// Edge is the flattened, renderer-friendly view of one Line: the pair of
// qualified names plus the label, as CSV/DOT output need it.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is the lineage multigraph for one processed file.
type Graph struct {
	underlying *multi.DirectedGraph
	byName     map[string]Node
	nextNodeID int64
	nextLineID int64
	edges      []Edge
}

// NewGraph returns an empty lineage graph.
func NewGraph() *Graph {
	return &Graph{
		underlying: multi.NewDirectedGraph(),
		byName:     make(map[string]Node),
	}
}

// Underlying exposes the backing gonum multigraph, for callers that want to
// run gonum algorithms (reachability, connected components, ...) over the
// lineage graph directly.
func (g *Graph) Underlying() *multi.DirectedGraph {
	return g.underlying
}

func (g *Graph) nodeFor(name string) Node {
	if n, ok := g.byName[name]; ok {
		return n
	}
	n := Node{UID: g.nextNodeID, Name: name}
	g.nextNodeID++
	g.byName[name] = n
	g.underlying.AddNode(n)
	return n
}

// AddEdge records one input --(label)--> output edge. A self-referential
// step (a dataset rewritten in place) is kept in the flattened edge list
// that drives CSV/DOT output, but gonum's multigraph rejects self loops, so
// it is not mirrored into the backing graph.
func (g *Graph) AddEdge(from, to, label string) {
	g.edges = append(g.edges, Edge{From: from, To: to, Label: label})
	f := g.nodeFor(from)
	t := g.nodeFor(to)
	if f.UID == t.UID {
		return
	}
	g.underlying.SetLine(Line{F: f, T: t, UID: g.nextLineID, Label: label})
	g.nextLineID++
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Nodes returns every node name, sorted, for deterministic output.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.byName))
	for name := range g.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scriptEdgeLabel maps a script.Kind to its upper-cased graph edge label.
// Data names keep their original casing; procedure labels are normalized.
func scriptEdgeLabel(k script.Kind) string {
	switch k {
	case script.DataStep:
		return "DATASTEP"
	case script.ProcSql:
		return "PROCSQL"
	case script.ProcSort:
		return "PROCSORT"
	case script.ProcImport:
		return "PROCIMPORT"
	case script.ProcExport:
		return "PROCEXPORT"
	default:
		return ""
	}
}

// isGraphEligible reports whether a script component kind ever contributes
// lineage edges.
func isGraphEligible(k script.Kind) bool {
	switch k {
	case script.DataStep, script.ProcSql, script.ProcSort, script.ProcImport, script.ProcExport:
		return true
	default:
		return false
	}
}

// emitEdges adds every in/out pair for one component or procedure,
// recovering from a panic so a single malformed component skips its edges
// instead of aborting the file.
func (g *Graph) emitEdges(label string, ins, outs []script.DataName) {
	defer func() { _ = recover() }()
	for _, in := range ins {
		for _, out := range outs {
			g.AddEdge(in.String(), out.String(), label)
		}
	}
}

// BuildFromScript adds the Cartesian product of input/output edges for
// every graph-eligible script component.
func (g *Graph) BuildFromScript(components []script.Component) {
	for _, c := range components {
		if !isGraphEligible(c.Kind) {
			continue
		}
		g.emitEdges(scriptEdgeLabel(c.Kind), c.DataIn, c.DataOut)
	}
}

// BuildFromLog adds the Cartesian product of input/output edges for every
// log-derived procedure whose kind is neither LibrefAssign, LibrefDeassign,
// nor empty — libref assign/deassign notes never emit graph edges.
func (g *Graph) BuildFromLog(procedures []logextract.Procedure) {
	for _, p := range procedures {
		if p.Kind == "" || p.Kind == "LIBREFASSIGN" || p.Kind == "LIBREFDEASSIGN" {
			continue
		}
		g.emitEdges(p.Kind, p.Inputs, p.Outputs)
	}
}
