// Package dot renders automaton graphs in Graphviz DOT format.
package dot

import (
	"fmt"
	"io"
	"sort"
)

// Edge is one labelled transition between two nodes.
type Edge struct {
	From  uint32
	To    uint32
	Label string
}

// Graph is the renderer's view of an automaton: node ids, the start node,
// the accepting nodes and all edges.
type Graph struct {
	// Prefix is prepended to node ids to form DOT identifiers ("q" -> q0, q1...).
	Prefix  string
	Nodes   []uint32
	Start   uint32
	Accepts []uint32
	Edges   []Edge
}

// Write emits g as a left-to-right digraph. Accepting nodes are drawn as
// double circles and the start node gets an arrow from an invisible point.
func Write(w io.Writer, g Graph) error {
	ew := &errWriter{w: w}
	accepting := make(map[uint32]bool, len(g.Accepts))
	for _, a := range g.Accepts {
		accepting[a] = true
	}

	nodes := append([]uint32(nil), g.Nodes...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	ew.printf("digraph G {\n")
	ew.printf("    rankdir=LR;\n")
	for _, n := range nodes {
		shape := "circle"
		if accepting[n] {
			shape = "doublecircle"
		}
		ew.printf("    %s%d [shape=%s];\n", g.Prefix, n, shape)
	}
	for _, e := range g.Edges {
		ew.printf("    %s%d -> %s%d [label=%q];\n", g.Prefix, e.From, g.Prefix, e.To, e.Label)
	}
	ew.printf("    _start [shape=point]; _start -> %s%d;\n", g.Prefix, g.Start)
	ew.printf("}\n")
	return ew.err
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
