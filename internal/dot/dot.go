// Package dot renders a built sbom.Oracle's transition table as a
// Graphviz DOT graph, for offline inspection. It is the debug
// collaborator the specification names but leaves unimplemented: it
// reads only the Oracle's already-computed, read-only state and is
// never required for correctness.
package dot

import (
	"fmt"
	"io"

	"github.com/itgcl/sbom"
)

// Write renders oracle as a DOT digraph to w. Terminal states are
// drawn as double circles labelled with their pattern set; primary
// trie edges are drawn solid, supplementary oracle edges dashed.
func Write(w io.Writer, oracle *sbom.Oracle) error {
	if _, err := fmt.Fprintln(w, "digraph oracle {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=LR;"); err != nil {
		return err
	}

	for id := 0; id < oracle.StateCount(); id++ {
		shape := "circle"
		label := fmt.Sprintf("%d", id)
		if terms := oracle.Terms(id); len(terms) > 0 {
			shape = "doublecircle"
			label = fmt.Sprintf("%d\\n%s", id, joinPatterns(terms))
		}
		if _, err := fmt.Fprintf(w, "  %d [shape=%s, label=%q];\n", id, shape, label); err != nil {
			return err
		}
	}

	for _, e := range oracle.DumpTransitions() {
		style := "solid"
		if !oracle.IsPrimaryEdge(e) {
			style = "dashed"
		}
		if _, err := fmt.Fprintf(w, "  %d -> %d [label=%q, style=%s];\n", e.From, e.To, symbolLabel(e.Symbol), style); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func joinPatterns(patterns [][]byte) string {
	out := ""
	for i, p := range patterns {
		if i > 0 {
			out += ","
		}
		out += string(p)
	}
	return out
}

func symbolLabel(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return fmt.Sprintf("\\\\x%02x", b)
}
