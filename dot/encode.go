package dot

import (
	"fmt"
	"strings"

	"github.com/dotgraph-io/dotgraph/core"
)

// Marshal renders g as DOT-subset text.
//
// The header is "digraph <name> {" with arrow "->" for directed graphs,
// "graph <name> {" with arrow "--" otherwise. Nodes are iterated in sorted
// order; a node with no neighbors becomes a bare "  <node>;" statement.
// Directed graphs emit one line per stored adjacency entry; undirected
// graphs emit each symmetric pair once, only when u < v.
//
// Returns ErrNilGraph for a nil graph.
// Complexity: O(V log V + E log E).
func Marshal(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	keyword, arrow := keywordGraph, arrowUndirected
	if g.Directed() {
		keyword, arrow = keywordDigraph, arrowDirected
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s {\n", keyword, g.Name())
	for _, u := range g.Nodes() {
		neighbors, _ := g.Neighbors(u)
		if len(neighbors) == 0 {
			fmt.Fprintf(&b, "  %s;\n", u)
			continue
		}
		for _, v := range neighbors {
			if g.Directed() || u < v {
				fmt.Fprintf(&b, "  %s %s %s;\n", u, arrow, v)
			}
		}
	}
	b.WriteString("}\n")

	return b.String(), nil
}
