package core

import (
	"fmt"
	"strings"
)

// String renders a human-readable adjacency listing: a header naming the
// graph and its directedness, then one line per node (sorted) with its
// sorted neighbors, comma-separated.
//
//	[Graph G, directed: false]
//	a: b, c
//	b: a
//	c: a
//
// Complexity: O(V log V + E log E).
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Graph %s, directed: %v]\n", g.name, g.directed)
	for _, node := range g.Nodes() {
		neighbors, _ := g.Neighbors(node)
		fmt.Fprintf(&b, "%s: %s\n", node, strings.Join(neighbors, ", "))
	}

	return b.String()
}
