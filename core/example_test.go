package core_test

import (
	"fmt"

	"github.com/dotgraph-io/dotgraph/core"
)

// ExampleGraph_String builds a small undirected triangle and prints the
// human-readable adjacency listing.
func ExampleGraph_String() {
	g := core.NewGraph(core.WithName("triangle"))
	_ = g.AddNodes([]string{"A", "B", "C"})
	_ = g.AddEdges([][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})

	fmt.Print(g)
	// Output:
	// [Graph triangle, directed: false]
	// A: B, C
	// B: A, C
	// C: A, B
}

// ExampleGraph_HasEdge shows directed edges staying one-way.
func ExampleGraph_HasEdge() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddNodes([]string{"a", "b"})
	_ = g.AddEdge("a", "b")

	fmt.Println(g.HasEdge("a", "b"))
	fmt.Println(g.HasEdge("b", "a"))
	// Output:
	// true
	// false
}
