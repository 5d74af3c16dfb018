package dot_test

import (
	"fmt"

	"github.com/dotgraph-io/dotgraph/core"
	"github.com/dotgraph-io/dotgraph/dot"
)

// ExampleParseString loads a directed graph and reports an adjacency query.
func ExampleParseString() {
	g, err := dot.ParseString("digraph deps {\n  build -> test;\n  test -> release;\n}\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Name(), g.Directed())
	fmt.Println(g.HasEdge("build", "test"), g.HasEdge("test", "build"))
	// Output:
	// deps true
	// true false
}

// ExampleMarshal renders a hand-built undirected graph.
func ExampleMarshal() {
	g := core.NewGraph(core.WithName("ring"))
	_ = g.AddNodes([]string{"a", "b", "c"})
	_ = g.AddEdges([][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})

	out, _ := dot.Marshal(g)
	fmt.Print(out)
	// Output:
	// graph ring {
	//   a -- b;
	//   a -- c;
	//   b -- c;
	// }
}
