package dfs_test

import (
	"fmt"

	"github.com/dotgraph-io/dotgraph/core"
	"github.com/dotgraph-io/dotgraph/dfs"
	"github.com/dotgraph-io/dotgraph/dot"
)

// ExampleTree dives depth-first through a square with a diagonal and
// renders the resulting tree.
func ExampleTree() {
	g := core.NewGraph(core.WithName("square"))
	_ = g.AddNodes([]string{"a", "b", "c", "d"})
	_ = g.AddEdges([][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}, {"a", "c"},
	})

	tree, err := dfs.Tree(g, "a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, _ := dot.Marshal(tree)
	fmt.Print(out)
	// Output:
	// graph DFSTree {
	//   a -- b;
	//   b -- c;
	//   c -- d;
	// }
}

// ExampleTree_unknownStart shows the empty-result contract.
func ExampleTree_unknownStart() {
	g := core.NewGraph()
	_ = g.AddNode("only")

	tree, _ := dfs.Tree(g, "elsewhere")
	fmt.Println(tree.Name(), tree.NodeCount())
	// Output:
	// EmptyDFSTree 0
}
