package toposort_test

import (
	"fmt"

	"github.com/dotgraph-io/dotgraph/dot"
	"github.com/dotgraph-io/dotgraph/toposort"
)

// ExampleSort orders a small build-dependency graph parsed from DOT text.
func ExampleSort() {
	g, err := dot.ParseString(`digraph build {
  compile -> link;
  link -> package;
  vet -> link;
}
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	order, err := toposort.Sort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(order)
	// Output:
	// [compile vet link package]
}

// ExampleSort_cycle shows the non-DAG contract: an empty sequence, no error.
func ExampleSort_cycle() {
	g, _ := dot.ParseString("digraph loop {\n  a -> b;\n  b -> a;\n}\n")

	order, _ := toposort.Sort(g)
	fmt.Println(len(order))
	// Output:
	// 0
}
