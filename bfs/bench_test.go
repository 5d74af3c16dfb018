package bfs_test

import (
	"fmt"
	"testing"

	"github.com/dotgraph-io/dotgraph/bfs"
	"github.com/dotgraph-io/dotgraph/core"
)

// BenchmarkTree_Chain measures extraction over a linear chain of N+1 nodes.
func BenchmarkTree_Chain(b *testing.B) {
	const N = 5000
	g := core.NewGraph()
	for i := 0; i <= N; i++ {
		_ = g.AddNode(fmt.Sprintf("v%04d", i))
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%04d", i), fmt.Sprintf("v%04d", i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Tree(g, "v0000")
	}
}

// BenchmarkTree_Star measures extraction over a hub with N spokes.
func BenchmarkTree_Star(b *testing.B) {
	const N = 5000
	g := core.NewGraph()
	_ = g.AddNode("hub")
	for i := 0; i < N; i++ {
		spoke := fmt.Sprintf("s%04d", i)
		_ = g.AddNode(spoke)
		_ = g.AddEdge("hub", spoke)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Tree(g, "hub")
	}
}
