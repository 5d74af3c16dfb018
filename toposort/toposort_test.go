package toposort_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotgraph-io/dotgraph/core"
	"github.com/dotgraph-io/dotgraph/toposort"
)

// buildDirected returns a directed graph with the given edges.
func buildDirected(t *testing.T, nodes []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddNodes(nodes))
	require.NoError(t, g.AddEdges(edges))

	return g
}

// respectsPrecedence fails unless every edge points from an earlier to a
// later position in order.
func respectsPrecedence(t *testing.T, g *core.Graph, order []string) {
	t.Helper()
	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %s->%s out of order", e[0], e[1])
	}
}

// TestSort_NilGraph rejects a nil receiver.
func TestSort_NilGraph(t *testing.T) {
	if _, err := toposort.Sort(nil); !errors.Is(err, toposort.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
}

// TestSort_ValidDAG returns a permutation of all nodes respecting every edge.
func TestSort_ValidDAG(t *testing.T) {
	g := buildDirected(t,
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"a", "d"}, {"c", "b"}},
	)

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	assert.Len(t, order, 4)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, order)
	respectsPrecedence(t, g, order)
	// Smallest-candidate rule makes the result unique.
	assert.Equal(t, []string{"a", "c", "b", "d"}, order)
}

// TestSort_Diamond orders a diamond dependency shape.
func TestSort_Diamond(t *testing.T) {
	g := buildDirected(t,
		[]string{"root", "left", "right", "join"},
		[][2]string{{"root", "left"}, {"root", "right"}, {"left", "join"}, {"right", "join"}},
	)

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	respectsPrecedence(t, g, order)
	assert.Equal(t, []string{"root", "left", "right", "join"}, order)
}

// TestSort_NoSink: a pure cycle has no node with an empty outgoing set and
// must come back empty.
func TestSort_NoSink(t *testing.T) {
	g := buildDirected(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
	)

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestSort_CycleWithSinkReturnsEmpty pins the full cycle check: a sink node
// hanging off a cycle must not be mistaken for proof of acyclicity.
func TestSort_CycleWithSinkReturnsEmpty(t *testing.T) {
	// a → b → c → a (cycle), c → sink.
	g := buildDirected(t,
		[]string{"a", "b", "c", "sink"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "sink"}},
	)

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	assert.Empty(t, order, "sink alone does not make the graph a DAG")
}

// TestSort_PartiallyBlocked: an acyclic prefix must not leak out when a
// cycle blocks the rest.
func TestSort_PartiallyBlocked(t *testing.T) {
	// free → x, then x ⇄ y.
	g := buildDirected(t,
		[]string{"free", "x", "y"},
		[][2]string{{"free", "x"}, {"x", "y"}, {"y", "x"}},
	)

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestSort_Undirected is not a DAG by contract.
func TestSort_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodes([]string{"a", "b"}))
	require.NoError(t, g.AddEdge("a", "b"))

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestSort_EmptyGraph sorts to an empty sequence without error.
func TestSort_EmptyGraph(t *testing.T) {
	order, err := toposort.Sort(core.NewGraph(core.WithDirected(true)))
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestSort_EdgelessNodes emits isolated nodes in lexicographic order.
func TestSort_EdgelessNodes(t *testing.T) {
	g := buildDirected(t, []string{"c", "a", "b"}, nil)

	order, err := toposort.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

// TestSort_ReceiverUntouched: sorting consumes a scratch clone only.
func TestSort_ReceiverUntouched(t *testing.T) {
	g := buildDirected(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}},
	)

	_, err := toposort.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("a", "b"))
}

// TestSort_ContextCancelled aborts with the context's error.
func TestSort_ContextCancelled(t *testing.T) {
	g := buildDirected(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := toposort.Sort(g, toposort.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
	}
}
