package core

import "errors"

// DefaultName is the graph name used when none is supplied.
const DefaultName = "G"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that the provided node name is empty.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// WarnFunc receives non-fatal diagnostic messages, printf-style.
type WarnFunc func(format string, args ...any)

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithName sets the graph name, used only for display and DOT export.
// An empty name is ignored and DefaultName is kept.
func WithName(name string) GraphOption {
	return func(g *Graph) {
		if name != "" {
			g.name = name
		}
	}
}

// WithDirected sets the graph's directedness (true = directed).
// Directedness is fixed for the lifetime of the Graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWarnFunc installs fn as the sink for non-fatal warnings, such as an
// AddEdge referencing an unknown endpoint. A nil fn keeps the default
// (discard).
func WithWarnFunc(fn WarnFunc) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.warnf = fn
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// The adjacency keys are the authoritative node set. order tracks the
// sequence in which nodes were first added, for callers that need stable
// insertion-order bookkeeping (see NodeOrder).
type Graph struct {
	name     string
	directed bool
	warnf    WarnFunc

	adjacency map[string]map[string]struct{}
	order     []string
}

// NewGraph creates an empty Graph. By default it is undirected, named
// DefaultName, and discards warnings.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		name:      DefaultName,
		warnf:     func(string, ...any) {},
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Name returns the graph's display name.
func (g *Graph) Name() string { return g.name }

// Directed reports whether edges are one-directional.
func (g *Graph) Directed() bool { return g.directed }
