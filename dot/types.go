package dot

import (
	"errors"
	"regexp"

	"github.com/dotgraph-io/dotgraph/core"
)

// Keywords and arrows of the DOT subset.
const (
	keywordGraph    = "graph"
	keywordDigraph  = "digraph"
	arrowUndirected = "--"
	arrowDirected   = "->"
)

// Sentinel errors for the codec.
var (
	// ErrNilGraph is returned by Marshal when given a nil graph.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrRead wraps a failure of the underlying reader during Parse.
	ErrRead = errors.New("dot: read failed")
)

// The full line grammar: two header forms and one edge form. Anything a
// regex here does not match is not a statement of the subset.
var (
	reDigraphHeader = regexp.MustCompile(`^\s*digraph\s+(\S+)\s*\{`)
	reGraphHeader   = regexp.MustCompile(`^\s*graph\s+(\S+)\s*\{`)
	reEdgeStmt      = regexp.MustCompile(`^\s*(\S+)\s*-[->]\s*(\S+)\s*;`)
)

// Option configures parsing defaults. A header line in the source takes
// precedence over every Option.
type Option func(*parseOptions)

// parseOptions holds caller-supplied defaults for Parse.
type parseOptions struct {
	name     string
	directed bool
	warnf    core.WarnFunc
}

// defaultParseOptions returns the defaults: name core.DefaultName,
// undirected, warnings discarded.
func defaultParseOptions() parseOptions {
	return parseOptions{name: core.DefaultName}
}

// WithName sets the graph name used when the source has no header.
func WithName(name string) Option {
	return func(o *parseOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithDirected sets the directedness assumed until (and unless) a header
// line declares otherwise.
func WithDirected(directed bool) Option {
	return func(o *parseOptions) { o.directed = directed }
}

// WithWarnFunc forwards fn to the constructed graph as its warning sink.
func WithWarnFunc(fn core.WarnFunc) Option {
	return func(o *parseOptions) { o.warnf = fn }
}
