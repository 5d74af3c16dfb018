package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dotgraph-io/dotgraph/core"
)

// parser accumulates one pass over the source before the graph is built.
// Directedness can flip when the header is seen, and it decides which edge
// lines even qualify for matching, so edges are buffered as pairs and
// replayed once the final mode is known.
type parser struct {
	name       string
	directed   bool
	headerSeen bool
	edges      [][2]string
}

// Parse reads DOT-subset text from r and constructs a graph from it.
//
// Options supply defaults for name and directedness; a graph/digraph header
// line in the source overrides both and is honored at most once. Edge lines
// are matched only with the arrow of the current mode ("--" undirected,
// "->" directed) and their endpoints are auto-added. Every other line is
// silently skipped — the subset has no parse errors. A reader failure is
// wrapped in ErrRead.
// Complexity: O(lines + V + E).
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := defaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{name: o.name, directed: o.directed}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return p.build(o.warnf), nil
}

// ParseString parses DOT-subset text held in s.
func ParseString(s string, opts ...Option) (*core.Graph, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile opens path and parses its contents. An unopenable file is a
// fatal failure: the error is propagated and no partial graph is returned.
func ParseFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dot: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// line classifies a single statement. Header detection runs first so a
// header line is never tried against the edge pattern; "digraph" must be
// checked before "graph" since it contains it as a substring.
func (p *parser) line(s string) {
	switch {
	case strings.Contains(s, keywordDigraph):
		if m := reDigraphHeader.FindStringSubmatch(s); m != nil && !p.headerSeen {
			p.name, p.directed, p.headerSeen = m[1], true, true
		}
	case strings.Contains(s, keywordGraph):
		if m := reGraphHeader.FindStringSubmatch(s); m != nil && !p.headerSeen {
			p.name, p.directed, p.headerSeen = m[1], false, true
		}
	case p.arrowPresent(s):
		if m := reEdgeStmt.FindStringSubmatch(s); m != nil {
			p.edges = append(p.edges, [2]string{m[1], m[2]})
		}
	}
}

// arrowPresent reports whether s carries the arrow of the current mode.
func (p *parser) arrowPresent(s string) bool {
	if p.directed {
		return strings.Contains(s, arrowDirected)
	}
	return strings.Contains(s, arrowUndirected)
}

// build materializes the buffered statements into a fresh graph.
// Both endpoints of every edge are added first, so AddEdge cannot warn here.
func (p *parser) build(warnf core.WarnFunc) *core.Graph {
	g := core.NewGraph(
		core.WithName(p.name),
		core.WithDirected(p.directed),
		core.WithWarnFunc(warnf),
	)
	for _, e := range p.edges {
		_ = g.AddNode(e[0])
		_ = g.AddNode(e[1])
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}
