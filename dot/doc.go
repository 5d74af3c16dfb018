// Package dot reads and writes core.Graph values in a restricted subset of
// the DOT graph description language.
//
// The subset
//
//	graph <Name> {
//	  <u> -- <v>;
//	}
//
// or, for directed graphs, "digraph <Name> { <u> -> <v>; ... }". One
// statement per line. A node token is a contiguous non-whitespace run.
// No attributes, no subgraphs, no comments, no quoting.
//
// Parsing
//
//   - A "graph <name> {" header declares an undirected graph named <name>;
//     "digraph <name> {" declares a directed one. The header overrides any
//     WithName/WithDirected defaults and is honored at most once.
//   - An edge line declares an edge with the arrow of the current mode:
//     "--" when undirected, "->" when directed. Both endpoints are
//     auto-added as nodes before the edge is inserted.
//   - Every other line — including the closing "}" and near-miss syntax —
//     is silently skipped. The subset raises no parse errors.
//   - An unreadable source fails loudly: ParseFile propagates the open
//     error, Parse wraps scanner failures in ErrRead. A partial graph is
//     never returned silently.
//
// Rendering
//
//	Marshal emits the same grammar: nodes iterated in sorted order, an
//	isolated node as a bare "  <node>;" statement, each undirected edge
//	exactly once (only when u < v), each directed adjacency entry once.
//	Output round-trips through Parse and is valid input for a generic DOT
//	renderer.
//
// Errors
//
//   - ErrNilGraph — Marshal received a nil graph.
//   - ErrRead    — the underlying reader failed mid-scan.
package dot
