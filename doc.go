// Package dotgraph is a small in-memory graph toolkit built around a
// restricted subset of the DOT graph description language.
//
// What you get:
//
//	core/      — the Graph type: named string nodes, directed or undirected
//	             adjacency sets, incremental mutation, deterministic rendering
//	dot/       — import/export for the DOT subset (graph/digraph headers,
//	             "u -- v;" and "u -> v;" edge statements, nothing more)
//	bfs/       — breadth-first spanning-tree extraction
//	dfs/       — depth-first spanning-tree extraction (explicit stack)
//	toposort/  — topological ordering of directed acyclic graphs (Kahn)
//
// A thin CLI driver lives under cmd/dotgraph for exercising the library
// against DOT files from a shell.
//
// Design ground rules:
//
//   - Nodes are opaque strings compared by equality and ordered
//     lexicographically wherever deterministic output matters.
//   - Edges exist only between nodes that were already added; an edge to an
//     unknown endpoint is a warning, never a crash.
//   - Traversals return fresh Graph instances; the receiver is never mutated.
//   - Graphs are assumed small: repeated linear scans beat clever indexing
//     at this scale, and no operation takes a lock.
//
// Quick example:
//
//	g := core.NewGraph(core.WithName("net"))
//	g.AddNodes([]string{"a", "b", "c"})
//	g.AddEdges([][2]string{{"a", "b"}, {"b", "c"}})
//	tree, _ := bfs.Tree(g, "a")
//	text, _ := dot.Marshal(tree)
package dotgraph
