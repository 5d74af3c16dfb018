// Package core defines the central Graph type: a set of named nodes plus a
// set of edges between them, directed or undirected, stored as an adjacency
// mapping from node name to neighbor-name set.
//
// What
//
//   - Nodes are opaque strings; a node exists iff its name is a key of the
//     adjacency mapping, so an isolated node is a key with an empty set.
//   - Edges connect two already-added nodes. For undirected graphs edge
//     membership is symmetric: v ∈ adjacency[u] ⟺ u ∈ adjacency[v].
//   - Mutation: AddNode, AddNodes, AddEdge, AddEdges, RemoveNode.
//   - Query: HasNode, HasEdge, Neighbors, Nodes, NodeOrder, NodeCount,
//     EdgeCount, Edges, Name, Directed.
//   - Clone produces a deep copy with independently mutable storage, the
//     scratch-state idiom used by toposort.
//   - String renders a human-readable adjacency listing with nodes and
//     neighbors in sorted order.
//
// Warnings
//
//	Adding an edge with a missing endpoint is non-fatal by contract: the
//	mutation is skipped, ErrNodeNotFound is returned, and the graph's warn
//	sink (WithWarnFunc) receives a diagnostic line. The default sink
//	discards.
//
// Determinism
//
//	Neighbor sets are unordered; every accessor that exposes them returns a
//	fresh sorted copy. NodeOrder additionally exposes insertion order for
//	callers that need stable bookkeeping across a traversal.
//
// Concurrency
//
//	None. A Graph is privately owned by its creator and all operations run
//	to completion in the calling goroutine; concurrent access is out of
//	contract.
//
// Errors
//
//   - ErrEmptyNodeName — node name is the empty string.
//   - ErrNodeNotFound  — an operation referenced a node that does not exist.
package core
