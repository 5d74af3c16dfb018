// Package toposort orders the nodes of a directed acyclic core.Graph so
// that every edge u→v places u before v.
//
// What
//
//   - Sort(g, opts...) returns a valid topological order of all nodes, or
//     an empty sequence when g is not a DAG. Non-DAG input is not an
//     error — the empty sequence is the contract, covering cyclic graphs
//     and any undirected receiver alike.
//
// Algorithm
//
//	Kahn's algorithm over a disposable scratch clone of the receiver. Each
//	round recomputes the zero-in-degree candidate set from the remaining
//	nodes and edges, appends the lexicographically smallest candidate, and
//	removes it from the scratch graph. If nodes remain but no candidate
//	exists, a cycle blocks every remaining node and the result is empty.
//	A single sink is deliberately NOT taken as proof of acyclicity; the
//	algorithm itself is the cycle check.
//
// Determinism
//
//	The smallest-candidate rule makes the output unique for a given graph:
//	of all valid topological orders, Sort returns the lexicographically
//	first.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V·(V + E)) — candidates are recomputed per round; fine at
//     the graph sizes this module targets.
//   - Memory: O(V + E) for the scratch clone.
//
// Options
//
//   - WithContext(ctx)  cancellation via context.Context.
//
// Errors
//
//   - ErrGraphNil        if g is nil.
//   - context.Canceled   if ctx is done.
package toposort
