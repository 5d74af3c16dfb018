// Package bfs extracts breadth-first spanning trees from a core.Graph.
//
// What
//
//   - Tree(g, start, opts...) returns a new undirected graph holding the
//     breadth-first spanning structure reachable from start: every reached
//     node, plus one tree edge (parent, child) per first discovery.
//   - The receiver is never mutated; the result shares no storage with it.
//
// Contract
//
//	A directed receiver or an unknown start node is not an error: the
//	result is a fresh empty graph named EmptyTreeName ("EmptyBFSTree").
//	Only a nil receiver (ErrGraphNil), a cancelled context, or a failing
//	OnVisit hook produce an error.
//
// Determinism
//
//	Neighbors are iterated in sorted order (core.Neighbors returns a sorted
//	copy), so the visit sequence and the resulting tree are reproducible.
//
// Termination
//
//	The main loop runs until the queue empties — never until some
//	unvisited pool drains — so a start node whose component does not cover
//	the whole graph terminates normally and the tree covers exactly the
//	reachable component.
//
// Complexity (V = |Nodes|, E = |Edges| of the reachable component)
//
//   - Time:   O(V log V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx)  cancellation via context.Context.
//   - WithOnVisit(fn)   hook on each dequeued node; an error aborts.
//
// Errors
//
//   - ErrGraphNil        if g is nil.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit.
package bfs
