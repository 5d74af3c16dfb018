// Package dfs extracts depth-first spanning trees from a core.Graph.
//
// What
//
//   - Tree(g, start, opts...) returns a new undirected graph holding one
//     depth-first spanning tree rooted at start: every node of start's
//     component, plus one tree edge (node, parent) per first visit.
//   - The receiver is never mutated; the result shares no storage with it.
//
// Contract
//
//	Identical to package bfs: a directed receiver or an unknown start node
//	yields a fresh empty graph named EmptyTreeName ("EmptyDFSTree") and a
//	nil error; only a nil receiver, a cancelled context, or a failing
//	OnVisit hook produce an error.
//
// Implementation
//
//	The walk uses an explicit stack rather than recursion, so graphs in the
//	low thousands of nodes (and far beyond) cannot exhaust the call stack.
//	Each frame carries the node and its recorded parent; neighbors are
//	pushed in reverse sorted order, which reproduces exactly the visitation
//	order of the equivalent recursion over sorted neighbors.
//
// Complexity (V = |Nodes|, E = |Edges| of the reachable component)
//
//   - Time:   O(V log V + E)
//   - Memory: O(V + E) for the explicit stack in the worst case.
//
// Options
//
//   - WithContext(ctx)  cancellation via context.Context.
//   - WithOnVisit(fn)   hook on each first visit; an error aborts.
//
// Errors
//
//   - ErrGraphNil        if g is nil.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit.
package dfs
