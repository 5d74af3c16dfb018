package toposort

import "github.com/dotgraph-io/dotgraph/core"

// Sort returns the nodes of g in topological order, or an empty sequence
// when g is not a DAG (cyclic, or undirected). A nil receiver yields
// ErrGraphNil.
//
// The receiver is never mutated: the sort consumes a scratch Clone.
func Sort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// An undirected graph carries no edge precedence to respect; by the
	// shallow error taxonomy it is simply not a DAG.
	if !g.Directed() {
		return []string{}, nil
	}

	// Disposable working copy; nodes are deleted from it as they are output.
	scratch := g.Clone()
	order := make([]string, 0, scratch.NodeCount())

	for scratch.NodeCount() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		next, ok := smallestSource(scratch)
		if !ok {
			// Every remaining node has an incoming edge: a cycle blocks the
			// rest. Not a DAG — empty by contract.
			return []string{}, nil
		}
		order = append(order, next)
		_ = scratch.RemoveNode(next) // also clears incoming references
	}

	return order, nil
}

// smallestSource returns the lexicographically smallest remaining node with
// in-degree zero, recomputed fresh from the scratch graph's current keys
// and edges. ok is false when no such node exists.
func smallestSource(scratch *core.Graph) (id string, ok bool) {
	hasIncoming := make(map[string]struct{}, scratch.NodeCount())
	for _, e := range scratch.Edges() {
		hasIncoming[e[1]] = struct{}{}
	}
	for _, n := range scratch.Nodes() { // sorted, so first hit is smallest
		if _, blocked := hasIncoming[n]; !blocked {
			return n, true
		}
	}

	return "", false
}
