// Package core: Graph mutation primitives.
//
// All mutators preserve the two structural invariants from doc.go: every
// neighbor name is also an adjacency key, and undirected membership is
// symmetric. Operations are plain map work; nothing here allocates beyond
// the inserted entries.

package core

// AddNode inserts name with an empty neighbor set if absent.
// Idempotent: adding an existing node is a no-op.
// Returns ErrEmptyNodeName if name is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	if _, exists := g.adjacency[name]; exists {
		return nil // no-op for existing node
	}
	g.adjacency[name] = make(map[string]struct{})
	g.order = append(g.order, name)

	return nil
}

// AddNodes applies AddNode to each name in order.
// The first failure aborts and is returned; names before it stay added.
func (g *Graph) AddNodes(names []string) error {
	for _, name := range names {
		if err := g.AddNode(name); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge inserts the edge (u,v). Both endpoints must already be nodes;
// otherwise the mutation is skipped, the warn sink receives a diagnostic,
// and ErrNodeNotFound is returned — a non-fatal outcome by contract.
// For undirected graphs the symmetric entry is inserted as well.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	_, uOK := g.adjacency[u]
	_, vOK := g.adjacency[v]
	if !uOK || !vOK {
		g.warnf("core: cannot add edge (%s,%s) between unrecognized nodes", u, v)
		return ErrNodeNotFound
	}
	g.adjacency[u][v] = struct{}{}
	if !g.directed {
		g.adjacency[v][u] = struct{}{}
	}

	return nil
}

// AddEdges applies AddEdge to each pair in the given order.
// Pairs with unknown endpoints are skipped (each already warned by AddEdge);
// the remaining pairs are still applied. Returns the first error seen, so a
// caller can tell whether every pair landed.
func (g *Graph) AddEdges(pairs [][2]string) error {
	var first error
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// RemoveNode deletes name from the graph along with every edge touching it:
// the node's own adjacency entry and any appearance of name in another
// node's neighbor set. Returns ErrNodeNotFound if name is not a node.
// Complexity: O(V) — one pass over the remaining neighbor sets.
func (g *Graph) RemoveNode(name string) error {
	if _, exists := g.adjacency[name]; !exists {
		return ErrNodeNotFound
	}
	delete(g.adjacency, name)
	// Purge back-references so no neighbor set dangles.
	for _, neighbors := range g.adjacency {
		delete(neighbors, name)
	}
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}
