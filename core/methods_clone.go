package core

// Clone returns a deep copy of the Graph: name, directedness, warn sink,
// node insertion order, and an independently mutable adjacency mapping.
// No storage is shared with the receiver, so the clone is safe to use as
// disposable scratch state (toposort removes nodes from one as it goes).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		name:      g.name,
		directed:  g.directed,
		warnf:     g.warnf,
		adjacency: make(map[string]map[string]struct{}, len(g.adjacency)),
		order:     make([]string, len(g.order)),
	}
	copy(clone.order, g.order)
	for u, neighbors := range g.adjacency {
		set := make(map[string]struct{}, len(neighbors))
		for v := range neighbors {
			set[v] = struct{}{}
		}
		clone.adjacency[u] = set
	}

	return clone
}
