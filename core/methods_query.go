// Package core: read-only Graph accessors.
//
// Accessors never expose internal maps or slices; everything returned is a
// fresh copy, sorted where the neighbor-set order would otherwise leak map
// iteration nondeterminism.

package core

import "sort"

// HasNode reports whether name is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	_, exists := g.adjacency[name]
	return exists
}

// HasEdge reports whether u is a node and v is a member of u's neighbor set.
// For undirected graphs this is symmetric in u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = neighbors[v]

	return ok
}

// Neighbors returns a sorted copy of u's neighbor names.
// Returns ErrNodeNotFound if u is not a node.
// Complexity: O(deg(u) log deg(u)).
func (g *Graph) Neighbors(u string) ([]string, error) {
	neighbors, ok := g.adjacency[u]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(neighbors))
	for v := range neighbors {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Nodes returns all node names in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// NodeOrder returns all node names in the order they were first added.
// Complexity: O(V).
func (g *Graph) NodeOrder() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of edges. Undirected edges count once.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int { return len(g.Edges()) }

// Edges returns every edge as a [from, to] pair, sorted lexicographically.
// For undirected graphs each symmetric pair appears exactly once, oriented
// so that from ≤ to.
// Complexity: O(V + E log E).
func (g *Graph) Edges() [][2]string {
	out := make([][2]string, 0, len(g.adjacency))
	for u, neighbors := range g.adjacency {
		for v := range neighbors {
			if !g.directed && u > v {
				continue // symmetric twin already covered by (v,u)
			}
			out = append(out, [2]string{u, v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
