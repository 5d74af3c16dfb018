package bfs

import (
	"fmt"

	"github.com/dotgraph-io/dotgraph/core"
)

// walker encapsulates mutable traversal state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []string
	visited map[string]struct{}
	tree    *core.Graph
}

// Tree runs breadth-first search on g from start and returns the spanning
// tree of the reachable component as a new undirected graph named TreeName.
//
// By contract a directed receiver or an unknown start yields an empty graph
// named EmptyTreeName and a nil error. A nil receiver yields ErrGraphNil.
func Tree(g *core.Graph, start string, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Empty-result contract: wrong mode or unknown root.
	if g.Directed() || !g.HasNode(start) {
		return core.NewGraph(core.WithName(EmptyTreeName)), nil
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]string, 0, n),
		visited: make(map[string]struct{}, n),
		tree:    core.NewGraph(core.WithName(TreeName)),
	}

	// Seed: the root enters the tree and the queue immediately.
	w.enqueue(start)

	// Loop until the queue empties. Nodes outside start's component never
	// enter the queue, so queue-empty is the only safe exit condition.
	for len(w.queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur := w.dequeue()
		if err := o.OnVisit(cur); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", cur, err)
		}
		w.expand(cur)
	}

	return w.tree, nil
}

// enqueue marks id visited, adds it to the tree, and appends it to the queue.
func (w *walker) enqueue(id string) {
	w.visited[id] = struct{}{}
	_ = w.tree.AddNode(id)
	w.queue = append(w.queue, id)
}

// dequeue pops the head of the queue.
func (w *walker) dequeue() string {
	id := w.queue[0]
	w.queue = w.queue[1:]

	return id
}

// expand discovers cur's unvisited neighbors in sorted order, recording one
// tree edge per discovery.
func (w *walker) expand(cur string) {
	neighbors, _ := w.graph.Neighbors(cur) // cur was taken from the graph
	for _, nbr := range neighbors {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		w.enqueue(nbr)
		_ = w.tree.AddEdge(cur, nbr) // both endpoints are tree nodes
	}
}
