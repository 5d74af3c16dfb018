package dfs

import (
	"fmt"

	"github.com/dotgraph-io/dotgraph/core"
)

// frame pairs a node with the parent recorded when it was pushed.
// parent is empty only for the root.
type frame struct {
	id     string
	parent string
}

// Tree runs depth-first search on g from start and returns the spanning
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

	tree := core.NewGraph(core.WithName(TreeName))
	visited := make(map[string]struct{}, g.NodeCount())

	// Explicit stack in place of recursion; a node may sit on the stack
	// several times, so the visited check happens at pop time.
	stack := []frame{{id: start}}
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[top.id]; seen {
			continue
		}

		// First visit: enter the tree and link back to the parent.
		visited[top.id] = struct{}{}
		_ = tree.AddNode(top.id)
		if top.parent != "" {
			_ = tree.AddEdge(top.id, top.parent)
		}
		if err := o.OnVisit(top.id); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit error at %q: %w", top.id, err)
		}

		// Push unvisited neighbors in reverse sorted order so the smallest
		// is popped first, matching the recursive visitation order.
		neighbors, _ := g.Neighbors(top.id) // top.id was taken from the graph
		for i := len(neighbors) - 1; i >= 0; i-- {
			nbr := neighbors[i]
			if _, seen := visited[nbr]; !seen {
				stack = append(stack, frame{id: nbr, parent: top.id})
			}
		}
	}

	return tree, nil
}
