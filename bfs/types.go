// Package bfs: options and error definitions for breadth-first tree
// extraction over a core.Graph.
package bfs

import (
	"context"
	"errors"
)

// Names carried by result graphs.
const (
	// TreeName is the name of a successfully extracted spanning tree.
	TreeName = "BFSTree"

	// EmptyTreeName is the name of the empty result returned for a
	// directed receiver or an unknown start node.
	EmptyTreeName = "EmptyBFSTree"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures tree extraction via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing the traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for each node as it is dequeued. If it returns an
	// error, extraction aborts and propagates that error.
	OnVisit func(id string) error
}

// DefaultOptions returns Options with a Background context and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on each dequeued node; returning an
// error from it stops the traversal.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
