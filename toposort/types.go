// Package toposort: options and error definitions for topological sorting.
package toposort

import (
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("toposort: graph is nil")

// Option configures optional behavior of Sort.
type Option func(*Options)

// Options holds settings for Sort, currently only cancellation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns the defaults (Background context).
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
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
