// Package bfs: tunable options, result type, and error definitions for
// breadth-first distance computation over a core.Adjacency.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sepgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrAdjacencyNil is returned if a nil adjacency store is passed.
	ErrAdjacencyNil = errors.New("bfs: adjacency is nil")

	// ErrSourceNotFound is returned when the source node is absent
	// from the adjacency store.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the store fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// DistanceMap maps each node reachable from the source to its minimum
// hop count; the source itself maps to 0. One DistanceMap is scoped to a
// single Distances call.
type DistanceMap map[core.NodeID]int

// Eccentricity returns the greatest hop count in the map — the source
// node's eccentricity. An empty map yields 0.
func (d DistanceMap) Eccentricity() int {
	ecc := 0
	for _, hops := range d {
		if hops > ecc {
			ecc = hops
		}
	}

	return ecc
}

// Option configures Distances via functional arguments. An invalid Option
// (e.g. negative depth cap) is recorded internally and surfaced as
// ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this hop count.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when a node is dequeued, with its hop count.
	// If it returns an error, the walk aborts and propagates it.
	OnVisit func(id core.NodeID, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: context.Background(),
// no depth limit, a no-op visit hook, and a clear error slot.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnVisit:  func(core.NodeID, int) error { return nil },
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps exploration at the given hop count.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback to run on each visited node; returning
// an error from the callback stops the walk.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
