// Package separation: options, the Result type, and error definitions for
// the statistics aggregator.
package separation

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for separation analysis.
var (
	// ErrNilAdjacency is returned if a nil adjacency store is passed.
	ErrNilAdjacency = errors.New("separation: adjacency is nil")

	// ErrEmptyAdjacency is returned when the store has no nodes; every
	// metric assumes at least one recorded node.
	ErrEmptyAdjacency = errors.New("separation: adjacency has no nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("separation: invalid option supplied")
)

// Result holds every metric of one analysis run.
//
// All pairwise quantities are over ordered reachable pairs: each unordered
// pair contributes twice, once from each endpoint's BFS. Self-distances of
// zero are excluded throughout.
type Result struct {
	// MaxSeparation is the maximum eccentricity across all nodes — the
	// graph diameter, restricted to each node's own reachable set.
	MaxSeparation int `json:"max_separation"`

	// AvgEccentricity is the arithmetic mean of per-node eccentricities.
	AvgEccentricity float64 `json:"avg_eccentricity"`

	// Components counts distinct eccentricity values. This is a proxy for
	// the connected-component count: separate components sharing a diameter
	// collapse into one. See ComponentCount for the true count.
	Components int `json:"components"`

	// AvgPathLength is the sum of positive distances divided by their count.
	AvgPathLength float64 `json:"avg_path_length"`

	// MeanSeparation and StdDevSeparation are the arithmetic mean and the
	// population standard deviation of all positive pairwise distances.
	MeanSeparation   float64 `json:"mean_separation"`
	StdDevSeparation float64 `json:"stddev_separation"`

	// Distribution maps each positive path length to the fraction of all
	// positive distances with that length; values sum to 1 when non-empty.
	Distribution map[int]float64 `json:"distribution"`

	// ModeSeparation is the path length with the highest probability;
	// ties resolve to the smallest length. ModeProbability is its value.
	ModeSeparation  int     `json:"mode_separation"`
	ModeProbability float64 `json:"mode_probability"`
}

// Option configures Analyze via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Analyze runs.
type Option func(*Options)

// Options holds parameters customizing one analysis run.
type Options struct {
	// Ctx allows cancellation mid-sweep; each BFS checks it per dequeue.
	Ctx context.Context

	// Workers is the number of goroutines running per-node BFS calls.
	// Values ≤ 1 mean a sequential sweep.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: context.Background()
// and a sequential sweep.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		err:     nil,
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

// WithWorkers sets the number of BFS worker goroutines.
//
//	n > 1: parallel sweep with n workers
//	n == 0 or n == 1: sequential sweep
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
