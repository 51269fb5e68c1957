package bfs

import (
	"fmt"

	"github.com/katalvlaran/sepgraph/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state for one Distances call.
type walker struct {
	adj   *core.Adjacency
	opts  Options
	queue []queueItem
	dist  DistanceMap
}

// Distances runs breadth-first search on adj starting from source,
// applying any number of functional Options, and returns the map of
// minimum hop counts to every reachable node.
// Returns ErrAdjacencyNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for store failures,
// a context error on cancellation, or any user-supplied hook error.
func Distances(adj *core.Adjacency, source core.NodeID, opts ...Option) (DistanceMap, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Validate the source node.
	if !adj.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, adj.NodeCount()),
		dist:  make(DistanceMap, adj.NodeCount()),
	}
	// Seed the frontier with the source at depth 0.
	w.enqueue(source, 0)

	return w.dist, w.loop()
}

// enqueue records id at depth d — the distance map entry doubles as the
// visited gate — and appends it to the frontier.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.dist[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors retrieves the current node's neighbors, applies the
// MaxDepth cap, and enqueues each unseen neighbor at depth+1.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.adj.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.dist[nbr]; !seen {
			w.enqueue(nbr, nextDepth)
		}
	}

	return nil
}
