package separation

import (
	"sync"

	"github.com/katalvlaran/sepgraph/bfs"
	"github.com/katalvlaran/sepgraph/core"
)

// nodeStats is the partial result of one per-node BFS: the source's
// eccentricity and its tally of positive hop counts. Partials merge with
// sum / max / tally-add only, so fold order never affects the Result.
type nodeStats struct {
	source core.NodeID
	ecc    int
	freq   map[int]int64 // positive hop count → occurrences
}

// sourceStats runs one BFS from src and reduces the distance map.
func sourceStats(adj *core.Adjacency, src core.NodeID, o Options) (nodeStats, error) {
	dist, err := bfs.Distances(adj, src, bfs.WithContext(o.Ctx))
	if err != nil {
		return nodeStats{}, err
	}
	ns := nodeStats{source: src, freq: make(map[int]int64)}
	for _, hops := range dist {
		if hops == 0 {
			continue // self-distance, excluded throughout
		}
		ns.freq[hops]++
		if hops > ns.ecc {
			ns.ecc = hops
		}
	}

	return ns, nil
}

// sweep invokes fold once per node of adj, sequentially or through a
// worker pool per o.Workers. fold always runs on the calling goroutine;
// workers only produce partials onto a channel, so the accumulators the
// fold closure writes need no locking.
func sweep(adj *core.Adjacency, o Options, fold func(ns nodeStats)) error {
	ids := adj.NodeIDs()

	if o.Workers <= 1 {
		for _, id := range ids {
			ns, err := sourceStats(adj, id, o)
			if err != nil {
				return err
			}
			fold(ns)
		}

		return nil
	}

	type outcome struct {
		ns  nodeStats
		err error
	}

	jobs := make(chan core.NodeID)
	results := make(chan outcome)

	var wg sync.WaitGroup
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				ns, err := sourceStats(adj, id, o)
				results <- outcome{ns: ns, err: err}
			}
		}()
	}

	// Feed jobs and close results once every worker has drained.
	go func() {
		for _, id := range ids {
			jobs <- id
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	// Drain all outcomes even after a failure so the workers can exit;
	// the first error wins and later partials are discarded.
	var firstErr error
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		if firstErr == nil {
			fold(out.ns)
		}
	}

	return firstErr
}
