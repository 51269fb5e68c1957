package separation

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sepgraph/core"
)

// Analyze runs breadth-first search once from every node of adj and folds
// the distance maps into a complete Result.
// Returns ErrNilAdjacency or ErrEmptyAdjacency for invalid input,
// ErrOptionViolation for bad options, or a context error on cancellation.
func Analyze(adj *core.Adjacency, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := adj.NodeCount()
	if n == 0 {
		return nil, ErrEmptyAdjacency
	}

	// Fold per-node partials into the global accumulators. The fold runs
	// on the calling goroutine only, regardless of worker count.
	var (
		eccSum  int64
		eccMax  int
		eccSeen = make(map[int]struct{})
		freq    = make(map[int]int64) // positive path length → occurrences
	)
	err := sweep(adj, o, func(ns nodeStats) {
		eccSum += int64(ns.ecc)
		eccSeen[ns.ecc] = struct{}{}
		if ns.ecc > eccMax {
			eccMax = ns.ecc
		}
		for length, count := range ns.freq {
			freq[length] += count
		}
	})
	if err != nil {
		return nil, err
	}

	return finalize(n, eccMax, eccSum, len(eccSeen), freq), nil
}

// finalize turns the sweep accumulators into a Result.
func finalize(n, eccMax int, eccSum int64, eccDistinct int, freq map[int]int64) *Result {
	res := &Result{
		MaxSeparation:   eccMax,
		AvgEccentricity: float64(eccSum) / float64(n),
		Components:      eccDistinct,
		Distribution:    make(map[int]float64, len(freq)),
	}

	var total, sum int64
	lengths := make([]int, 0, len(freq))
	for length, count := range freq {
		lengths = append(lengths, length)
		total += count
		sum += int64(length) * count
	}
	if total == 0 {
		// No positive distances (isolated nodes only): every float metric
		// stays at its defined zero and the distribution is empty.
		return res
	}
	slices.Sort(lengths)

	res.AvgPathLength = float64(sum) / float64(total)

	// Normalize the tally and pick the mode. Lengths are scanned in
	// ascending order, so ties resolve to the smallest length.
	xs := make([]float64, 0, len(lengths))
	ws := make([]float64, 0, len(lengths))
	for _, length := range lengths {
		p := float64(freq[length]) / float64(total)
		res.Distribution[length] = p
		if p > res.ModeProbability {
			res.ModeProbability = p
			res.ModeSeparation = length
		}
		xs = append(xs, float64(length))
		ws = append(ws, float64(freq[length]))
	}

	// Weighted reductions over the histogram are identical to folding the
	// raw distance sequence, without materializing O(V²) values.
	res.MeanSeparation = stat.Mean(xs, ws)
	res.StdDevSeparation = stat.PopStdDev(xs, ws)

	return res
}

// Eccentricities returns each node's eccentricity: the greatest hop count
// in its BFS distance map, 0 for an isolated node.
func Eccentricities(adj *core.Adjacency, opts ...Option) (map[core.NodeID]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ecc := make(map[core.NodeID]int, adj.NodeCount())
	err := sweep(adj, o, func(ns nodeStats) {
		ecc[ns.source] = ns.ecc
	})
	if err != nil {
		return nil, err
	}

	return ecc, nil
}
