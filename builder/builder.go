package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sepgraph/core"
)

// Sentinel errors for fixture construction. Callers branch with errors.Is;
// implementations attach context via %w wrapping.
var (
	// ErrTooFewNodes indicates that a size parameter (n, leaves, w, h) is
	// smaller than the allowed minimum for the requested constructor.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")
)

// Minimum sizes per constructor (no magic literals in the checks below).
const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarLeaves    = 1
	minGridSide      = 1
)

// Path returns the linear chain 0–1–…–(n-1); n == 1 yields a single
// isolated node.
func Path(n int) (*core.Adjacency, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	a := core.NewAdjacency()
	a.AddNode(0)
	for i := 1; i < n; i++ {
		a.AddEdge(core.NodeID(i-1), core.NodeID(i))
	}

	return a, nil
}

// Cycle returns the ring 0–1–…–(n-1)–0; n must be at least 3.
func Cycle(n int) (*core.Adjacency, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	a := core.NewAdjacency()
	for i := 0; i < n; i++ {
		a.AddEdge(core.NodeID(i), core.NodeID((i+1)%n))
	}

	return a, nil
}

// Complete returns the complete graph K_n over nodes 0..n-1; n == 1 yields
// a single isolated node.
func Complete(n int) (*core.Adjacency, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	a := core.NewAdjacency()
	a.AddNode(0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a.AddEdge(core.NodeID(i), core.NodeID(j))
		}
	}

	return a, nil
}

// Star returns a hub node 0 connected to leaves 1..leaves.
func Star(leaves int) (*core.Adjacency, error) {
	if leaves < minStarLeaves {
		return nil, fmt.Errorf("Star: leaves=%d < min=%d: %w", leaves, minStarLeaves, ErrTooFewNodes)
	}
	a := core.NewAdjacency()
	for i := 1; i <= leaves; i++ {
		a.AddEdge(0, core.NodeID(i))
	}

	return a, nil
}

// Grid returns the w×h lattice with nodes numbered row-major (id = y*w + x),
// each cell linked to its right and down neighbors.
func Grid(w, h int) (*core.Adjacency, error) {
	if w < minGridSide || h < minGridSide {
		return nil, fmt.Errorf("Grid: %dx%d below min side %d: %w", w, h, minGridSide, ErrTooFewNodes)
	}
	a := core.NewAdjacency()
	a.AddNode(0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := core.NodeID(y*w + x)
			if x+1 < w {
				a.AddEdge(id, id+1)
			}
			if y+1 < h {
				a.AddEdge(id, id+core.NodeID(w))
			}
		}
	}

	return a, nil
}

// RandomSparse samples an Erdős–Rényi-like graph over n nodes: each
// unordered pair {i, j} with i < j becomes an edge independently with
// probability p. Every node is recorded first, so nodes left without edges
// remain isolated keys. A fixed seed reproduces the same graph.
func RandomSparse(n int, p float64, seed int64) (*core.Adjacency, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	a := core.NewAdjacency()
	for i := 0; i < n; i++ {
		a.AddNode(core.NodeID(i))
	}

	// Stable trial order (i asc, j > i) keeps outcomes deterministic for a
	// fixed seed.
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				a.AddEdge(core.NodeID(i), core.NodeID(j))
			}
		}
	}

	return a, nil
}
