package separation

import (
	"slices"

	"github.com/katalvlaran/sepgraph/bfs"
	"github.com/katalvlaran/sepgraph/core"
)

// Components finds the connected components of adj by seeding a BFS at each
// not-yet-seen node and collecting its reachable set. Each component's node
// IDs are returned in ascending order, and components are ordered by their
// smallest member. An empty store yields no components.
//
// This is the corrected alternative to Result.Components, which preserves
// the distinct-eccentricity proxy and can under-count.
//
// Time:   O(V log V + E)
// Memory: O(V)
func Components(adj *core.Adjacency) ([][]core.NodeID, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	seen := make(map[core.NodeID]struct{}, adj.NodeCount())
	var comps [][]core.NodeID

	for _, id := range adj.NodeIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		// BFS to collect the component containing id.
		dist, err := bfs.Distances(adj, id)
		if err != nil {
			return nil, err
		}
		comp := make([]core.NodeID, 0, len(dist))
		for member := range dist {
			seen[member] = struct{}{}
			comp = append(comp, member)
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// ComponentCount returns the number of connected components of adj.
func ComponentCount(adj *core.Adjacency) (int, error) {
	comps, err := Components(adj)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
