// Package sepgraph measures degrees of separation in undirected graphs —
// from a raw edge list to eccentricities, path-length distributions and
// component structure, all driven by per-node breadth-first search.
//
// 🚀 What is sepgraph?
//
//	A compact, deterministic analysis toolkit that brings together:
//		• Adjacency store: symmetric neighbor sets, built once, read forever
//		• BFS engine: unweighted shortest-hop distances with hooks & cancellation
//		• Separation statistics: diameter, average eccentricity, path-length
//		  mean / std-dev, normalized distribution and its mode
//		• Component analysis: the classic distinct-eccentricity proxy plus a
//		  proper traversal-based labeling
//		• Edge-list ingestion: two-column CSV → adjacency store
//
// ✨ Why choose sepgraph?
//
//   - Predictable – sorted iteration everywhere, same input ⇒ same report
//   - Honest numbers – population statistics, documented tie-breaks
//   - Scales sideways – per-node BFS fans out over an optional worker pool
//   - Extensible – OnVisit hooks and functional options on every engine
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/       — Adjacency store: NodeID, neighbor sets, build-then-read contract
//	bfs/        — breadth-first distance maps over an Adjacency
//	separation/ — the statistics aggregator and component labeling
//	edgelist/   — CSV edge-list reader
//	report/     — text & JSON rendering of analysis results
//	builder/    — deterministic graph fixtures (path, cycle, grid, random …)
//	cmd/        — the sepstat command-line front-end
//
// Quick ASCII example:
//
//	    1───2───3
//
//	a path of three nodes has diameter 2, eccentricities {2, 1, 2},
//	and a separation distribution of {1: 2/3, 2: 1/3}.
//
//	go get github.com/katalvlaran/sepgraph
package sepgraph
