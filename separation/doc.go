// Package separation aggregates degree-of-separation statistics for an
// undirected graph by running one breadth-first search per node and folding
// the resulting distance maps.
//
// What:
//
//   - Analyze(adj, opts...) produces a Result with every reported metric in
//     a single sweep: maximum separation (diameter over reachable sets),
//     average eccentricity, the distinct-eccentricity component count,
//     average shortest-path length over ordered reachable pairs, mean and
//     population standard deviation of all positive pairwise distances, and
//     the normalized path-length distribution with its mode.
//   - Eccentricities(adj) exposes the per-node maxima the scalar metrics
//     are folded from.
//   - Components / ComponentCount provide proper traversal-based component
//     labeling, complementing the distinct-eccentricity count in Result.
//
// Semantics worth knowing:
//
//   - Every unordered pair is observed twice, once from each endpoint's
//     BFS; all metrics share that convention, so they stay consistent.
//   - Result.Components counts distinct eccentricity values. Two separate
//     components with equal diameters collapse into one — use
//     ComponentCount for the true count.
//   - Distribution probabilities sum to 1 (±1e-9) whenever any positive
//     distance exists; the mode resolves ties to the smallest length.
//   - Standard deviation is the population form (no Bessel correction).
//
// Degenerate inputs:
//
//   - Empty adjacency → ErrEmptyAdjacency; no partial Result is returned.
//   - No positive distances (only isolated nodes) → all float metrics are
//     0.0, the distribution is empty, and the mode is 0 with probability 0.
//
// Concurrency:
//
//   - WithWorkers(n) fans the per-node BFS calls out over n goroutines
//     pulling from a jobs channel; partial results are folded by the
//     calling goroutine alone, so no accumulator is shared. The default is
//     a sequential sweep.
//
// Complexity: O(V·(V+E)) time, O(V) transient memory per BFS.
package separation
