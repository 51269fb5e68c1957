// Package builder provides deterministic adjacency fixtures for tests,
// benchmarks, and examples: classic topologies whose separation statistics
// are known in closed form, plus a seeded random generator.
//
// What:
//
//   - Path(n), Cycle(n), Complete(n), Star(leaves), Grid(w, h): canonical
//     shapes over nodes numbered 0..n-1 (row-major for Grid).
//   - RandomSparse(n, p, seed): Erdős–Rényi-like sampling — each unordered
//     pair {i, j} independently becomes an edge with probability p. All n
//     nodes are recorded up front, so a node that draws no edge is still an
//     isolated key of the store.
//
// Determinism:
//
//   - Stable node order (ascending), stable pair-trial order (i asc, j > i),
//     and a seeded rand source: same inputs ⇒ identical adjacency.
//
// Errors:
//
//   - ErrTooFewNodes: a size parameter is below the constructor's minimum.
//   - ErrInvalidProbability: p outside the closed interval [0, 1].
package builder
