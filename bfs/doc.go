// Package bfs computes unweighted shortest-hop distances over a
// core.Adjacency by level-order traversal.
//
// What:
//
//   - Distances(adj, source, opts...) returns a DistanceMap holding the
//     source at 0 and every node reachable from it at its minimum hop count.
//   - Unreachable nodes are absent from the result — this is how multiple
//     connected components manifest to callers.
//   - Functional options add cancellation (WithContext), a depth cap
//     (WithMaxDepth) and a per-visit hook (WithOnVisit).
//
// Algorithm:
//
//  1. Seed the FIFO frontier with the source at depth 0 and record it in
//     the distance map; the map doubles as the visited gate.
//  2. Dequeue, invoke the OnVisit hook, then enqueue each unseen neighbor
//     at depth+1. Ties among same-level neighbors carry no meaning — only
//     the hop count matters, not path identity.
//  3. Check context cancellation once per dequeue.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)
//
// Errors:
//
//   - ErrAdjacencyNil: nil adjacency store.
//   - ErrSourceNotFound: source is not a key of the store.
//   - ErrOptionViolation: an invalid option (e.g. negative depth cap).
//   - ErrNeighbors: neighbor lookup failed mid-walk.
package bfs
