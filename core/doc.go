// Package core defines the Adjacency store — the symmetric neighbor-set
// representation of an undirected graph that every other sepgraph package
// consumes.
//
// What:
//
//   - NodeID is an int64 naming a vertex; no metadata beyond the identifier.
//   - Adjacency maps each NodeID to the set of its neighbors. Inserting an
//     edge records both directions, so the mapping is symmetric by
//     construction.
//   - Nodes exist only when recorded: AddEdge creates both endpoints,
//     AddNode records an isolated node with an empty neighbor set. "All
//     nodes" means the key set of the mapping.
//
// Lifecycle:
//
//   - Build once (AddEdge / AddNode), then treat as read-only. The store
//     performs no locking: after the last mutation it is safe for any number
//     of concurrent readers, which is exactly what the per-node BFS sweep in
//     separation/ relies on.
//
// Determinism:
//
//   - NodeIDs and Neighbors return ascending-sorted slices, so traversal
//     order is reproducible run to run.
//
// Errors:
//
//   - ErrNodeNotFound: a queried node is not a key of the mapping.
package core
