// Package core: NodeID, the Adjacency store type, and its sentinel errors.
package core

import "errors"

// ErrNodeNotFound indicates an operation referenced a node that is not
// a key of the adjacency mapping.
var ErrNodeNotFound = errors.New("core: node not found")

// NodeID uniquely identifies a vertex within an Adjacency store.
type NodeID int64

// neighborSet is the set of nodes adjacent to one node.
type neighborSet map[NodeID]struct{}

// Adjacency is an undirected graph stored as neighbor sets.
//
// The zero value is not usable; construct with NewAdjacency. Build the store
// with AddEdge/AddNode, then treat it as read-only: none of the accessors
// mutate, and an immutable Adjacency is safe for concurrent readers.
type Adjacency struct {
	nodes map[NodeID]neighborSet
	edges int // undirected edge count; a self-loop counts once
}

// NewAdjacency returns an empty Adjacency store.
func NewAdjacency() *Adjacency {
	return &Adjacency{nodes: make(map[NodeID]neighborSet)}
}
