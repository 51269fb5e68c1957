package core

import "slices"

// AddNode records id with an (initially) empty neighbor set.
// Adding an existing node is a no-op; its neighbors are preserved.
//
// Time O(1).
func (a *Adjacency) AddNode(id NodeID) {
	if _, ok := a.nodes[id]; !ok {
		a.nodes[id] = make(neighborSet)
	}
}

// AddEdge records the undirected edge u–v, creating either endpoint as
// needed. Both directions are inserted, preserving the symmetry invariant:
// v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v). Re-adding an existing edge is a
// no-op; a self-loop records u as its own neighbor once.
//
// Time O(1).
func (a *Adjacency) AddEdge(u, v NodeID) {
	a.AddNode(u)
	a.AddNode(v)
	if _, ok := a.nodes[u][v]; ok {
		return
	}
	a.nodes[u][v] = struct{}{}
	a.nodes[v][u] = struct{}{}
	a.edges++
}

// HasNode reports whether id is a key of the mapping.
//
// Time O(1).
func (a *Adjacency) HasNode(id NodeID) bool {
	_, ok := a.nodes[id]

	return ok
}

// Neighbors returns the neighbors of id in ascending order, or
// ErrNodeNotFound if id was never recorded. The returned slice is a copy.
//
// Time O(d log d) for degree d.
func (a *Adjacency) Neighbors(id NodeID) ([]NodeID, error) {
	set, ok := a.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]NodeID, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	slices.Sort(out)

	return out, nil
}

// Degree returns the number of neighbors of id, or ErrNodeNotFound.
//
// Time O(1).
func (a *Adjacency) Degree(id NodeID) (int, error) {
	set, ok := a.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(set), nil
}

// NodeIDs returns every recorded node in ascending order.
//
// Time O(V log V).
func (a *Adjacency) NodeIDs() []NodeID {
	out := make([]NodeID, 0, len(a.nodes))
	for id := range a.nodes {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// NodeCount returns the number of recorded nodes.
func (a *Adjacency) NodeCount() int { return len(a.nodes) }

// EdgeCount returns the number of distinct undirected edges.
func (a *Adjacency) EdgeCount() int { return a.edges }
