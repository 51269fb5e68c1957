package bfs_test

import (
	"testing"

	"github.com/katalvlaran/sepgraph/bfs"
	"github.com/katalvlaran/sepgraph/core"
)

// BenchmarkDistances_Chain measures BFS on a linear chain of size N.
func BenchmarkDistances_Chain(b *testing.B) {
	const N = 10000
	a := buildPath(N + 1)

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1)) // V + E
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(a, 1)
	}
}

// BenchmarkDistances_BinaryTree runs BFS on a complete binary tree of
// depth D (~2^D−1 nodes).
func BenchmarkDistances_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 nodes, 1022 edges
	nodeCount := (1 << depth) - 1

	a := core.NewAdjacency()
	for i := 1; i <= nodeCount/2; i++ {
		a.AddEdge(core.NodeID(i), core.NodeID(2*i))
		a.AddEdge(core.NodeID(i), core.NodeID(2*i+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*nodeCount - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(a, 1)
	}
}
