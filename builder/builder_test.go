package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sepgraph/builder"
	"github.com/katalvlaran/sepgraph/core"
)

func TestPath_Counts(t *testing.T) {
	a, err := builder.Path(5)
	require.NoError(t, err)
	assert.Equal(t, 5, a.NodeCount())
	assert.Equal(t, 4, a.EdgeCount())

	// endpoints have degree 1, inner nodes degree 2
	d, err := a.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
	d, err = a.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestPath_SingleNode(t *testing.T) {
	a, err := builder.Path(1)
	require.NoError(t, err)
	assert.Equal(t, 1, a.NodeCount())
	assert.Equal(t, 0, a.EdgeCount())
	assert.True(t, a.HasNode(0))
}

func TestCycle_Counts(t *testing.T) {
	a, err := builder.Cycle(6)
	require.NoError(t, err)
	assert.Equal(t, 6, a.NodeCount())
	assert.Equal(t, 6, a.EdgeCount())
	for _, id := range a.NodeIDs() {
		d, derr := a.Degree(id)
		require.NoError(t, derr)
		assert.Equal(t, 2, d)
	}
}

func TestComplete_Counts(t *testing.T) {
	a, err := builder.Complete(5)
	require.NoError(t, err)
	assert.Equal(t, 5, a.NodeCount())
	assert.Equal(t, 10, a.EdgeCount()) // n(n-1)/2
}

func TestStar_Counts(t *testing.T) {
	a, err := builder.Star(7)
	require.NoError(t, err)
	assert.Equal(t, 8, a.NodeCount())
	assert.Equal(t, 7, a.EdgeCount())
	d, err := a.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 7, d)
}

func TestGrid_Counts(t *testing.T) {
	a, err := builder.Grid(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, a.NodeCount())
	// horizontal: (w-1)*h, vertical: w*(h-1)
	assert.Equal(t, 3*3+4*2, a.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.RandomSparse(30, 0.2, 42)
	require.NoError(t, err)
	b, err := builder.RandomSparse(30, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, 30, a.NodeCount())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	assert.Equal(t, a.NodeIDs(), b.NodeIDs())
	for _, id := range a.NodeIDs() {
		na, nerr := a.Neighbors(id)
		require.NoError(t, nerr)
		nb, nerr := b.Neighbors(id)
		require.NoError(t, nerr)
		assert.Equal(t, na, nb, "node %d", id)
	}
}

func TestRandomSparse_ExtremeProbabilities(t *testing.T) {
	// p = 0: all nodes isolated but present
	a, err := builder.RandomSparse(10, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, a.NodeCount())
	assert.Equal(t, 0, a.EdgeCount())

	// p = 1: complete graph
	b, err := builder.RandomSparse(10, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 45, b.EdgeCount())
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"path zero", errOf(builder.Path(0)), builder.ErrTooFewNodes},
		{"cycle two", errOf(builder.Cycle(2)), builder.ErrTooFewNodes},
		{"complete zero", errOf(builder.Complete(0)), builder.ErrTooFewNodes},
		{"star zero", errOf(builder.Star(0)), builder.ErrTooFewNodes},
		{"grid zero side", errOf(builder.Grid(0, 3)), builder.ErrTooFewNodes},
		{"sparse zero nodes", errOf(builder.RandomSparse(0, 0.5, 1)), builder.ErrTooFewNodes},
		{"sparse bad p", errOf(builder.RandomSparse(5, 1.5, 1)), builder.ErrInvalidProbability},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.want)
		})
	}
}

// errOf drops the adjacency and keeps the error for table-driven checks.
func errOf(_ *core.Adjacency, err error) error { return err }
