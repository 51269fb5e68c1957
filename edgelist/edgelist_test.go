package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sepgraph/core"
	"github.com/katalvlaran/sepgraph/edgelist"
)

func TestRead_BuildsSymmetricAdjacency(t *testing.T) {
	in := "1,2\n2,3\n3,1\n"

	adj, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, adj.NodeCount())
	assert.Equal(t, 3, adj.EdgeCount())

	n, err := adj.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 3}, n)
}

func TestRead_LeadingSpaceAndDuplicates(t *testing.T) {
	in := "1, 2\n 2,1\n"

	adj, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, adj.EdgeCount())
}

func TestRead_Empty(t *testing.T) {
	adj, err := edgelist.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, adj.NodeCount())
}

func TestRead_WrongFieldCount(t *testing.T) {
	_, err := edgelist.Read(strings.NewReader("1,2,3\n"))
	assert.ErrorIs(t, err, edgelist.ErrBadRecord)
}

func TestRead_NonIntegerField(t *testing.T) {
	_, err := edgelist.Read(strings.NewReader("1,2\nfoo,3\n"))
	require.ErrorIs(t, err, edgelist.ErrBadRecord)
	// the failing record is named for diagnostics
	assert.Contains(t, err.Error(), "record 2")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.csv")
	require.NoError(t, os.WriteFile(path, []byte("10,20\n20,30\n"), 0o600))

	adj, err := edgelist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, adj.NodeCount())
}

func TestLoad_Missing(t *testing.T) {
	_, err := edgelist.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
