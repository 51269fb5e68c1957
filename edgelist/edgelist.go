// Package edgelist reads a two-column integer edge list — one undirected
// edge per CSV row, no header — into a core.Adjacency store.
//
// Parsing is strict: the first row with a wrong field count or a
// non-integer field aborts the load with an error wrapping ErrBadRecord
// and naming the offending 1-based record, so no statistics are ever
// computed from a partially trusted file.
package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/sepgraph/core"
)

// ErrBadRecord indicates a row that is not a pair of integer node IDs.
var ErrBadRecord = errors.New("edgelist: malformed record")

// edgeFields is the exact number of columns an edge row carries.
const edgeFields = 2

// Read parses edge rows from r and returns the resulting adjacency store.
// Both directions of every edge are recorded, preserving the symmetry
// invariant. An empty input yields an empty store.
func Read(r io.Reader) (*core.Adjacency, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = edgeFields
	cr.TrimLeadingSpace = true

	adj := core.NewAdjacency()
	for n := 1; ; n++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return adj, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrBadRecord, n, err)
		}

		u, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: field 1 %q is not an integer", ErrBadRecord, n, record[0])
		}
		v, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: field 2 %q is not an integer", ErrBadRecord, n, record[1])
		}

		adj.AddEdge(core.NodeID(u), core.NodeID(v))
	}
}

// Load opens path and delegates to Read.
func Load(path string) (*core.Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}
