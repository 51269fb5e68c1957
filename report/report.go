// Package report renders a separation.Result for human or machine
// consumption: one labeled line per scalar metric, then the normalized
// distribution with its mode. Distribution rows print in ascending length
// order so output is reproducible.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/sepgraph/separation"
)

// ErrNilResult is returned when there is nothing to render.
var ErrNilResult = errors.New("report: result is nil")

// Write renders res as a plain-text report.
func Write(w io.Writer, res *separation.Result) error {
	if res == nil {
		return ErrNilResult
	}

	_, err := fmt.Fprintf(w,
		"Max Degree of Separation: %d\n"+
			"Average Max Degree: %g\n"+
			"Number of Connected Components: %d\n"+
			"Average Shortest Path Length: %g\n"+
			"Mean of Separations: %g\n"+
			"Standard Deviation of Separations: %g\n",
		res.MaxSeparation,
		res.AvgEccentricity,
		res.Components,
		res.AvgPathLength,
		res.MeanSeparation,
		res.StdDevSeparation,
	)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(w, "----------------"); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, "Separation Distribution (length: probability):"); err != nil {
		return err
	}
	lengths := make([]int, 0, len(res.Distribution))
	for length := range res.Distribution {
		lengths = append(lengths, length)
	}
	slices.Sort(lengths)
	for _, length := range lengths {
		if _, err = fmt.Fprintf(w, "  %d: %.6f\n", length, res.Distribution[length]); err != nil {
			return err
		}
	}
	if _, err = fmt.Fprintln(w, "----------------"); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Degree with Maximum Percentage: %d, Percentage: %g\n",
		res.ModeSeparation, res.ModeProbability)

	return err
}

// WriteJSON renders res as indented JSON using the Result field tags.
func WriteJSON(w io.Writer, res *separation.Result) error {
	if res == nil {
		return ErrNilResult
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}
