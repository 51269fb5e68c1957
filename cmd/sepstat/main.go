// Command sepstat loads a two-column CSV edge list, runs the separation
// analysis, and prints the report.
//
//	sepstat edges.csv
//	sepstat --workers 8 --json edges.csv
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sepgraph/edgelist"
	"github.com/katalvlaran/sepgraph/report"
	"github.com/katalvlaran/sepgraph/separation"
)

var version = "dev"

var (
	workers int
	asJSON  bool
	verbose bool
)

func main() {
	// trap Ctrl+C and cancel the sweep mid-flight
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{
		Use:          "sepstat <edges.csv>",
		Short:        "Compute degree-of-separation statistics for an undirected graph edge list.",
		Args:         cobra.ExactArgs(1),
		RunE:         newRunAnalysis(ctx),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 1, "BFS worker goroutines (1 = sequential)")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunAnalysis(ctx context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		path := args[0]
		start := time.Now()
		adj, err := edgelist.Load(path)
		if err != nil {
			return err
		}
		log.Debugf("loaded %s: %d nodes, %d edges in %s",
			path, adj.NodeCount(), adj.EdgeCount(), time.Since(start))

		start = time.Now()
		res, err := separation.Analyze(adj,
			separation.WithContext(ctx),
			separation.WithWorkers(workers),
		)
		if err != nil {
			return err
		}
		log.Debugf("analyzed %d nodes with %d worker(s) in %s",
			adj.NodeCount(), workers, time.Since(start))

		if asJSON {
			return report.WriteJSON(cmd.OutOrStdout(), res)
		}

		return report.Write(cmd.OutOrStdout(), res)
	}
}
