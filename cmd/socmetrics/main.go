// Command socmetrics loads an edge-list dataset and prints a structural
// metrics report: counts, sampled average path length, densest subgraph,
// degree distribution with a power-law fit, optional two-hop histogram,
// and top-K closeness/betweenness listings.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socmetrics/centrality"
	"github.com/katalvlaran/socmetrics/core"
	"github.com/katalvlaran/socmetrics/densest"
	"github.com/katalvlaran/socmetrics/distrib"
	"github.com/katalvlaran/socmetrics/edgelist"
	"github.com/katalvlaran/socmetrics/pathlen"
	"github.com/katalvlaran/socmetrics/powerlaw"
)

type flags struct {
	samples int
	kMin    int
	workers int
	top     int
	twoHop  bool
}

func main() {
	var f flags
	cmd := &cobra.Command{
		Use:   "socmetrics <edge-list>",
		Short: "structural metrics over an undirected edge-list graph",
		Long: "Loads a whitespace-separated edge list (plain or .gz) and prints\n" +
			"shortest-path, density, distribution, and centrality metrics.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], f)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&f.samples, "samples", pathlen.DefaultSampleSize, "BFS sources for the average-path estimate")
	cmd.Flags().IntVar(&f.kMin, "kmin", 1, "minimum degree for the power-law fit")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "goroutines for the centrality passes")
	cmd.Flags().IntVar(&f.top, "top", 10, "centrality rows to print")
	cmd.Flags().BoolVar(&f.twoHop, "two-hop", false, "also compute the O(V·(V+E)) two-hop histogram")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string, f flags) error {
	section("Loading Graph")
	var g *core.Graph
	err := timed("load", func() (err error) {
		g, err = edgelist.Open(path)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Printf("Graph loaded: %d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())

	section("Average Shortest-Path")
	var avg float64
	err = timed("BFS sampling", func() (err error) {
		avg, err = pathlen.Average(g, pathlen.WithSampleSize(f.samples))
		return err
	})
	if err != nil {
		return err
	}
	fmt.Printf("Average shortest-path length ≈ %.3f\n", avg)

	section("Densest Subgraph (2-approx)")
	var ds *densest.Result
	err = timed("peeling", func() (err error) {
		ds, err = densest.Peel(g)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Printf("Density = %.3f with %d nodes\n", ds.Density, len(ds.Nodes))

	section("1-Hop Degree Distribution")
	degrees := distrib.Degrees(g)
	printHistogram(degrees, "degree", "nodes")

	section("Power-Law Fit (1-Hop Degrees)")
	alpha, err := powerlaw.Exponent(degrees, f.kMin)
	if err != nil {
		return err
	}
	fmt.Printf("Estimated power-law exponent α ≈ %.3f\n", alpha)

	if f.twoHop {
		section("2-Hop Neighbor Distribution")
		var hist map[int]int
		err = timed("two-hop", func() (err error) {
			hist, err = distrib.TwoHop(g)
			return err
		})
		if err != nil {
			return err
		}
		printHistogram(hist, "two-hop neighbors", "nodes")
	}

	opts := []centrality.Option{centrality.WithWorkers(f.workers)}

	section(fmt.Sprintf("Closeness Centrality (top %d)", f.top))
	var clos map[int64]float64
	err = timed("closeness", func() (err error) {
		clos, err = centrality.Closeness(g, opts...)
		return err
	})
	if err != nil {
		return err
	}
	printTop(clos, f.top)

	section(fmt.Sprintf("Betweenness Centrality (top %d)", f.top))
	var betw map[int64]float64
	err = timed("betweenness", func() (err error) {
		betw, err = centrality.Betweenness(g, opts...)
		return err
	})
	if err != nil {
		return err
	}
	printTop(betw, f.top)

	return nil
}

// section prints a formatted report header.
func section(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// timed runs f and prints its wall-clock duration under label.
func timed(label string, f func() error) error {
	start := time.Now()
	err := f()
	fmt.Printf("[%s] completed in %.3f secs\n", label, time.Since(start).Seconds())

	return err
}

// printHistogram lists a value→count map in ascending value order.
func printHistogram(hist map[int]int, valueName, countName string) {
	values := make([]int, 0, len(hist))
	for v := range hist {
		values = append(values, v)
	}
	sort.Ints(values)
	for _, v := range values {
		fmt.Printf("  %s %4d → %6d %s\n", valueName, v, hist[v], countName)
	}
}

// printTop lists the k highest-scoring payloads, ties broken by payload.
func printTop(scores map[int64]float64, k int) {
	type row struct {
		payload int64
		score   float64
	}
	rows := make([]row, 0, len(scores))
	for p, s := range scores {
		rows = append(rows, row{p, s})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].payload < rows[j].payload
	})
	if k > len(rows) {
		k = len(rows)
	}
	for _, r := range rows[:k] {
		fmt.Printf("  node %6d → %.4f\n", r.payload, r.score)
	}
}
