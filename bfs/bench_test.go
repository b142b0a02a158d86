package bfs_test

import (
	"testing"

	"github.com/katalvlaran/socmetrics/bfs"
	"github.com/katalvlaran/socmetrics/core"
	"github.com/katalvlaran/socmetrics/gen"
)

// benchGraph is a seeded sparse graph shared across benchmarks.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := gen.Sparse(n, 8.0/float64(n), 1)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkDistances_Sparse2k(b *testing.B) {
	g := benchGraph(b, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Distances(g, i%g.NodeCount()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistances_CSR2k(b *testing.B) {
	c := core.Compact(benchGraph(b, 2000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Distances(c, i%c.NodeCount()); err != nil {
			b.Fatal(err)
		}
	}
}
