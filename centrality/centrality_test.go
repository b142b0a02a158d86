package centrality_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socmetrics/centrality"
	"github.com/katalvlaran/socmetrics/core"
	"github.com/katalvlaran/socmetrics/gen"
)

// TestErrorsAndOptions verifies nil-graph and bad-option rejection for
// both measures.
func TestErrorsAndOptions(t *testing.T) {
	_, err := centrality.Closeness(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Betweenness(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)

	g, _ := gen.Path(3)
	_, err = centrality.Closeness(g, centrality.WithWorkers(0))
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
	_, err = centrality.Betweenness(g, centrality.WithWorkers(-2))
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
}

// TestTriangle: in a 3-clique every closeness is 1 and no node lies on any
// shortest path between others, so every betweenness is 0.
func TestTriangle(t *testing.T) {
	g, err := gen.Complete(3)
	require.NoError(t, err)

	clos, err := centrality.Closeness(g)
	require.NoError(t, err)
	require.Len(t, clos, 3)
	for payload, score := range clos {
		require.InDelta(t, 1.0, score, 1e-9, "closeness of %d", payload)
	}

	betw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	for payload, score := range betw {
		require.InDelta(t, 0.0, score, 1e-9, "betweenness of %d", payload)
	}
}

// TestPath4 encodes the reference fixture for the path 0–1–2–3:
// closeness .5/.75/.75/.5 and betweenness 0/4/4/0.
func TestPath4(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)

	clos, err := centrality.Closeness(g)
	require.NoError(t, err)
	require.InDelta(t, 0.5, clos[0], 1e-9)
	require.InDelta(t, 0.75, clos[1], 1e-9)
	require.InDelta(t, 0.75, clos[2], 1e-9)
	require.InDelta(t, 0.5, clos[3], 1e-9)

	betw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	require.InDelta(t, 0.0, betw[0], 1e-9)
	require.InDelta(t, 4.0, betw[1], 1e-9)
	require.InDelta(t, 4.0, betw[2], 1e-9)
	require.InDelta(t, 0.0, betw[3], 1e-9)
}

// TestStarBetweenness: in S_5 every leaf pair's unique shortest path runs
// through the hub — 4·3 = 12 ordered pairs.
func TestStarBetweenness(t *testing.T) {
	g, _ := gen.Star(5)
	betw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	require.InDelta(t, 12.0, betw[0], 1e-9)
	for leaf := int64(1); leaf < 5; leaf++ {
		require.InDelta(t, 0.0, betw[leaf], 1e-9, "leaf %d", leaf)
	}
}

// TestEqualPathSplit: the 4-cycle offers two equal-length routes between
// opposite corners; each middle node carries half a dependency from each
// of the 2 ordered opposite pairs it separates.
func TestEqualPathSplit(t *testing.T) {
	g, _ := gen.Cycle(4) // 0–1–2–3–0; opposite pairs (0,2) and (1,3)
	betw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	for payload := int64(0); payload < 4; payload++ {
		require.InDelta(t, 1.0, betw[payload], 1e-9, "node %d", payload)
	}
}

// TestClosenessDisconnected: global-N normalization under-values nodes in
// small components, and an isolated node scores exactly 0.
func TestClosenessDisconnected(t *testing.T) {
	g := core.New()
	for i := 0; i < 3; i++ {
		g.AddNode(int64(i))
	}
	require.NoError(t, g.AddEdge(0, 1)) // node 2 stays isolated

	clos, err := centrality.Closeness(g)
	require.NoError(t, err)
	// (N-1)/Σd = 2/1 for each connected node, N being the GLOBAL count 3
	require.InDelta(t, 2.0, clos[0], 1e-9)
	require.InDelta(t, 2.0, clos[1], 1e-9)
	require.Zero(t, clos[2])
}

// TestPayloadKeying confirms scores are keyed by payload, not index.
func TestPayloadKeying(t *testing.T) {
	g := core.New()
	g.AddNode(1000)
	g.AddNode(2000)
	require.NoError(t, g.AddEdge(0, 1))

	clos, err := centrality.Closeness(g)
	require.NoError(t, err)
	require.Contains(t, clos, int64(1000))
	require.Contains(t, clos, int64(2000))
	require.NotContains(t, clos, int64(0))
}

// TestWorkerEquivalence: fan-out is a pure performance knob; results must
// be bit-identical to the sequential run.
func TestWorkerEquivalence(t *testing.T) {
	g, err := gen.Sparse(120, 0.06, 17)
	require.NoError(t, err)

	seqClos, err := centrality.Closeness(g)
	require.NoError(t, err)
	seqBetw, err := centrality.Betweenness(g)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 7} {
		parClos, err := centrality.Closeness(g, centrality.WithWorkers(workers))
		require.NoError(t, err)
		require.Equal(t, seqClos, parClos, "closeness, workers=%d", workers)

		parBetw, err := centrality.Betweenness(g, centrality.WithWorkers(workers))
		require.NoError(t, err)
		for payload, want := range seqBetw {
			require.InDelta(t, want, parBetw[payload], 1e-9, "betweenness of %d, workers=%d", payload, workers)
		}
	}
}

// TestIdempotence re-runs both measures on the unchanged graph.
func TestIdempotence(t *testing.T) {
	g, _ := gen.Sparse(60, 0.1, 23)
	c1, err := centrality.Closeness(g)
	require.NoError(t, err)
	c2, _ := centrality.Closeness(g)
	require.Equal(t, c1, c2)

	b1, err := centrality.Betweenness(g)
	require.NoError(t, err)
	b2, _ := centrality.Betweenness(g)
	require.Equal(t, b1, b2)
}

// TestCancellation propagates a dead context from both measures.
func TestCancellation(t *testing.T) {
	g, _ := gen.Path(300)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := centrality.Closeness(g, centrality.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	_, err = centrality.Betweenness(g, centrality.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
