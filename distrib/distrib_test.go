package distrib_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/katalvlaran/socmetrics/core"
	"github.com/katalvlaran/socmetrics/distrib"
	"github.com/katalvlaran/socmetrics/gen"
)

// TestDegrees_Path3 encodes the reference fixture: path 0–1–2 has degree
// distribution {1: 2, 2: 1}.
func TestDegrees_Path3(t *testing.T) {
	g, err := gen.Path(3)
	if err != nil {
		t.Fatal(err)
	}
	got := distrib.Degrees(g)
	if want := map[int]int{1: 2, 2: 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Degrees = %v; want %v", got, want)
	}
}

// TestTwoHop_Path3: endpoints see one node at distance 2, the middle sees
// none → {0: 1, 1: 2}.
func TestTwoHop_Path3(t *testing.T) {
	g, _ := gen.Path(3)
	got, err := distrib.TwoHop(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := map[int]int{0: 1, 1: 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("TwoHop = %v; want %v", got, want)
	}
}

// TestTwoHop_Complete: a clique has no pair at distance 2.
func TestTwoHop_Complete(t *testing.T) {
	g, _ := gen.Complete(5)
	got, err := distrib.TwoHop(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := map[int]int{0: 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("TwoHop = %v; want %v", got, want)
	}
}

// TestTwoHop_Star: every leaf of S_5 sees the 3 other leaves at distance 2;
// the hub sees none.
func TestTwoHop_Star(t *testing.T) {
	g, _ := gen.Star(5)
	got, err := distrib.TwoHop(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := map[int]int{0: 1, 3: 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("TwoHop = %v; want %v", got, want)
	}
}

// TestDegrees_SelfLoopPolicy: a self-loop counts once toward degree.
func TestDegrees_SelfLoopPolicy(t *testing.T) {
	g := core.New()
	g.AddNode(0)
	g.AddEdge(0, 0)
	got := distrib.Degrees(g)
	if want := map[int]int{1: 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Degrees = %v; want %v", got, want)
	}
}

// TestTwoHop_Cancellation propagates a dead context from the inner BFS.
func TestTwoHop_Cancellation(t *testing.T) {
	g, _ := gen.Path(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := distrib.TwoHop(g, distrib.WithContext(ctx)); err == nil {
		t.Error("expected context error, got nil")
	}
}

// TestDistributions_Idempotent re-runs both computations unchanged.
func TestDistributions_Idempotent(t *testing.T) {
	g, _ := gen.Sparse(40, 0.15, 9)
	d1 := distrib.Degrees(g)
	d2 := distrib.Degrees(g)
	if !reflect.DeepEqual(d1, d2) {
		t.Errorf("Degrees not idempotent: %v vs %v", d1, d2)
	}
	h1, err := distrib.TwoHop(g)
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := distrib.TwoHop(g)
	if !reflect.DeepEqual(h1, h2) {
		t.Errorf("TwoHop not idempotent: %v vs %v", h1, h2)
	}
}
