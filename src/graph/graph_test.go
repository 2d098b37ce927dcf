package graph

import (
	"math/rand"
	"testing"

	"rigc/src/bitset"
)

// TestChain builds the 1337 vertex ring used as a smoke test for the packed index arithmetic: every vertex is
// connected to its successor, and no other pair is connected.
func TestChain(t *testing.T) {
	const n = 1337
	g := New(n)
	for i1 := 0; i1 < n; i1++ {
		g.AddEdge(i1, (i1+1)%n)
	}
	for i1 := 0; i1 < n; i1++ {
		if !g.IsConnected(i1, (i1+1)%n) {
			t.Fatalf("expected %d and %d to be connected", i1, (i1+1)%n)
		}
	}
	for i1 := 0; i1 < n; i1 += 7 {
		for i2 := i1 + 2; i2 < n; i2++ {
			if i1 == 0 && i2 == n-1 {
				continue // Wraparound edge.
			}
			if g.IsConnected(i1, i2) {
				t.Fatalf("expected %d and %d to be unconnected", i1, i2)
			}
		}
	}
	if g.EdgeCount() != n {
		t.Fatalf("expected %d edges, got %d", n, g.EdgeCount())
	}
	for _, e1 := range []int{0, 1, 668, n - 1} {
		if d := g.Degree(e1); d != 2 {
			t.Errorf("expected degree 2 for vertex %d, got %d", e1, d)
		}
	}
}

// TestSymmetry verifies that edges are visible from both endpoints regardless of argument order.
func TestSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	g := New(40)
	type pair struct{ v, w int }
	var added []pair
	for i1 := 0; i1 < 200; i1++ {
		v, w := r.Intn(40), r.Intn(40)
		if v == w {
			continue
		}
		g.AddEdge(v, w)
		added = append(added, pair{v, w})
	}
	for _, e1 := range added {
		if !g.IsConnected(e1.v, e1.w) || !g.IsConnected(e1.w, e1.v) {
			t.Fatalf("edge (%d, %d) not symmetric", e1.v, e1.w)
		}
	}
}

// TestRangeViolations verifies that out-of-range and self-loop edges are dropped silently.
func TestRangeViolations(t *testing.T) {
	g := New(4)
	g.AddEdge(-1, 2)
	g.AddEdge(2, 4)
	g.AddEdge(3, 3)
	g.AddEdge(100, 0)
	if g.EdgeCount() != 0 {
		t.Fatalf("expected no edges, got %d", g.EdgeCount())
	}
	if g.IsConnected(-1, 2) || g.IsConnected(3, 3) || g.IsConnected(0, 4) {
		t.Fatal("expected out-of-range queries to return false")
	}
	if g.Degree(9) != 0 || g.Neighbours(-3).Count() != 0 {
		t.Fatal("expected empty answers for out-of-range vertices")
	}

	// Degenerate sizes.
	for _, e1 := range []int{-5, 0, 1} {
		h := New(e1)
		h.AddEdge(0, 0)
		h.AddEdge(0, 1)
		if h.EdgeCount() != 0 || h.MaxDegree() != 0 {
			t.Errorf("graph of %d vertices accepted an edge", e1)
		}
	}
}

// TestNeighboursAndEdges checks that Neighbours, Degree, Degrees and Edges agree with IsConnected.
func TestNeighboursAndEdges(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := New(70)
	for i1 := 0; i1 < 600; i1++ {
		g.AddEdge(r.Intn(70), r.Intn(70))
	}
	deg := g.Degrees()
	for v := 0; v < g.Len(); v++ {
		n := g.Neighbours(v)
		if n.Len() != g.Len() {
			t.Fatalf("neighbour set of %d has capacity %d", v, n.Len())
		}
		if n.Count() != g.Degree(v) || deg[v] != g.Degree(v) {
			t.Fatalf("vertex %d: neighbours %d, degree %d, degrees %d", v, n.Count(), g.Degree(v), deg[v])
		}
		for w := 0; w < g.Len(); w++ {
			if n.Test(w) != g.IsConnected(v, w) {
				t.Fatalf("neighbour set of %d disagrees with IsConnected at %d", v, w)
			}
		}
	}
	count := 0
	g.Edges(func(v, w int) {
		if v <= w || !g.IsConnected(v, w) {
			t.Fatalf("unexpected edge (%d, %d)", v, w)
		}
		count++
	})
	if count != g.EdgeCount() {
		t.Fatalf("Edges visited %d edges, expected %d", count, g.EdgeCount())
	}
}

// TestCopyAndInduced verifies that copies are independent and induced subgraphs keep exactly the kept edges.
func TestCopyAndInduced(t *testing.T) {
	g := New(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 0)

	c := g.Copy()
	c.AddEdge(0, 2)
	if g.IsConnected(0, 2) {
		t.Fatal("edge added to copy leaked into original")
	}

	keep := bitset.New(5)
	keep.Set(0)
	keep.Set(2)
	keep.Set(3)
	sub, old := g.Induced(keep)
	if sub.Len() != 3 || len(old) != 3 || old[0] != 0 || old[1] != 2 || old[2] != 3 {
		t.Fatalf("unexpected induced mapping %v", old)
	}
	if !sub.IsConnected(1, 2) || sub.IsConnected(0, 1) || sub.IsConnected(0, 2) || sub.EdgeCount() != 1 {
		t.Fatalf("unexpected induced edges: %s", sub)
	}
}
