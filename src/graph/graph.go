// Package graph provides an undirected, loop-free interference graph over virtual register indices.
//
// Interference is symmetric and a register never interferes with itself, so only the strictly lower triangle of the
// adjacency matrix is stored. Row r of that triangle holds the r possible edges (r, 0) .. (r, r-1), and the rows are
// laid end to end in a single bit set:
//
//	row 1: (1,0)
//	row 2: (2,0) (2,1)
//	row 3: (3,0) (3,1) (3,2)
//
// The pair {v, w} with hi = max(v, w) and lo = min(v, w) therefore lives at bit hi*(hi-1)/2 + lo, and a graph of n
// vertices needs n*(n-1)/2 bits, half of a full adjacency matrix without its diagonal.
package graph

import (
	"fmt"

	"rigc/src/bitset"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Graph is an interference graph with a vertex count fixed at construction.
type Graph struct {
	vertices int            // Number of virtual registers.
	edges    *bitset.BitSet // Packed lower triangle, one bit per unordered pair.
}

// ---------------------
// ----- Functions -----
// ---------------------

// New returns a graph of the given number of vertices and no edges. A negative count is treated as zero.
func New(vertices int) *Graph {
	if vertices < 0 {
		vertices = 0
	}
	return &Graph{
		vertices: vertices,
		edges:    bitset.New(vertices * (vertices - 1) / 2),
	}
}

// edgeIndex returns the bit offset of the unordered pair {v, w}. The caller must ensure v != w.
func edgeIndex(v, w int) int {
	hi, lo := v, w
	if w > v {
		hi, lo = w, v
	}
	return hi*(hi-1)/2 + lo
}

// valid reports whether {v, w} is a pair of distinct vertices in range.
func (g *Graph) valid(v, w int) bool {
	return v >= 0 && w >= 0 && v < g.vertices && w < g.vertices && v != w
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return g.vertices
}

// AddEdge marks v and w as interfering. Out-of-range indices and self-loops are silently ignored.
func (g *Graph) AddEdge(v, w int) {
	if !g.valid(v, w) {
		return
	}
	g.edges.Set(edgeIndex(v, w))
}

// IsConnected reports whether v and w interfere. It returns false for out-of-range indices and for v == w.
func (g *Graph) IsConnected(v, w int) bool {
	if !g.valid(v, w) {
		return false
	}
	return g.edges.Test(edgeIndex(v, w))
}

// Degree returns the number of edges incident to v, or 0 if v is out of range. It runs in O(Len()).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.vertices {
		return 0
	}
	d := 0
	for i1 := 0; i1 < g.vertices; i1++ {
		if i1 != v && g.edges.Test(edgeIndex(v, i1)) {
			d++
		}
	}
	return d
}

// Neighbours returns the vertices adjacent to v as a vertex-indexed bit set of capacity Len().
func (g *Graph) Neighbours(v int) *bitset.BitSet {
	n := bitset.New(g.vertices)
	if v < 0 || v >= g.vertices {
		return n
	}
	for i1 := 0; i1 < g.vertices; i1++ {
		if i1 != v && g.edges.Test(edgeIndex(v, i1)) {
			n.Set(i1)
		}
	}
	return n
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return g.edges.Count()
}

// Edges calls fn once for every edge, with v > w, in ascending order of v and then w.
func (g *Graph) Edges(fn func(v, w int)) {
	hi, base := 1, 0 // Row hi starts at bit base = hi*(hi-1)/2.
	for i, ok := g.edges.NextSet(0); ok; i, ok = g.edges.NextSet(i + 1) {
		for i >= base+hi {
			base += hi
			hi++
		}
		fn(hi, i-base)
	}
}

// Degrees returns the degree of every vertex in a single pass over the edges.
func (g *Graph) Degrees() []int {
	d := make([]int, g.vertices)
	g.Edges(func(v, w int) {
		d[v]++
		d[w]++
	})
	return d
}

// MaxDegree returns the largest vertex degree, or 0 for a graph without edges.
func (g *Graph) MaxDegree() int {
	m := 0
	for _, e1 := range g.Degrees() {
		if e1 > m {
			m = e1
		}
	}
	return m
}

// Copy returns a deep copy of g.
func (g *Graph) Copy() *Graph {
	return &Graph{
		vertices: g.vertices,
		edges:    g.edges.Copy(),
	}
}

// Induced returns the subgraph on the vertices set in keep, renumbered densely in ascending order, along with a
// slice mapping each new vertex index to its index in g. Bits of keep outside [0, Len()) are ignored.
func (g *Graph) Induced(keep *bitset.BitSet) (*Graph, []int) {
	old := make([]int, 0, g.vertices)
	idx := make([]int, g.vertices) // Old index to new index, -1 if dropped.
	for i1 := 0; i1 < g.vertices; i1++ {
		idx[i1] = -1
		if keep.Test(i1) {
			idx[i1] = len(old)
			old = append(old, i1)
		}
	}
	sub := New(len(old))
	g.Edges(func(v, w int) {
		if idx[v] >= 0 && idx[w] >= 0 {
			sub.AddEdge(idx[v], idx[w])
		}
	})
	return sub, old
}

// String returns a short summary of the graph.
func (g *Graph) String() string {
	return fmt.Sprintf("graph(%d vertices, %d edges)", g.vertices, g.EdgeCount())
}
