// Package colour assigns colours to the vertices of an interference graph such that no edge connects two vertices of
// the same colour. Colours are non-negative integers numbered from 0. The colouring functions never mutate the
// graph.
package colour

import (
	"fmt"

	"github.com/tliron/commonlog"

	"rigc/src/bitset"
	"rigc/src/graph"
	"rigc/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Colouring holds one colour per graph vertex.
type Colouring []int

// Policy selects a colouring algorithm.
type Policy int

// ---------------------
// ----- Constants -----
// ---------------------

const (
	PolicyDegreeOrdered Policy = iota // Smallest-last elimination, never worse than greedy.
	PolicyGreedy                      // Single forward pass in vertex index order.
)

// -------------------
// ----- Globals -----
// -------------------

var log = commonlog.GetLogger("rigc.colour")

// ---------------------
// ----- Functions -----
// ---------------------

// String returns the name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyDegreeOrdered:
		return "degree-ordered"
	case PolicyGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Count returns the number of distinct colours used, which is the largest colour plus one.
func (c Colouring) Count() int {
	m := -1
	for _, e1 := range c {
		if e1 > m {
			m = e1
		}
	}
	return m + 1
}

// Colour colours g using the algorithm selected by p. Unknown policies fall back to greedy colouring.
func Colour(g *graph.Graph, p Policy) Colouring {
	switch p {
	case PolicyDegreeOrdered:
		return DegreeOrdered(g)
	default:
		return Greedy(g)
	}
}

// uncoloured returns a colouring of n vertices with every vertex uncoloured (-1).
func uncoloured(n int) Colouring {
	c := make(Colouring, n)
	for i1 := range c {
		c[i1] = -1
	}
	return c
}

// lowestFree returns the smallest colour not used by an already coloured neighbour of v. The forbidden set is used
// as scratch space and is zeroed again before returning.
func lowestFree(g *graph.Graph, c Colouring, v int, forbidden *bitset.BitSet) int {
	for i1, e1 := range c {
		if e1 >= 0 && g.IsConnected(v, i1) {
			forbidden.Set(e1)
		}
	}
	col := forbidden.FirstClear()
	forbidden.Zero()
	return col
}

// Greedy colours g in a single forward pass over the vertices in index order. Every vertex takes the smallest colour
// not used by a neighbour coloured before it, so only lower indexed neighbours constrain it. The result uses at most
// MaxDegree()+1 colours.
func Greedy(g *graph.Graph) Colouring {
	c := uncoloured(g.Len())
	forbidden := bitset.New(g.MaxDegree() + 1)
	for v := range c {
		c[v] = lowestFree(g, c, v, forbidden)
	}
	return c
}

// SmallestLast colours g by simplicial elimination. The vertex of minimum remaining degree is removed until the
// graph is empty, with ties going to the lowest index. The vertices are then re-introduced in reverse removal order,
// each taking the lowest colour not used by a neighbour that is already back in the graph.
func SmallestLast(g *graph.Graph) Colouring {
	n := g.Len()
	deg := g.Degrees()
	forbidden := bitset.New(g.MaxDegree() + 1)
	removed := bitset.New(n)
	order := util.Stack[int]{}

	// Prune.
	for order.Size() < n {
		v := -1
		for i1 := 0; i1 < n; i1++ {
			if !removed.Test(i1) && (v < 0 || deg[i1] < deg[v]) {
				v = i1
			}
		}
		removed.Set(v)
		order.Push(v)
		for i1 := 0; i1 < n; i1++ {
			if !removed.Test(i1) && g.IsConnected(v, i1) {
				deg[i1]--
			}
		}
	}

	// Re-introduce and colour.
	c := uncoloured(n)
	for v, ok := order.Pop(); ok; v, ok = order.Pop() {
		c[v] = lowestFree(g, c, v, forbidden)
	}
	return c
}

// DegreeOrdered colours g with SmallestLast and returns that colouring unless greedy colouring needs fewer colours,
// so the result never uses more colours than Greedy. A graph without vertices is coloured greedily.
func DegreeOrdered(g *graph.Graph) Colouring {
	if g.Len() == 0 {
		return Greedy(g)
	}
	sl := SmallestLast(g)
	gr := Greedy(g)
	if gr.Count() < sl.Count() {
		log.Debugf("greedy colouring beat smallest-last on %s: %d < %d colours", g, gr.Count(), sl.Count())
		return gr
	}
	return sl
}

// Validate returns an error if c does not hold exactly one colour per vertex of g or if any edge of g connects two
// vertices of the same colour.
func Validate(g *graph.Graph, c Colouring) error {
	if len(c) != g.Len() {
		return fmt.Errorf("colouring has %d entries, graph has %d vertices", len(c), g.Len())
	}
	for i1, e1 := range c {
		if e1 < 0 {
			return fmt.Errorf("vertex %d is uncoloured", i1)
		}
	}
	var err error
	g.Edges(func(v, w int) {
		if err == nil && c[v] == c[w] {
			err = fmt.Errorf("interfering vertices %d and %d share colour %d", v, w, c[v])
		}
	})
	return err
}
