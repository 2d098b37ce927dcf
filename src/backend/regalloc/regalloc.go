// Package regalloc maps the virtual registers of a function onto a finite pool of physical registers by colouring
// their interference graph. Virtual registers that receive no physical register are spilled to stack slots.
package regalloc

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"rigc/src/backend/regfile"
	"rigc/src/bitset"
	"rigc/src/colour"
	"rigc/src/graph"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Config selects how a graph is coloured and how spilled vertices are chosen.
type Config struct {
	Policy colour.Policy // Colouring algorithm.
	Cost   SpillCost     // If nil, vertices whose colour has no register are spilled. Otherwise see AllocateCost.
}

// -------------------
// ----- Globals -----
// -------------------

var log = commonlog.GetLogger("rigc.regalloc")

// ---------------------
// ----- Functions -----
// ---------------------

// Allocate colours g by degree order and maps colour c to register c of the pool. Vertices whose colour is not
// smaller than the pool size are spilled and given stack slots in vertex index order.
func Allocate(g *graph.Graph, pool regfile.Pool) (*Table, error) {
	return AllocateWith(g, pool, Config{})
}

// AllocateCost allocates registers like Allocate, but chooses the vertices to spill by cost. As long as the remaining
// graph needs more colours than there are registers, the vertex with the lowest cost among those with at least as
// many remaining neighbours as there are registers is spilled, with ties going to the lowest index, and the remaining
// graph is recoloured.
func AllocateCost(g *graph.Graph, pool regfile.Pool, cost SpillCost) (*Table, error) {
	return AllocateWith(g, pool, Config{Cost: cost})
}

// AllocateWith allocates registers for the virtual registers of g from pool using cfg.
func AllocateWith(g *graph.Graph, pool regfile.Pool, cfg Config) (*Table, error) {
	if g == nil {
		return nil, errors.New("no interference graph")
	}

	var c colour.Colouring
	var spilled *bitset.BitSet
	var err error
	if cfg.Cost == nil {
		c, spilled = spillByColour(g, pool, cfg.Policy)
	} else if c, spilled, err = spillByCost(g, pool, cfg); err != nil {
		return nil, err
	}

	t := newTable(g, pool, c, spilled)
	if err := t.Verify(g); err != nil {
		return nil, fmt.Errorf("internal allocation error: %w", err)
	}
	log.Debugf("allocated %s with %d colours, %d spilled, frame size %d", g, t.Colours, t.Slots, t.FrameSize)
	return t, nil
}

// spillByColour colours g and marks every vertex whose colour has no register as spilled.
func spillByColour(g *graph.Graph, pool regfile.Pool, p colour.Policy) (colour.Colouring, *bitset.BitSet) {
	c := colour.Colour(g, p)
	spilled := bitset.New(g.Len())
	for i1, e1 := range c {
		if e1 >= pool.Len() {
			spilled.Set(i1)
		}
	}
	return c, spilled
}

// spillByCost removes the cheapest constrained vertex from the graph until what is left can be coloured with the
// registers of the pool. The returned colouring holds -1 for spilled vertices.
func spillByCost(g *graph.Graph, pool regfile.Pool, cfg Config) (colour.Colouring, *bitset.BitSet, error) {
	k := pool.Len()
	spilled := bitset.New(g.Len())
	live := bitset.New(g.Len())
	for i1 := 0; i1 < g.Len(); i1++ {
		live.Set(i1)
	}

	cur, old := g, make([]int, g.Len()) // old maps vertices of cur to vertices of g.
	for i1 := range old {
		old[i1] = i1
	}
	for {
		c := colour.Colour(cur, cfg.Policy)
		if c.Count() <= k {
			res := make(colour.Colouring, g.Len())
			for i1 := range res {
				res[i1] = -1
			}
			for i1, e1 := range c {
				res[old[i1]] = e1
			}
			return res, spilled, nil
		}

		// Only a vertex with at least k neighbours can force a colour beyond the pool. If there were none, even
		// greedy colouring would fit in k colours.
		deg := cur.Degrees()
		best, bestCost := -1, 0.0
		for i1, e1 := range deg {
			if e1 < k {
				continue
			}
			if cost := cfg.Cost(g, old[i1]); best < 0 || cost < bestCost {
				best, bestCost = i1, cost
			}
		}
		if best < 0 {
			return nil, nil, fmt.Errorf("no spill candidate in %s for %d registers", cur, k)
		}
		log.Debugf("spilling v%d at cost %g", old[best], bestCost)
		spilled.Set(old[best])
		live.Clear(old[best])
		cur, old = g.Induced(live)
	}
}
