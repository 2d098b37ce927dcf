package regalloc

import "rigc/src/graph"

// SpillCost estimates how expensive it is to keep virtual register v of g in memory instead of a register. Lower
// costs are spilled first.
type SpillCost func(g *graph.Graph, v int) float64

// DegreeCost prefers to spill the vertices with the most neighbours, since each of them frees a colour for many
// others.
func DegreeCost(g *graph.Graph, v int) float64 {
	return 1 / float64(g.Degree(v)+1)
}

// UseCountCost weighs the number of uses of each virtual register against its degree: rarely used registers that
// interfere with many others are spilled first. Registers without a use count are counted as used once.
func UseCountCost(uses []int) SpillCost {
	return func(g *graph.Graph, v int) float64 {
		u := 1
		if v >= 0 && v < len(uses) {
			u = uses[v]
		}
		return float64(u) / float64(g.Degree(v)+1)
	}
}
