package regalloc

import (
	"fmt"

	"rigc/src/backend/regfile"
	"rigc/src/bitset"
	"rigc/src/colour"
	"rigc/src/graph"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Allocation is the outcome for one virtual register: either a physical register or a spill slot.
type Allocation struct {
	Index    int    `cbor:"index"`    // Virtual register index.
	Colour   int    `cbor:"colour"`   // Colour of the vertex, -1 if spilled before colouring.
	Register string `cbor:"register"` // Physical register name, empty if spilled.
	Spilled  bool   `cbor:"spilled"`  // Set to true if the virtual register lives in a stack slot.
	Slot     int    `cbor:"slot"`     // Stack slot number if spilled.
	Offset   int    `cbor:"offset"`   // Byte offset of the stack slot if spilled.
}

// Table maps every virtual register of a function, in index order, to its allocation. Tables are built by the
// allocator and must not be modified afterwards.
type Table struct {
	Function  string       `cbor:"function"`   // Name of the function, if known.
	Entries   []Allocation `cbor:"entries"`    // One entry per virtual register, Entries[i].Index == i.
	Colours   int          `cbor:"colours"`    // Number of colours of the final colouring.
	Slots     int          `cbor:"slots"`      // Number of spill slots.
	FrameSize int          `cbor:"frame-size"` // Bytes of stack needed for the spill slots.
}

// ---------------------
// ----- Functions -----
// ---------------------

// newTable builds the table for colouring c of g. Spilled vertices get consecutive slots in vertex index order, all
// others get the pool register of their colour.
func newTable(g *graph.Graph, pool regfile.Pool, c colour.Colouring, spilled *bitset.BitSet) *Table {
	t := &Table{
		Entries: make([]Allocation, g.Len()),
	}
	for i1 := range t.Entries {
		a := Allocation{
			Index:  i1,
			Colour: c[i1],
		}
		if spilled.Test(i1) {
			a.Spilled = true
			a.Slot = t.Slots
			a.Offset = t.Slots * pool.WordSize()
			t.Slots++
		} else {
			a.Register = pool.Get(c[i1]).String()
		}
		t.Entries[i1] = a
	}
	t.Colours = c.Count()
	t.FrameSize = t.Slots * pool.WordSize()
	return t
}

// Spilled returns the indices of the spilled virtual registers in ascending order.
func (t *Table) Spilled() []int {
	var s []int
	for _, e1 := range t.Entries {
		if e1.Spilled {
			s = append(s, e1.Index)
		}
	}
	return s
}

// Verify checks that t covers every vertex of g exactly once and in order, that every entry is either a register or
// a distinct stack slot, and that no two interfering vertices share a register.
func (t *Table) Verify(g *graph.Graph) error {
	if len(t.Entries) != g.Len() {
		return fmt.Errorf("table has %d entries, graph has %d vertices", len(t.Entries), g.Len())
	}
	slots := bitset.New(t.Slots)
	for i1, e1 := range t.Entries {
		if e1.Index != i1 {
			return fmt.Errorf("entry %d holds virtual register %d", i1, e1.Index)
		}
		if e1.Spilled == (e1.Register != "") {
			return fmt.Errorf("virtual register %d must be either spilled or in a register", i1)
		}
		if !e1.Spilled {
			continue
		}
		if e1.Slot < 0 || e1.Slot >= t.Slots || slots.Test(e1.Slot) {
			return fmt.Errorf("virtual register %d has invalid or shared slot %d", i1, e1.Slot)
		}
		slots.Set(e1.Slot)
	}
	var err error
	g.Edges(func(v, w int) {
		a, b := t.Entries[v], t.Entries[w]
		if err == nil && !a.Spilled && !b.Spilled && a.Register == b.Register {
			err = fmt.Errorf("interfering virtual registers %d and %d share register %s", v, w, a.Register)
		}
	})
	return err
}
