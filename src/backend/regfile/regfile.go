// Package regfile provides type definitions for physical register pools.
package regfile

import "strings"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Register defines a physical register interface.
// A register has a type (floating point or integer), an identifier that is unique within its register file and a
// print friendly assembler name.
type Register interface {
	Id() int        // The unique id of the register.
	Type() int      // Type returns either Int or Float.
	String() string // String returns the assembler string for the register.
}

// Pool is an ordered, deduplicated set of physical registers available for allocation, together with the size in
// bytes of a spill slot. A Pool is read-only once built and may be shared between concurrent allocations.
type Pool struct {
	regs     []Register // Allocatable registers in preference order.
	wordSize int        // Size in bytes of one spill slot.
}

// named is a register known only by its name, used for pools given in descriptions.
type named struct {
	id   int
	typ  int
	name string
}

// ---------------------
// ----- Constants -----
// ---------------------

// Register types.
const (
	Int = iota
	Float
)

// DefaultWordSize is the spill slot size used when none is given.
const DefaultWordSize = 8

// ---------------------
// ----- Functions -----
// ---------------------

// NewPool returns a Pool of the given registers in order. Registers whose name was already seen are dropped, and
// so are nil registers. A non-positive wordSize selects DefaultWordSize.
func NewPool(wordSize int, regs ...Register) Pool {
	if wordSize <= 0 {
		wordSize = DefaultWordSize
	}
	p := Pool{
		regs:     make([]Register, 0, len(regs)),
		wordSize: wordSize,
	}
	seen := make(map[string]bool, len(regs))
	for _, e1 := range regs {
		if e1 == nil || seen[e1.String()] {
			continue
		}
		seen[e1.String()] = true
		p.regs = append(p.regs, e1)
	}
	return p
}

// Named returns registers of type typ named by names, with ids in order of appearance.
func Named(typ int, names ...string) []Register {
	regs := make([]Register, len(names))
	for i1, e1 := range names {
		regs[i1] = named{
			id:   i1,
			typ:  typ,
			name: e1,
		}
	}
	return regs
}

// Len returns the number of registers in the pool.
func (p Pool) Len() int {
	return len(p.regs)
}

// Get returns the i'th register of the pool, or nil if i is out of range.
func (p Pool) Get(i int) Register {
	if i < 0 || i >= len(p.regs) {
		return nil
	}
	return p.regs[i]
}

// WordSize returns the size in bytes of one spill slot.
func (p Pool) WordSize() int {
	return p.wordSize
}

// String returns the register names of the pool, e.g. "[x8 x9 x10]".
func (p Pool) String() string {
	names := make([]string, len(p.regs))
	for i1, e1 := range p.regs {
		names[i1] = e1.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

func (r named) Id() int {
	return r.id
}

func (r named) Type() int {
	return r.typ
}

func (r named) String() string {
	return r.name
}
