// Package frontend loads the TOML description of the functions whose registers are to be allocated.
package frontend

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"

	"rigc/src/backend/regalloc"
	"rigc/src/backend/regfile"
	"rigc/src/graph"
	"rigc/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Description is a parsed description file.
type Description struct {
	Target    string         `toml:"target"`    // Target architecture, overrides the command line.
	Registers []string       `toml:"registers"` // Custom register pool, overrides the target.
	WordSize  int            `toml:"word-size"` // Spill slot size of the custom register pool.
	Funcs     []FunctionDesc `toml:"function"`  // Functions in description order.
}

// FunctionDesc describes the interference of the virtual registers of one function, either as explicit edges, as
// live ranges, or both.
type FunctionDesc struct {
	Name     string      `toml:"name"`
	Vertices int         `toml:"vertices"` // Number of virtual registers. Defaults to the highest local index plus one.
	Edges    [][]int     `toml:"edges"`    // Interfering pairs.
	Uses     []int       `toml:"uses"`     // Optional use count per virtual register.
	Locals   []LocalDesc `toml:"local"`
}

// LocalDesc is the live range [Start, Start+Length) of virtual register Index.
type LocalDesc struct {
	Index  int `toml:"index"`
	Start  int `toml:"start"`
	Length int `toml:"length"`
}

// -------------------
// ----- Globals -----
// -------------------

var log = commonlog.GetLogger("rigc.frontend")

// ---------------------
// ----- Functions -----
// ---------------------

// Parse decodes and validates a description.
func Parse(src []byte) (*Description, error) {
	d := &Description{}
	if err := toml.Unmarshal(src, d); err != nil {
		return nil, fmt.Errorf("parse error in description: %w", err)
	}
	if d.Target != "" {
		if _, err := util.ParseArch(d.Target); err != nil {
			return nil, err
		}
	}
	if d.WordSize < 0 {
		return nil, fmt.Errorf("negative word size %d", d.WordSize)
	}

	names := make(map[string]bool, len(d.Funcs))
	for i1, e1 := range d.Funcs {
		name := e1.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i1)
		}
		if names[name] {
			return nil, fmt.Errorf("duplicate function %s", name)
		}
		names[name] = true
		if err := e1.validate(); err != nil {
			return nil, fmt.Errorf("function %s: %w", name, err)
		}
	}
	return d, nil
}

// validate checks the counts and shapes of a function description.
func (f *FunctionDesc) validate() error {
	if f.Vertices < 0 {
		return fmt.Errorf("negative vertex count %d", f.Vertices)
	}
	for i1, e1 := range f.Edges {
		if len(e1) != 2 {
			return fmt.Errorf("edge %d has %d elements, expected 2", i1, len(e1))
		}
	}
	for _, e1 := range f.Locals {
		if e1.Length < 0 {
			return fmt.Errorf("local %d has negative length %d", e1.Index, e1.Length)
		}
		if e1.Index < 0 {
			return fmt.Errorf("negative local index %d", e1.Index)
		}
	}
	if len(f.Uses) > 0 && len(f.Uses) != f.vertices() {
		return fmt.Errorf("%d use counts for %d virtual registers", len(f.Uses), f.vertices())
	}
	return nil
}

// vertices returns the number of virtual registers of f.
func (f *FunctionDesc) vertices() int {
	if f.Vertices > 0 || len(f.Locals) == 0 {
		return f.Vertices
	}
	n := 0
	for _, e1 := range f.Locals {
		if e1.Index >= n {
			n = e1.Index + 1
		}
	}
	return n
}

// Graph builds the interference graph of f. Edges with out-of-range endpoints are dropped. Locals whose live ranges
// overlap interfere.
func (f *FunctionDesc) Graph() *graph.Graph {
	n := f.vertices()
	g := graph.New(n)
	for _, e1 := range f.Edges {
		v, w := e1[0], e1[1]
		if v < 0 || w < 0 || v >= n || w >= n {
			log.Debugf("%s: dropping edge (%d, %d) outside of %d virtual registers", f.Name, v, w, n)
			continue
		}
		g.AddEdge(v, w)
	}
	for i1, e1 := range f.Locals {
		for _, e2 := range f.Locals[:i1] {
			if e1.Start < e2.Start+e2.Length && e2.Start < e1.Start+e1.Length {
				g.AddEdge(e1.Index, e2.Index)
			}
		}
	}
	return g
}

// Functions returns the functions of d ready for allocation, in description order.
func (d *Description) Functions() ([]regalloc.Function, error) {
	if len(d.Funcs) == 0 {
		return nil, errors.New("description holds no functions")
	}
	fns := make([]regalloc.Function, len(d.Funcs))
	for i1 := range d.Funcs {
		f := &d.Funcs[i1]
		fns[i1] = regalloc.Function{
			Name:  f.Name,
			Graph: f.Graph(),
			Uses:  f.Uses,
		}
	}
	return fns, nil
}

// Pool returns the custom register pool of d. The second return value is false if d names no registers.
func (d *Description) Pool() (regfile.Pool, bool) {
	if len(d.Registers) == 0 {
		return regfile.Pool{}, false
	}
	return regfile.NewPool(d.WordSize, regfile.Named(regfile.Int, d.Registers...)...), true
}

// Apply overrides the target architecture of opt with the one named by d, if any.
func (d *Description) Apply(opt *util.Options) {
	if d.Target == "" {
		return
	}
	if arch, err := util.ParseArch(d.Target); err == nil {
		opt.TargetArch = arch
	}
}
