// Package riscv provides the RISC-V physical register pools used for register allocation.
package riscv

import (
	"fmt"

	"rigc/src/backend/regfile"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// register holds a base integer register (x0-x31) or a floating point register from the F extension (f0-f31).
type register struct {
	typ int // Type of register (integer or floating point).
	id  int // Zero indexed id of register.
}

// ---------------------
// ----- Constants -----
// ---------------------

const word64 = 8 // word64 defines the length of a 64-bit architecture word.
const word32 = 4 // word32 defines the length of a 32-bit architecture word.

// Aliases for temporary integer registers (caller saved).
const (
	t0 = 5
	t1 = 6
	t2 = 7
	t3 = 28
	t4 = 29
	t5 = 30
	t6 = 31
)

// Aliases for saved integer registers (callee saved). s0 is the frame pointer and is never allocated.
const (
	s1  = 9
	s2  = 18
	s11 = 27
)

// Aliases for temporary and saved floating point registers.
const (
	ft0  = 0
	ft7  = 7
	fs0  = 8
	fs1  = 9
	fs2  = 18
	fs11 = 27
	ft8  = 28
	ft11 = 31
)

// -------------------
// ----- Globals -----
// -------------------

// regi holds the ABI names of the base integer registers.
var regi = [...]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// regf holds the ABI names of the floating point registers.
var regf = [...]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// ---------------------
// ----- Functions -----
// ---------------------

// wordSize returns the spill slot size for a 32 or 64-bit target.
func wordSize(bits int) (int, error) {
	switch bits {
	case 64:
		return word64, nil
	case 32:
		return word32, nil
	default:
		return 0, fmt.Errorf("unsupported RISC-V word width %d", bits)
	}
}

// RegisterPool returns the allocatable integer registers of a 32 or 64-bit RISC-V target: temporaries t0-t6
// followed by the saved registers s1-s11.
func RegisterPool(bits int) (regfile.Pool, error) {
	ws, err := wordSize(bits)
	if err != nil {
		return regfile.Pool{}, err
	}
	regs := make([]regfile.Register, 0, 18)
	for _, e1 := range []int{t0, t1, t2, t3, t4, t5, t6, s1} {
		regs = append(regs, register{typ: regfile.Int, id: e1})
	}
	for i1 := s2; i1 <= s11; i1++ {
		regs = append(regs, register{typ: regfile.Int, id: i1})
	}
	return regfile.NewPool(ws, regs...), nil
}

// FloatPool returns the allocatable floating point registers of a 32 or 64-bit RISC-V target with the F and D
// extensions: temporaries ft0-ft11 followed by the saved registers fs0-fs11.
func FloatPool(bits int) (regfile.Pool, error) {
	ws, err := wordSize(bits)
	if err != nil {
		return regfile.Pool{}, err
	}
	regs := make([]regfile.Register, 0, 24)
	for i1 := ft0; i1 <= ft7; i1++ {
		regs = append(regs, register{typ: regfile.Float, id: i1})
	}
	for i1 := ft8; i1 <= ft11; i1++ {
		regs = append(regs, register{typ: regfile.Float, id: i1})
	}
	regs = append(regs, register{typ: regfile.Float, id: fs0}, register{typ: regfile.Float, id: fs1})
	for i1 := fs2; i1 <= fs11; i1++ {
		regs = append(regs, register{typ: regfile.Float, id: i1})
	}
	return regfile.NewPool(ws, regs...), nil
}

// String returns the ABI name of the register.
func (r register) String() string {
	if r.typ == regfile.Int {
		return regi[r.id]
	}
	return regf[r.id]
}

// Id returns the zero indexed id of the register.
func (r register) Id() int {
	return r.id
}

// Type returns the register type, regfile.Int or regfile.Float.
func (r register) Type() int {
	return r.typ
}
