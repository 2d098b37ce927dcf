// Package arm provides the aarch64 physical register pools used for register allocation.
package arm

import (
	"strconv"

	"rigc/src/backend/regfile"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// register defines a physical register, of either type integer or floating point, and an index (x0-x30 or d0-d31).
type register struct {
	typ int // Type of register (integer or floating point).
	idx int // Index of register (0 = x0, 1 = x1, 4 = d4 etc.).
}

// ---------------------
// ----- Constants -----
// ---------------------

// wordSize defines the spill slot size of the 64-bit aarch64 architecture.
const wordSize = 8

// Integer general purpose registers.
const (
	r0 = iota
	r1
	r2
	r3
	r4
	r5
	r6
	r7
	r8
	r9
	r10
	r11
	r12
	r13
	r14
	r15
	r16
	r17
	r18
	r19
	r20
	r21
	r22
	r23
	r24
	r25
	r26
	r27
	r28
	r29
	r30
)

// Floating point registers.
const (
	v8  = 8
	v16 = 16
	v32 = 32
)

// From: https://documentation-service.arm.com/static/5fa43415b1a7c5445f292563?token=
//
// General purpose integer registers.
//
// r28		Reserved as scratch register for loading and storing spilled values.
// r19-27	Callee saved registers.
// r18		Do not use for platform independent code.
// r9-r17	Temporary registers (caller saved).
// r8		Indirect result location register.
// r0-r7	Parameter and result registers.
//
// Floating point registers.
//
// v0-v7	Parameter and result registers.
// v8-v15	Callee saved registers.
// v16-v31	Temporary registers.

// -------------------
// ----- Globals -----
// -------------------

// regi defines print friendly string representations of the general purpose integer registers.
var regi = [...]string{
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
	"x8", "x9", "x10", "x11", "x12", "x13", "x14", "x15",
	"x16", "x17", "x18", "x19", "x20", "x21", "x22", "x23",
	"x24", "x25", "x26", "x27", "x28", "fp", "lr", "sp",
}

// ---------------------
// ----- Functions -----
// ---------------------

// RegisterPool returns the allocatable aarch64 integer registers: caller saved temporaries first, then callee saved
// registers.
func RegisterPool() regfile.Pool {
	regs := make([]regfile.Register, 0, r28-r9)
	for i1 := r9; i1 <= r17; i1++ {
		regs = append(regs, register{typ: regfile.Int, idx: i1})
	}
	for i1 := r19; i1 < r28; i1++ {
		regs = append(regs, register{typ: regfile.Int, idx: i1})
	}
	return regfile.NewPool(wordSize, regs...)
}

// FloatPool returns the allocatable aarch64 floating point registers: temporaries first, then callee saved registers.
func FloatPool() regfile.Pool {
	regs := make([]regfile.Register, 0, v32-v8)
	for i1 := v16; i1 < v32; i1++ {
		regs = append(regs, register{typ: regfile.Float, idx: i1})
	}
	for i1 := v8; i1 < v16; i1++ {
		regs = append(regs, register{typ: regfile.Float, idx: i1})
	}
	return regfile.NewPool(wordSize, regs...)
}

// String returns the assembler string of the register.
func (r register) String() string {
	if r.typ == regfile.Int {
		return regi[r.idx]
	}
	return "d" + strconv.Itoa(r.idx)
}

// Id returns the index of the register r.
func (r register) Id() int {
	return r.idx
}

// Type returns the register type, regfile.Int or regfile.Float.
func (r register) Type() int {
	return r.typ
}
