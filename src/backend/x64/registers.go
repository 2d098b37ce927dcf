// Package x64 provides the x86-64 physical register pools used for register allocation.
package x64

import (
	"fmt"

	"rigc/src/backend/regfile"
)

// register is a general purpose 64-bit register or an SSE register.
type register struct {
	typ int
	idx int // Hardware encoding of the register.
}

const wordSize = 8

// Hardware encodings of the general purpose registers.
const (
	rax = iota
	rcx
	rdx
	rbx
	rsp
	rbp
	rsi
	rdi
	r8
	r15 = 15
)

var regi = [...]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

// RegisterPool returns every general purpose register except the stack and frame pointers.
func RegisterPool() regfile.Pool {
	regs := make([]regfile.Register, 0, 14)
	for i1 := rax; i1 <= r15; i1++ {
		if i1 == rsp || i1 == rbp {
			continue
		}
		regs = append(regs, register{typ: regfile.Int, idx: i1})
	}
	return regfile.NewPool(wordSize, regs...)
}

// FloatPool returns the SSE registers xmm0-xmm15.
func FloatPool() regfile.Pool {
	regs := make([]regfile.Register, 16)
	for i1 := range regs {
		regs[i1] = register{typ: regfile.Float, idx: i1}
	}
	return regfile.NewPool(wordSize, regs...)
}

func (r register) String() string {
	if r.typ == regfile.Int {
		return regi[r.idx]
	}
	return fmt.Sprintf("xmm%d", r.idx)
}

func (r register) Id() int {
	return r.idx
}

func (r register) Type() int {
	return r.typ
}
