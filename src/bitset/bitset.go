// Package bitset provides a growable, indexable set of bits. It is the storage primitive of both the interference
// graph and the colouring work sets.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// BitSet is an ordered sequence of bits addressed 0..Len()-1. Any access beyond the current capacity grows the set
// to exactly cover the index, so an index that was never touched reads as unset. Capacity never shrinks.
type BitSet struct {
	n     int      // Capacity in bits.
	words []uint64 // Backing storage. Bits at or beyond n are always zero.
}

// ---------------------
// ----- Constants -----
// ---------------------

const wordBits = 64 // Number of bits per backing word.

// ---------------------
// ----- Functions -----
// ---------------------

// New returns an empty BitSet with an initial capacity of n bits. A negative n is treated as zero.
func New(n int) *BitSet {
	if n < 0 {
		n = 0
	}
	return &BitSet{
		n:     n,
		words: make([]uint64, wordsFor(n)),
	}
}

// wordsFor returns the number of words needed to hold n bits.
func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len returns the capacity of the set in bits.
func (b *BitSet) Len() int {
	return b.n
}

// ensure grows the set such that index i is addressable. New bits are zero.
func (b *BitSet) ensure(i int) {
	if i < 0 {
		panic(fmt.Sprintf("bitset: negative index %d", i))
	}
	if i < b.n {
		return
	}
	b.n = i + 1
	for need := wordsFor(b.n); len(b.words) < need; {
		b.words = append(b.words, 0)
	}
}

// Test reports whether bit i is set. Testing beyond the current capacity grows the set and returns false.
func (b *BitSet) Test(i int) bool {
	b.ensure(i)
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Set sets bit i, growing the set if necessary.
func (b *BitSet) Set(i int) {
	b.ensure(i)
	b.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i, growing the set if necessary.
func (b *BitSet) Clear(i int) {
	b.ensure(i)
	b.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// And intersects b with other in place. Bits of b beyond the capacity of other are cleared, since a missing bit in
// other means unset.
func (b *BitSet) And(other *BitSet) {
	m := len(b.words)
	if len(other.words) < m {
		m = len(other.words)
	}
	for i1 := 0; i1 < m; i1++ {
		b.words[i1] &= other.words[i1]
	}
	clear(b.words[m:])
}

// Zero clears every bit without releasing storage.
func (b *BitSet) Zero() {
	clear(b.words)
}

// Copy returns a deep copy of b. The copy shares no storage with b.
func (b *BitSet) Copy() *BitSet {
	c := &BitSet{
		n:     b.n,
		words: make([]uint64, len(b.words)),
	}
	copy(c.words, b.words)
	return c
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	c := 0
	for _, e1 := range b.words {
		c += bits.OnesCount64(e1)
	}
	return c
}

// NextSet returns the index of the first set bit at or after from. The boolean is false if there is none.
// NextSet never grows the set.
func (b *BitSet) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= b.n {
		return -1, false
	}
	i1 := from / wordBits
	w := b.words[i1] >> uint(from%wordBits)
	if w != 0 {
		return from + bits.TrailingZeros64(w), true
	}
	for i1++; i1 < len(b.words); i1++ {
		if b.words[i1] != 0 {
			return i1*wordBits + bits.TrailingZeros64(b.words[i1]), true
		}
	}
	return -1, false
}

// FirstClear returns the smallest index whose bit is unset. The result may equal Len(), since every index beyond
// the capacity reads as unset.
func (b *BitSet) FirstClear() int {
	for i1, e1 := range b.words {
		if e1 != ^uint64(0) {
			if i := i1*wordBits + bits.TrailingZeros64(^e1); i < b.n {
				return i
			}
			return b.n
		}
	}
	return b.n
}

// String returns the set bits as a brace-enclosed list, e.g. "{0, 3, 7}".
func (b *BitSet) String() string {
	sb := strings.Builder{}
	sb.WriteByte('{')
	first := true
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%d", i))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
