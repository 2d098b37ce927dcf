// stack.go provides a slice backed LIFO stack. The bottom element is the first entry pushed onto the stack, while
// the top is the last entry pushed. A Stack is owned by a single goroutine.

package util

// Stack is a LIFO stack of arbitrary values. The zero value is an empty stack.
type Stack[T any] struct {
	elems []T // elems[0] is the bottom, elems[len-1] the top.
}

// Push adds a new element to the top of the stack.
func (s *Stack[T]) Push(e T) {
	s.elems = append(s.elems, e)
}

// Pop removes and returns the top element of the stack. The boolean is false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.elems) == 0 {
		return zero, false
	}
	e := s.elems[len(s.elems)-1]
	s.elems[len(s.elems)-1] = zero
	s.elems = s.elems[:len(s.elems)-1]
	return e, true
}

// Peek works just like Pop, but it does not remove the element from the stack.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	return s.elems[len(s.elems)-1], true
}

// Size returns the number of elements in the stack.
func (s *Stack[T]) Size() int {
	return len(s.elems)
}

// Get returns the nth element from the stack, top down, not zero indexed.
// Get(1) returns the top element and is similar to Peek, Get(Size()) returns the bottom element.
// The boolean is false if n is out of range. Get does not remove elements from the stack.
func (s *Stack[T]) Get(n int) (T, bool) {
	if n < 1 || n > len(s.elems) {
		var zero T
		return zero, false
	}
	return s.elems[len(s.elems)-n], true
}
