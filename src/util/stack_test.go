package util

import "testing"

// TestStack verifies LIFO order, Peek, Get indexing and behaviour on an empty stack.
func TestStack(t *testing.T) {
	s := Stack[int]{}
	if _, ok := s.Pop(); ok {
		t.Fatal("expected Pop on empty stack to fail")
	}
	for i1 := 1; i1 <= 5; i1++ {
		s.Push(i1 * 10)
	}
	if s.Size() != 5 {
		t.Fatalf("expected size 5, got %d", s.Size())
	}
	if e, ok := s.Peek(); !ok || e != 50 {
		t.Fatalf("expected 50 on top, got %d", e)
	}
	if e, ok := s.Get(1); !ok || e != 50 {
		t.Fatalf("expected Get(1) to be the top, got %d", e)
	}
	if e, ok := s.Get(5); !ok || e != 10 {
		t.Fatalf("expected Get(5) to be the bottom, got %d", e)
	}
	if _, ok := s.Get(6); ok {
		t.Fatal("expected Get(6) to be out of range")
	}
	for exp := 50; exp >= 10; exp -= 10 {
		e, ok := s.Pop()
		if !ok || e != exp {
			t.Fatalf("expected %d, got %d", exp, e)
		}
	}
	if s.Size() != 0 {
		t.Fatalf("expected empty stack, got size %d", s.Size())
	}
}
