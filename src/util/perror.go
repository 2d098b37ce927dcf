package util

import (
	"errors"
	"sync"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// perror collects errors reported from parallel worker goroutines, so they can be inspected once a parallel job has
// been completed.
type perror struct {
	errors     []error // Buffer of error messages.
	sync.Mutex         // For synchronising writes and reads.
}

// ----------------------
// ----- Constants ------
// ----------------------

// defaultBufferSize defines the fallback buffer size of the error array.
const defaultBufferSize = 16

// ---------------------
// ----- functions -----
// ---------------------

// NewPerror returns a pointer to a perror struct with n number of pre-allocated slots for errors in the buffer.
func NewPerror(n int) *perror {
	if n < 1 {
		n = defaultBufferSize
	}
	return &perror{
		errors: make([]error, 0, n),
	}
}

// Append records err. <nil> errors are ignored. Append is safe for concurrent use.
func (pe *perror) Append(err error) {
	if err == nil {
		return
	}
	pe.Lock()
	defer pe.Unlock()
	pe.errors = append(pe.errors, err)
}

// Len returns the number of buffered errors.
func (pe *perror) Len() int {
	pe.Lock()
	defer pe.Unlock()
	return len(pe.errors)
}

// Errors returns a copy of the buffered errors in the order they were reported.
func (pe *perror) Errors() []error {
	pe.Lock()
	defer pe.Unlock()
	return append([]error(nil), pe.errors...)
}

// Err joins the buffered errors into one, or returns <nil> if none were reported.
func (pe *perror) Err() error {
	return errors.Join(pe.Errors()...)
}
