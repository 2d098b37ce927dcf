package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ---------------------
// ----- Constants -----
// ---------------------

// stdinTimeout is how long ReadSource waits for input on stdin before giving up.
const stdinTimeout = 500 * time.Millisecond

// ---------------------
// ----- Functions -----
// ---------------------

// ReadSource reads the description from file or from stdin.
// If the Options structure holds a path in Src the file is read. Otherwise the function waits for a short period for
// input on stdin. If no input on stdin is provided the function returns an error.
func ReadSource(opt Options, stdin io.Reader) ([]byte, error) {
	if len(opt.Src) > 0 {
		// Read from file.
		b, err := os.ReadFile(opt.Src)
		if err != nil {
			return nil, fmt.Errorf("could not read description: %w", err)
		}
		return b, nil
	}

	// Read stdin.
	type result struct {
		b   []byte
		err error
	}
	c := make(chan result, 1)

	// Concurrently wait for input on stdin.
	go func() {
		b, err := io.ReadAll(bufio.NewReader(stdin))
		c <- result{b: b, err: err}
	}()

	// Select between input from stdin or timer expiry.
	select {
	case <-time.After(stdinTimeout):
		return nil, errors.New("expected input from stdin, got none")
	case r := <-c:
		if r.err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", r.err)
		}
		return r.b, nil
	}
}

// WriteOutput writes data to the file named by opt.Out, creating or truncating it, or to stdout if no output file
// was given.
func WriteOutput(opt Options, stdout io.Writer, data []byte) error {
	if len(opt.Out) == 0 {
		_, err := stdout.Write(data)
		return err
	}
	f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open output file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not write output file: %w", err)
	}
	return f.Close()
}
