package frontend

import (
	"strings"
	"testing"

	"rigc/src/util"
)

const example = `
target = "riscv64"

[[function]]
name = "fib"
vertices = 4
edges = [[0, 1], [1, 2], [2, 3], [3, 9]]
uses = [3, 1, 2, 5]

[[function]]
name = "loop"

  [[function.local]]
  index = 0
  start = 0
  length = 10

  [[function.local]]
  index = 1
  start = 5
  length = 2

  [[function.local]]
  index = 2
  start = 10
  length = 4
`

// TestParse verifies that functions, edges and live ranges of a description are turned into interference graphs.
func TestParse(t *testing.T) {
	d, err := Parse([]byte(example))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Pool(); ok {
		t.Fatal("expected no custom pool")
	}
	opt := util.Options{TargetArch: util.Aarch64}
	d.Apply(&opt)
	if opt.TargetArch != util.Riscv64 {
		t.Fatalf("expected target riscv64, got %s", util.ArchName(opt.TargetArch))
	}

	fns, err := d.Functions()
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) != 2 || fns[0].Name != "fib" || fns[1].Name != "loop" {
		t.Fatalf("unexpected functions %v", fns)
	}

	fib := fns[0].Graph
	if fib.Len() != 4 || fib.EdgeCount() != 3 {
		t.Fatalf("expected 4 vertices and 3 edges, got %s", fib)
	}
	if !fib.IsConnected(1, 0) || !fib.IsConnected(3, 2) || fib.IsConnected(0, 3) {
		t.Fatal("unexpected edges in fib")
	}
	if len(fns[0].Uses) != 4 {
		t.Fatalf("expected 4 use counts, got %v", fns[0].Uses)
	}

	// [0, 10) overlaps [5, 7) but not [10, 14).
	loop := fns[1].Graph
	if loop.Len() != 3 || loop.EdgeCount() != 1 || !loop.IsConnected(0, 1) {
		t.Fatalf("expected only locals 0 and 1 to interfere, got %s", loop)
	}
}

// TestParsePool verifies the custom register pool of a description.
func TestParsePool(t *testing.T) {
	d, err := Parse([]byte(`
registers = ["a", "b", "a", "c"]
word-size = 4

[[function]]
name = "f"
vertices = 1
`))
	if err != nil {
		t.Fatal(err)
	}
	p, ok := d.Pool()
	if !ok {
		t.Fatal("expected custom pool")
	}
	if p.Len() != 3 || p.WordSize() != 4 || p.String() != "[a b c]" {
		t.Fatalf("unexpected pool %s with word size %d", p, p.WordSize())
	}
}

// TestParseErrors verifies that malformed descriptions are rejected.
func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":      `[[function]`,
		"target":      `target = "z80"`,
		"word size":   `word-size = -8`,
		"vertices":    "[[function]]\nname = \"f\"\nvertices = -1",
		"edge":        "[[function]]\nname = \"f\"\nvertices = 3\nedges = [[0, 1, 2]]",
		"uses":        "[[function]]\nname = \"f\"\nvertices = 3\nuses = [1, 2]",
		"duplicate":   "[[function]]\nname = \"f\"\n[[function]]\nname = \"f\"",
		"length":      "[[function]]\nname = \"f\"\n[[function.local]]\nindex = 0\nstart = 0\nlength = -1",
		"local index": "[[function]]\nname = \"f\"\n[[function.local]]\nindex = -2\nstart = 0\nlength = 1",
	}
	for name, src := range tests {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

// TestFunctionsEmpty verifies that a description without functions cannot be allocated.
func TestFunctionsEmpty(t *testing.T) {
	d, err := Parse([]byte(`target = "x86_64"`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Functions(); err == nil || !strings.Contains(err.Error(), "no functions") {
		t.Fatalf("expected error for empty description, got %v", err)
	}
}
