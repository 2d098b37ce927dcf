package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rigc/src/backend/regalloc"
	"rigc/src/util"
)

// ---------------------
// ----- Constants -----
// ---------------------

const desc = `
registers = ["a", "b"]
word-size = 4

[[function]]
name = "tri"
vertices = 3
edges = [[0, 1], [1, 2], [2, 0]]
uses = [1, 9, 9]
`

// ---------------------
// ----- Functions -----
// ---------------------

// TestRunText verifies the text listing written for a description read from stdin.
func TestRunText(t *testing.T) {
	out := bytes.Buffer{}
	if err := run([]string{"-cost"}, strings.NewReader(desc), &out); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.HasPrefix(s, "tri: 3 virtual registers, 2 colours, 1 spilled, frame size 4\n") {
		t.Fatalf("unexpected output %q", s)
	}
}

// TestRunCBOR verifies that CBOR output written to a file decodes to the allocation tables.
func TestRunCBOR(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tri.toml")
	dst := filepath.Join(dir, "tri.cbor")
	if err := os.WriteFile(src, []byte(desc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run([]string{"-cost", "-cbor", "-t", "2", "-o", dst, src}, nil, nil); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := regalloc.DecodeTables(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 1 || ts[0].Function != "tri" {
		t.Fatalf("unexpected tables %v", ts)
	}
	if s := ts[0].Spilled(); len(s) != 1 || s[0] != 0 {
		t.Fatalf("expected v0 spilled, got %v", s)
	}
}

// TestRunTarget verifies that the target register pool is used when the description names none.
func TestRunTarget(t *testing.T) {
	out := bytes.Buffer{}
	src := "[[function]]\nname = \"f\"\nvertices = 2\nedges = [[0, 1]]\n"
	if err := run([]string{"-arch", "x86_64"}, strings.NewReader(src), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "rax") || !strings.Contains(out.String(), "rcx") {
		t.Fatalf("expected x86-64 registers in %q", out.String())
	}
}

// TestRunErrors verifies that bad arguments and descriptions are reported.
func TestRunErrors(t *testing.T) {
	tests := []struct {
		args []string
		src  string
	}{
		{[]string{"-t", "0"}, desc},
		{nil, "target = \"aarch64\"\n"},
		{nil, "[[function]\n"},
	}
	for _, e1 := range tests {
		if err := run(e1.args, strings.NewReader(e1.src), &bytes.Buffer{}); err == nil {
			t.Fatalf("expected error for %v and %q", e1.args, e1.src)
		}
	}
}

// TestRunVersion verifies the version and help output.
func TestRunVersion(t *testing.T) {
	out := bytes.Buffer{}
	if err := run([]string{"-v"}, nil, &out); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != util.AppVersion {
		t.Fatalf("expected %q, got %q", util.AppVersion, out.String())
	}
	out.Reset()
	if err := run([]string{"-h"}, nil, &out); err != nil {
		t.Fatal(err)
	}
	if out.Len() == 0 {
		t.Fatal("expected usage")
	}
}

// BenchmarkAllocate benchmarks allocating a module of dense functions sequentially and in parallel.
func BenchmarkAllocate(b *testing.B) {
	sb := strings.Builder{}
	sb.WriteString("registers = [\"r0\", \"r1\", \"r2\", \"r3\", \"r4\", \"r5\", \"r6\", \"r7\"]\n")
	for i1 := 0; i1 < 16; i1++ {
		sb.WriteString(fmt.Sprintf("[[function]]\nname = \"f%d\"\n", i1))
		for i2 := 0; i2 < 64; i2++ {
			sb.WriteString(fmt.Sprintf("[[function.local]]\nindex = %d\nstart = %d\nlength = %d\n", i2, i2, 1+(i2*7)%13))
		}
	}
	src := sb.String()

	for _, threads := range []string{"1", "4"} {
		b.Run("threads="+threads, func(b *testing.B) {
			for i1 := 0; i1 < b.N; i1++ {
				if err := run([]string{"-t", threads}, strings.NewReader(src), &bytes.Buffer{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
