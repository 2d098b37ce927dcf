package util

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/xyproto/env/v2"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options holds the run configuration of the allocator.
type Options struct {
	Src        string // Path to description file. Empty means stdin.
	Out        string // Path to output file. Empty means stdout.
	Threads    int    // Number of functions allocated in parallel.
	Verbose    bool   // Set true to log allocation statistics and debug messages.
	TargetArch int    // Target architecture providing the register pool.
	Float      bool   // Set true to allocate from the floating point register pool.
	Greedy     bool   // Set true to colour greedily instead of by degree order.
	Cost       bool   // Set true to choose spilled registers by spill cost.
	CBOR       bool   // Set true to write allocation tables as CBOR instead of text.
	Help       bool   // Set true if usage was requested.
	Version    bool   // Set true if the version was requested.
}

// ---------------------
// ----- Constants -----
// ---------------------

const maxThreads = 64 // Maximum threads allowed executing in parallel.

// AppVersion is printed by the -v flag.
const AppVersion = "rigc register allocator 1.0"

// Target machine architectures.
const (
	UnknownArch = iota
	X86_64
	Aarch64
	Riscv64
	Riscv32
)

// Environment variables read by ParseArgs. Command line flags take precedence.
const (
	EnvThreads = "RIGC_THREADS"
	EnvArch    = "RIGC_ARCH"
	EnvVerbose = "RIGC_VERBOSE"
)

// ---------------------
// ----- functions -----
// ---------------------

// ParseArch converts an architecture identifier to one of the target architecture constants.
func ParseArch(s string) (int, error) {
	switch strings.ToLower(s) {
	case "aarch64", "arm64":
		return Aarch64, nil
	case "riscv64":
		return Riscv64, nil
	case "riscv32":
		return Riscv32, nil
	case "x86_64", "amd64":
		return X86_64, nil
	default:
		return UnknownArch, fmt.Errorf("unexpected architecture identifier: %s", s)
	}
}

// ArchName returns the identifier of a target architecture constant.
func ArchName(arch int) string {
	switch arch {
	case Aarch64:
		return "aarch64"
	case Riscv64:
		return "riscv64"
	case Riscv32:
		return "riscv32"
	case X86_64:
		return "x86_64"
	default:
		return "unknown"
	}
}

// checkThreads validates a thread count.
func checkThreads(t int) error {
	if t < 1 || t > maxThreads {
		return fmt.Errorf("thread count must be integer in range [1, %d]", maxThreads)
	}
	return nil
}

// defaults returns the Options implied by the environment.
func defaults() (Options, error) {
	opt := Options{
		Threads:    env.Int(EnvThreads, 1),
		Verbose:    env.Bool(EnvVerbose),
		TargetArch: Aarch64,
	}
	if err := checkThreads(opt.Threads); err != nil {
		return opt, fmt.Errorf("%s: %w", EnvThreads, err)
	}
	if s := env.Str(EnvArch); s != "" {
		arch, err := ParseArch(s)
		if err != nil {
			return opt, fmt.Errorf("%s: %w", EnvArch, err)
		}
		opt.TargetArch = arch
	}
	return opt, nil
}

// ParseArgs parses command line arguments, not including the program name, on top of the defaults taken from the
// environment. At most one non-flag argument is accepted, the path of the description file.
func ParseArgs(args []string) (Options, error) {
	opt, err := defaults()
	if err != nil {
		return opt, err
	}
	for i1 := 0; i1 < len(args); i1++ {
		switch args[i1] {
		case "-h", "--h", "-help", "--help":
			// Help and usage.
			opt.Help = true
		case "-v", "--v", "-version", "--version":
			// Application version.
			opt.Version = true
		case "-o", "-t", "-arch":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			if strings.HasPrefix(args[i1+1], "-") {
				return opt, fmt.Errorf("expected argument to %s, got new flag %s", args[i1], args[i1+1])
			}
			switch args[i1] {
			case "-o":
				// Output file.
				opt.Out = args[i1+1]
			case "-t":
				// Thread count.
				t, err := strconv.Atoi(args[i1+1])
				if err != nil {
					return opt, fmt.Errorf("expected integer thread count, got: %s", args[i1+1])
				}
				if err := checkThreads(t); err != nil {
					return opt, err
				}
				opt.Threads = t
			case "-arch":
				// Target architecture.
				arch, err := ParseArch(args[i1+1])
				if err != nil {
					return opt, err
				}
				opt.TargetArch = arch
			}
			i1++
		case "-f":
			opt.Float = true
		case "-greedy":
			opt.Greedy = true
		case "-cost":
			opt.Cost = true
		case "-cbor":
			opt.CBOR = true
		case "-vb":
			// Verbose mode.
			opt.Verbose = true
		default:
			if strings.HasPrefix(args[i1], "-") {
				return opt, fmt.Errorf("unexpected flag: %s", args[i1])
			}
			if len(opt.Src) > 0 {
				return opt, fmt.Errorf("unexpected argument %s, description file already given as %s", args[i1], opt.Src)
			}
			opt.Src = args[i1]
		}
	}
	return opt, nil
}

// PrintHelp writes a helpful usage message to w.
func PrintHelp(w io.Writer) {
	tw := tabwriter.NewWriter(w, 6, 1, 1, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Usage: rigc [flags] [description.toml]")
	_, _ = fmt.Fprintln(tw, "-h, -help\tPrints this help message and exits the application.")
	_, _ = fmt.Fprintln(tw, "-o\tPath and name of the output file. Defaults to stdout.")
	_, _ = fmt.Fprintf(tw, "-t\tNumber of functions to allocate in parallel. Must be in range [1, %d].\n", maxThreads)
	_, _ = fmt.Fprintln(tw, "-arch\tTarget architecture: 'aarch64', 'riscv64', 'riscv32' or 'x86_64'. Defaults to 'aarch64'.")
	_, _ = fmt.Fprintln(tw, "-f\tAllocate from the floating point register pool.")
	_, _ = fmt.Fprintln(tw, "-greedy\tColour greedily in vertex order instead of by degree order.")
	_, _ = fmt.Fprintln(tw, "-cost\tChoose spilled registers by spill cost instead of by colour.")
	_, _ = fmt.Fprintln(tw, "-cbor\tWrite allocation tables as CBOR.")
	_, _ = fmt.Fprintln(tw, "-v, -version\tPrints application version and exits the application.")
	_, _ = fmt.Fprintln(tw, "-vb\tVerbose mode: log allocation statistics.")
	_, _ = fmt.Fprintf(tw, "\nEnvironment: %s, %s and %s set defaults for -t, -arch and -vb.\n", EnvThreads, EnvArch, EnvVerbose)
	_ = tw.Flush()
}
