package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/tliron/commonlog/simple"

	"rigc/src/backend"
	"rigc/src/backend/regalloc"
	"rigc/src/frontend"
	"rigc/src/util"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run allocates registers for the description selected by args and writes the allocation tables.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	// Parse command line arguments.
	opt, err := util.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("command line argument error: %w", err)
	}
	if opt.Help {
		util.PrintHelp(stdout)
		return nil
	}
	if opt.Version {
		_, err := fmt.Fprintln(stdout, util.AppVersion)
		return err
	}
	util.ConfigureLog(opt)

	// Read and parse description.
	src, err := util.ReadSource(opt, stdin)
	if err != nil {
		return err
	}
	d, err := frontend.Parse(src)
	if err != nil {
		return err
	}
	d.Apply(&opt)
	fns, err := d.Functions()
	if err != nil {
		return err
	}

	// Select register pool. A pool given in the description replaces the target's.
	pool, ok := d.Pool()
	if !ok {
		if pool, err = backend.RegisterPool(opt); err != nil {
			return err
		}
	}

	// Allocate registers.
	tables, err := regalloc.AllocateModule(opt, pool, fns)
	if err != nil {
		return fmt.Errorf("register allocation error: %w", err)
	}

	// Write results.
	var out []byte
	if opt.CBOR {
		if out, err = regalloc.EncodeTables(tables); err != nil {
			return err
		}
	} else {
		out = []byte(regalloc.FormatTables(tables))
	}
	return util.WriteOutput(opt, stdout, out)
}
