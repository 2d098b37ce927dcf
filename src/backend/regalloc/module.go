package regalloc

import (
	"fmt"
	"sync"

	"rigc/src/backend/regfile"
	"rigc/src/colour"
	"rigc/src/graph"
	"rigc/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Function holds the register interference of one compiled function.
type Function struct {
	Name  string       // Name of the function.
	Graph *graph.Graph // Interference between the function's virtual registers.
	Uses  []int        // Optional use count per virtual register, used by the spill cost.
}

// ---------------------
// ----- Functions -----
// ---------------------

// ConfigFor returns the allocation configuration selected by opt for f.
func ConfigFor(opt util.Options, f Function) Config {
	cfg := Config{Policy: colour.PolicyDegreeOrdered}
	if opt.Greedy {
		cfg.Policy = colour.PolicyGreedy
	}
	if opt.Cost {
		if len(f.Uses) > 0 {
			cfg.Cost = UseCountCost(f.Uses)
		} else {
			cfg.Cost = DegreeCost
		}
	}
	return cfg
}

// AllocateModule allocates registers from pool for every function in fns and returns their tables in the same order.
// If opt.Threads is larger than one the functions are spread over that many worker goroutines. Every function owns
// its graph, so workers share nothing but the read-only pool.
func AllocateModule(opt util.Options, pool regfile.Pool, fns []Function) ([]*Table, error) {
	tables := make([]*Table, len(fns))
	if len(fns) == 0 {
		return tables, nil
	}

	if opt.Threads > 1 {
		// Parallel.
		t := opt.Threads
		l := len(fns)
		if t > l {
			t = l
		}
		n := l / t
		res := l % t

		start := 0
		end := n

		// Create error listener.
		perr := util.NewPerror(t)

		// Create wait group for main go routine to wait for worker go routines.
		wg := sync.WaitGroup{}
		wg.Add(t)

		// Spawn t worker go routines.
		for i1 := 0; i1 < t; i1++ {
			if i1 < res {
				end++
			}

			// Spawn worker go routine. Workers write disjoint ranges of tables.
			go func(start, end int) {
				defer wg.Done()
				for i2 := start; i2 < end; i2++ {
					tab, err := allocateFunction(opt, pool, fns[i2])
					if err != nil {
						perr.Append(err)
						continue
					}
					tables[i2] = tab
				}
			}(start, end)

			start = end
			end += n
		}

		// Wait for worker go routines to finish register allocation.
		wg.Wait()

		// Check for errors from worker go routines.
		if perr.Len() > 0 {
			return nil, fmt.Errorf("%d error(s) during parallel register allocation: %w", perr.Len(), perr.Err())
		}
		return tables, nil
	}

	// Sequential.
	for i1, e1 := range fns {
		tab, err := allocateFunction(opt, pool, e1)
		if err != nil {
			return nil, err
		}
		tables[i1] = tab
	}
	return tables, nil
}

// allocateFunction allocates registers for a single function.
func allocateFunction(opt util.Options, pool regfile.Pool, f Function) (*Table, error) {
	tab, err := AllocateWith(f.Graph, pool, ConfigFor(opt, f))
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", f.Name, err)
	}
	tab.Function = f.Name
	log.Infof("%s: %d virtual registers, %d colours, %d spilled", f.Name, len(tab.Entries), tab.Colours, tab.Slots)
	return tab, nil
}
