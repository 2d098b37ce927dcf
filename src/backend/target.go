// Package backend selects the physical register pool of the target architecture.
package backend

import (
	"errors"

	"rigc/src/backend/arm"
	"rigc/src/backend/regfile"
	"rigc/src/backend/riscv"
	"rigc/src/backend/x64"
	"rigc/src/util"
)

// ---------------------
// ----- Functions -----
// ---------------------

// RegisterPool returns the allocatable registers of the architecture defined by opt. The floating point pool is
// returned if opt.Float is set, the integer pool otherwise.
func RegisterPool(opt util.Options) (regfile.Pool, error) {
	switch opt.TargetArch {
	case util.Aarch64:
		if opt.Float {
			return arm.FloatPool(), nil
		}
		return arm.RegisterPool(), nil
	case util.Riscv64:
		if opt.Float {
			return riscv.FloatPool(64)
		}
		return riscv.RegisterPool(64)
	case util.Riscv32:
		if opt.Float {
			return riscv.FloatPool(32)
		}
		return riscv.RegisterPool(32)
	case util.X86_64:
		if opt.Float {
			return x64.FloatPool(), nil
		}
		return x64.RegisterPool(), nil
	default:
		return regfile.Pool{}, errors.New("unsupported target architecture")
	}
}
