package arm64

import (
	"fmt"

	coreir "github.com/2lambda123/avast-retdec/ir"
)

// RegEnv owns the set of named architectural registers and creates/holds
// the IR globals that back every architectural parent register. The
// table layout follows a flat parent-register table, adapted here to back
// real IR storage rather than a register allocator's naming scheme.
type RegEnv struct {
	mod     coreir.Module
	globals [numRegs]coreir.Global
	frozen  bool
}

// NewRegEnv creates every parent register's backing IR global against mod
// and freezes the parent map: registers are created once, up front, during
// environment setup, and the resulting set is published-once-then-frozen
// for any goroutines that read it concurrently afterward.
func NewRegEnv(mod coreir.Module) *RegEnv {
	e := &RegEnv{mod: mod}
	for _, id := range allParentRegisters {
		if isZeroRegister(id) {
			// The zero register is never backed by storage: reads return the
			// constant zero and writes are discarded.
			continue
		}
		e.createRegister(id)
	}
	e.frozen = true
	return e
}

func (e *RegEnv) createRegister(id regID) {
	if id != parentOf[id] {
		panic(fmt.Sprintf("arm64: createRegister(%v) is not a parent register", id))
	}
	e.globals[id] = e.mod.NewGlobal(regNames[id], e.RegisterType(id))
}

// GetRegister returns the IR global backing id's parent, or nil if id has
// none (the zero register, or PC, which is never backed by storage).
func (e *RegEnv) GetRegister(id regID) coreir.Global {
	if id == invalidReg || id >= numRegs {
		return nil
	}
	return e.globals[parentOf[id]]
}

// ParentRegister returns id's parent, bounds-checked.
func (e *RegEnv) ParentRegister(id regID) regID {
	return ParentRegister(id)
}

// RegisterType returns the IR integer type of id's architectural bit width.
func (e *RegEnv) RegisterType(id regID) coreir.Type {
	return coreir.IntType(widthOf[id])
}

// RegisterBitSize returns id's architectural bit width.
func (e *RegEnv) RegisterBitSize(id regID) byte {
	return widthOf[id]
}
