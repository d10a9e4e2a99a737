// Package callingconv implements a registry mapping an ABI tag to a
// factory that produces a structured description of how that ABI's
// parameters and return values map onto registers and the stack, for a
// given architecture binding.
//
// Descriptor's field set mirrors a calling convention's getters almost
// one-for-one. A process-wide singleton registry is deliberately avoided
// in favor of an explicit, caller-constructed *Registry value, since a
// decompiler library embedded in another process should never reach for
// global mutable state behind the caller's back.
package callingconv

import "fmt"

// Tag is the closed enumeration of supported ABI names.
type Tag uint8

const (
	TagInvalid Tag = iota
	Cdecl
	Ellipsis
	Stdcall
	Thiscall
	Pascal
	Fastcall
	PascalFastcall
	Watcom
	SystemVX64
	MicrosoftX64
	ARM
	ARM64
	PowerPC
	PowerPC64
	MIPS
	MIPSPsp
	MIPS64
	PIC32
)

var tagNames = map[Tag]string{
	Cdecl: "cdecl", Ellipsis: "ellipsis", Stdcall: "stdcall", Thiscall: "thiscall",
	Pascal: "pascal", Fastcall: "fastcall", PascalFastcall: "pascal_fastcall",
	Watcom: "watcom", SystemVX64: "systemv_x64", MicrosoftX64: "microsoft_x64",
	ARM: "arm", ARM64: "arm64", PowerPC: "powerpc", PowerPC64: "powerpc64",
	MIPS: "mips", MIPSPsp: "mips_psp", MIPS64: "mips64", PIC32: "pic32",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// StackDirection is the order stack parameters are pushed/consumed in.
type StackDirection bool

const (
	LeftToRight StackDirection = false
	RightToLeft StackDirection = true
)

// Descriptor is the structured description of one ABI's parameter and
// return-value storage rules for one architecture binding. Constructed on demand by a Factory;
// the caller owns the returned value.
type Descriptor struct {
	Tag Tag

	GeneralParamRegs []RegisterID
	FPParamRegs      []RegisterID
	DoubleParamRegs  []RegisterID
	VectorParamRegs  []RegisterID

	GeneralReturnRegs []RegisterID
	FPReturnRegs      []RegisterID
	DoubleReturnRegs  []RegisterID
	VectorReturnRegs  []RegisterID

	// NumRegsPerWideParam is how many consecutive general registers a
	// parameter wider than one register occupies (e.g. 2 for a 64-bit
	// value passed across a pair of 32-bit registers).
	NumRegsPerWideParam int

	// RegistersOverlay is true when register lists share physical storage
	// rather than being independent register files: the FP/double/vector
	// lists as lane views of one register file (ARM, ARM64), or FP and
	// general parameters sharing argument slots (Microsoft x64).
	RegistersOverlay bool

	StackDirection    StackDirection
	CompositesOnStack bool

	wordSize int
}

// MaxBytesPerStackParam reports the largest primitive a single stack slot
// holds without spilling to a second slot: the binding's word size.
func (d *Descriptor) MaxBytesPerStackParam() int {
	return d.wordSize
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("callingconv.Descriptor{%s}", d.Tag)
}

// ValueCanBeParameter reports whether v could plausibly be a parameter
// under this descriptor: either it is a recognized stack variable, or it
// resolves (via b) to a register id present in any parameter list.
func (d *Descriptor) ValueCanBeParameter(b Binding, v interface{}) bool {
	if b.IsStackVariable(v) {
		return true
	}
	id, ok := b.RegisterID(v)
	if !ok {
		return false
	}
	return containsReg(d.GeneralParamRegs, id) ||
		containsReg(d.FPParamRegs, id) ||
		containsReg(d.DoubleParamRegs, id) ||
		containsReg(d.VectorParamRegs, id)
}

// ValueCanHoldReturn reports whether v resolves to a register id present
// in any return-value list.
func (d *Descriptor) ValueCanHoldReturn(b Binding, v interface{}) bool {
	id, ok := b.RegisterID(v)
	if !ok {
		return false
	}
	return containsReg(d.GeneralReturnRegs, id) ||
		containsReg(d.FPReturnRegs, id) ||
		containsReg(d.DoubleReturnRegs, id) ||
		containsReg(d.VectorReturnRegs, id)
}

func containsReg(regs []RegisterID, id RegisterID) bool {
	for _, r := range regs {
		if r == id {
			return true
		}
	}
	return false
}
