// Package ir declares the minimal IR-construction surface the lifter core
// depends on: typed values, a basic-block level instruction builder, and a
// module that owns named globals and functions. Disassembly and a concrete
// IR implementation both live outside this package; see ir/llvmir for one
// concrete binding (backed by github.com/llir/llvm) and ir/irtest for a
// second one used by the core's own tests.
package ir

import "fmt"

// Type is the type of an IR value: either a plain integer of some bit width,
// or a pointer to an element Type. The zero Type is invalid.
type Type struct {
	bits    byte
	pointer bool
	elem    *Type
}

// IntType returns the integer type of the given bit width.
func IntType(bits byte) Type {
	return Type{bits: bits}
}

// PointerType returns a type representing a pointer to elem.
func PointerType(elem Type) Type {
	e := elem
	return Type{pointer: true, elem: &e}
}

// Bits returns the bit width of an integer type, or 0 for a pointer type.
func (t Type) Bits() byte {
	if t.pointer {
		return 0
	}
	return t.bits
}

// IsPointer reports whether t is a pointer type.
func (t Type) IsPointer() bool { return t.pointer }

// Elem returns the pointee type. Panics if t is not a pointer type.
func (t Type) Elem() Type {
	if !t.pointer {
		panic("ir: Elem of non-pointer type")
	}
	return *t.elem
}

// Valid reports whether t was ever initialized via IntType/PointerType.
func (t Type) Valid() bool {
	return t.pointer || t.bits != 0
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if t.pointer {
		return fmt.Sprintf("ptr(%s)", t.elem.String())
	}
	return fmt.Sprintf("i%d", t.bits)
}

// Common widths used pervasively by the ARM64 core.
var (
	I1  = IntType(1)
	I8  = IntType(8)
	I16 = IntType(16)
	I32 = IntType(32)
	I64 = IntType(64)
)
