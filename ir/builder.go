package ir

// Module owns the named globals and opaque asm functions of one lifted
// translation unit. The Register Environment (internal/arm64) creates one
// Global per architectural parent register against a Module; the
// Pseudo-Instruction Fallback resolves one opaque function per mnemonic.
type Module interface {
	// NewGlobal creates and registers a new named global of the given type.
	// Calling it twice with the same name is a caller bug and panics, mirroring
	// the register environment's create-once-per-parent-register contract.
	NewGlobal(name string, t Type) Global

	// Global looks up a previously created global by name.
	Global(name string) (Global, bool)

	// AsmFunc returns (creating it if necessary) the opaque IR function used
	// by the Pseudo-Instruction Fallback to represent an unmodeled mnemonic.
	// The same name always yields the same Value so that repeated fallback
	// calls for the same mnemonic are recognizable as such downstream.
	AsmFunc(mnemonic string, argc int) Value
}

// Block is the instruction builder: it has a current insertion point (its
// own tail) and every New* method appends one instruction there and returns
// its result Value. This is the minimal builder interface the lifter core
// depends on as an external collaborator, decoupled from any concrete IR.
type Block interface {
	// Const materializes a constant of Type t. val is reinterpreted modulo
	// 2^bits; callers pass signed immediates as-is (e.g. -1) and unsigned
	// ones too (e.g. 0xFFFFFFFF for a 32-bit immediate).
	Const(t Type, val int64) Value

	Load(ptr Value, t Type) Value
	Store(val, ptr Value)

	Add(x, y Value) Value
	Sub(x, y Value) Value
	And(x, y Value) Value
	Or(x, y Value) Value
	Xor(x, y Value) Value
	Mul(x, y Value) Value
	UDiv(x, y Value) Value
	SDiv(x, y Value) Value
	Shl(x, y Value) Value
	LShr(x, y Value) Value
	AShr(x, y Value) Value
	Not(x Value) Value
	Neg(x Value) Value

	// ICmp* return an i1 Value.
	ICmpEQ(x, y Value) Value
	ICmpNE(x, y Value) Value
	ICmpULT(x, y Value) Value
	ICmpULE(x, y Value) Value
	ICmpUGT(x, y Value) Value
	ICmpUGE(x, y Value) Value
	ICmpSLT(x, y Value) Value
	ICmpSLE(x, y Value) Value
	ICmpSGT(x, y Value) Value
	ICmpSGE(x, y Value) Value

	Trunc(x Value, t Type) Value
	ZExt(x Value, t Type) Value
	SExt(x Value, t Type) Value

	// Select picks x when cond is non-zero, y otherwise. x and y must share a
	// Type, which becomes the result's Type.
	Select(cond, x, y Value) Value

	// IntToPtr reinterprets an integer address as a pointer to elem.
	IntToPtr(x Value, elem Type) Value

	// The four reserved control-flow escapes.
	// They are the sole mechanism by which lifted code leaves a basic block
	// and are opaque to data-flow reasoning.
	Branch(target Value)
	ConditionalBranch(cond, target Value)
	Call(target Value)
	Return(target Value)

	// GenericCall emits a call to an opaque asm function (as resolved by
	// Module.AsmFunc) and returns its result, used by the
	// Pseudo-Instruction Fallback.
	GenericCall(fn Value, args []Value) Value
}
