package arm64

import "fmt"

// The typed error kinds translation can fail with. UnhandledInstruction is
// recoverable (the driver absorbs it with the pseudo-asm fallback); the
// rest are fatal for the offending instruction.

// UnhandledInstructionError reports a mnemonic with no semantics-table
// entry. TranslateOne never returns it: the driver hands it to
// Translator.Reporter (once per mnemonic) and emits the pseudo-asm
// fallback instead.
type UnhandledInstructionError struct {
	Mnemonic string
}

func (e *UnhandledInstructionError) Error() string {
	return fmt.Sprintf("arm64: unhandled instruction %q", e.Mnemonic)
}

// UnsupportedOperandError reports an operand variant outside the supported
// set (floating-point, prefetch, barrier, CIMM, PSTATE, MRS/MSR).
type UnsupportedOperandError struct {
	Mnemonic string
	Reason   string
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("arm64: unsupported operand in %q: %s", e.Mnemonic, e.Reason)
}

// MalformedOperandCountError reports an operand count outside the
// semantics function's contract (e.g. a ternary opcode given two operands).
type MalformedOperandCountError struct {
	Mnemonic string
	Want     string
	Got      int
}

func (e *MalformedOperandCountError) Error() string {
	return fmt.Sprintf("arm64: %q expects %s operands, got %d", e.Mnemonic, e.Want, e.Got)
}

// InvalidConditionError reports AL/NV/INVALID reaching the
// condition-expression builder, a programmer error.
type InvalidConditionError struct {
	Cond cond
}

func (e *InvalidConditionError) Error() string {
	return fmt.Sprintf("arm64: condition %v has no flag expression", e.Cond)
}
