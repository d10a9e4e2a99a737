package arm64

import (
	"strconv"

	coreir "github.com/2lambda123/avast-retdec/ir"
)

// fallback.go covers any mnemonic with no semantics-table entry: it is
// translated as an opaque call to an asm-named IR function carrying the
// raw operand values, so the lifter never aborts a whole function on one
// unmodeled opcode. A compiler backend that only ever lowers SSA it itself
// produced has no equivalent need for this, since it never meets an opcode
// it doesn't already know how to encode.

// fallback emits a GenericCall to the opaque per-mnemonic asm function,
// passing each resolved register/immediate operand as an argument, and
// stores the call's result into the first write-role register operand if
// the instruction names one. Memory and unsupported-kind operands cannot
// be meaningfully passed through (an address is not a value the downstream
// consumer can reinterpret on its own), so the fallback only ever accepts
// register and immediate operands; anything else escalates to
// UnsupportedOperandError rather than silently dropping information.
//
// A conditioned fallback is gated the same way the conditional-branch
// escape carries its predicate: the condition's flag expression is
// prepended as the call's first argument, and any result store blends
// with the destination's previous value via Select, so downstream passes
// see both the predicate and the unpredicated data flow.
func (t *Translator) fallback(ctx *EmissionContext) error {
	blk, instr := ctx.Block, ctx.Instr

	var condVal coreir.Value
	if ctx.inConditionalBody {
		var err error
		condVal, err = instr.Cond.expr(blk, t.Env)
		if err != nil {
			return err
		}
	}

	args := make([]coreir.Value, 0, len(instr.Operands)+1)
	if condVal != nil {
		args = append(args, condVal)
	}
	for i, op := range instr.Operands {
		switch op.Kind {
		case OperandRegister:
			v, err := readRegister(ctx, op.Reg, RegisterBitSize(ParentRegister(op.Reg)), op.Apply)
			if err != nil {
				return err
			}
			args = append(args, v)
		case OperandImmediate:
			args = append(args, readImmediate(blk, op.Imm, 64))
		default:
			return &UnsupportedOperandError{
				Mnemonic: instr.Mnemonic.String(),
				Reason:   "pseudo-instruction fallback cannot pass through operand " + strconv.Itoa(i) + " of this kind",
			}
		}
	}
	fn := t.Env.mod.AsmFunc(instr.Mnemonic.String(), len(args))
	result := blk.GenericCall(fn, args)

	for _, op := range instr.Operands {
		if op.Kind != OperandRegister || (op.Access != AccessWrite && op.Access != AccessReadWrite) {
			continue
		}
		v := widenOrNarrow(blk, result, RegisterBitSize(op.Reg))
		if condVal != nil {
			prev, err := readRegister(ctx, op.Reg, RegisterBitSize(op.Reg), ShiftedOperand{})
			if err != nil {
				return err
			}
			v = blk.Select(condVal, v, prev)
		}
		writeRegister(blk, ctx.Env, op.Reg, v)
		break
	}
	return nil
}
