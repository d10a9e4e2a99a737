package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// operand.go turns a decoded instruction's Operand values into IR values
// (for reads) or knows where to store a result (for writes), applying
// extenders/shifters and addressing-mode computation along the way. The
// extend/shift application helpers follow the usual shape of such a
// lowering pass, generalized from "pick a machine operand encoding" to
// "build the equivalent arithmetic in IR".

// readRegister loads a register operand's value, applying any configured
// extender/shifter. Reading PC is intercepted: it never has a backing
// global, and yields the constant current_address+current_size (the
// AArch64 convention that PC reads as one instruction past the current one,
// e.g. for an LDR-literal's implicit PC-relative base).
func readRegister(ctx *EmissionContext, reg RegID, width byte, apply ShiftedOperand) (coreir.Value, error) {
	blk, env := ctx.Block, ctx.Env
	g := env.GetRegister(reg)
	var v coreir.Value
	switch {
	case reg == pc:
		v = ctx.nextPC()
	case g == nil && isZeroRegister(reg):
		v = blk.Const(env.RegisterType(reg), 0)
	case g == nil:
		return nil, &UnsupportedOperandError{Reason: "register " + reg.String() + " has no backing storage"}
	default:
		// Load the full parent cell, then truncate down for a sub-register.
		v = blk.Load(g, env.RegisterType(ParentRegister(reg)))
		if RegisterBitSize(reg) < RegisterBitSize(ParentRegister(reg)) {
			v = blk.Trunc(v, env.RegisterType(reg))
		}
	}

	v, err := applyExtender(blk, v, apply.Extend, env.RegisterBitSize(reg))
	if err != nil {
		return nil, err
	}
	v, err = applyShifter(blk, v, apply.Shift, apply.Amount)
	if err != nil {
		return nil, err
	}
	return widenOrNarrow(blk, v, width), nil
}

// applyExtender sign/zero-extends a sub-register-width value up to 32 or
// 64 bits per the extend code.
func applyExtender(blk coreir.Block, v coreir.Value, ext Extender, srcWidth byte) (coreir.Value, error) {
	switch ext {
	case ExtendNone:
		return v, nil
	case ExtUXTB:
		return blk.ZExt(blk.Trunc(v, coreir.IntType(8)), v.Type()), nil
	case ExtUXTH:
		return blk.ZExt(blk.Trunc(v, coreir.IntType(16)), v.Type()), nil
	case ExtUXTW:
		return blk.ZExt(blk.Trunc(v, coreir.IntType(32)), coreir.I64), nil
	case ExtUXTX:
		return v, nil
	case ExtSXTB:
		return blk.SExt(blk.Trunc(v, coreir.IntType(8)), v.Type()), nil
	case ExtSXTH:
		return blk.SExt(blk.Trunc(v, coreir.IntType(16)), v.Type()), nil
	case ExtSXTW:
		return blk.SExt(blk.Trunc(v, coreir.IntType(32)), coreir.I64), nil
	case ExtSXTX:
		return v, nil
	default:
		return nil, &UnsupportedOperandError{Reason: "unknown extender"}
	}
}

// applyShifter applies a constant shift amount to v. MSL is recognized but
// rejected: every other shifter is implemented directly against the IR
// shift primitives.
func applyShifter(blk coreir.Block, v coreir.Value, sh Shifter, amount uint8) (coreir.Value, error) {
	switch sh {
	case ShiftNone:
		return v, nil
	case ShiftLSL:
		return blk.Shl(v, blk.Const(v.Type(), int64(amount))), nil
	case ShiftLSR:
		return blk.LShr(v, blk.Const(v.Type(), int64(amount))), nil
	case ShiftASR:
		return blk.AShr(v, blk.Const(v.Type(), int64(amount))), nil
	case ShiftROR:
		return rotateRight(blk, v, amount), nil
	case ShiftMSL:
		return nil, &UnsupportedOperandError{Reason: "MSL shifter has no defined IR translation"}
	default:
		return nil, &UnsupportedOperandError{Reason: "unknown shifter"}
	}
}

// rotateRight implements ROR #amount as (v >> amount) | (v << (width-amount)).
func rotateRight(blk coreir.Block, v coreir.Value, amount uint8) coreir.Value {
	width := v.Type().Bits()
	if amount == 0 {
		return v
	}
	right := blk.LShr(v, blk.Const(v.Type(), int64(amount)))
	left := blk.Shl(v, blk.Const(v.Type(), int64(width)-int64(amount)))
	return blk.Or(right, left)
}

// rotateRightVar is rotateRight for a run-time amount (the RORV shape).
// Both shift amounts are masked modulo the width so that an amount of zero
// never produces a shift by the full width.
func rotateRightVar(blk coreir.Block, v, amount coreir.Value) coreir.Value {
	t := v.Type()
	width := int64(t.Bits())
	mask := blk.Const(t, width-1)
	amt := blk.And(amount, mask)
	inv := blk.And(blk.Sub(blk.Const(t, width), amt), mask)
	return blk.Or(blk.LShr(v, amt), blk.Shl(v, inv))
}

// widenOrNarrow adjusts v to exactly width bits, used when an extended
// operand must still be truncated down to the destination register's
// width (e.g. a 32-bit add whose operand arrived already widened to 64).
func widenOrNarrow(blk coreir.Block, v coreir.Value, width byte) coreir.Value {
	cur := v.Type().Bits()
	switch {
	case cur == width:
		return v
	case cur > width:
		return blk.Trunc(v, coreir.IntType(width))
	default:
		return blk.ZExt(v, coreir.IntType(width))
	}
}

// readImmediate returns a constant IR value for an immediate operand.
func readImmediate(blk coreir.Block, imm int64, width byte) coreir.Value {
	return blk.Const(coreir.IntType(width), imm)
}

// writeRegister stores v into reg's backing global. Writing to the zero
// register is legal and discarded. Writing to a 32-bit W-alias
// zero-extends into the parent X register.
func writeRegister(blk coreir.Block, env *RegEnv, reg RegID, v coreir.Value) {
	if isZeroRegister(reg) {
		return
	}
	g := env.GetRegister(reg)
	if g == nil {
		// PC has no backing storage; writes to it are handled by the
		// control-flow semantics functions directly via the IR escapes,
		// never through writeRegister.
		return
	}
	parentWidth := RegisterBitSize(ParentRegister(reg))
	if RegisterBitSize(reg) < parentWidth {
		v = blk.ZExt(v, coreir.IntType(parentWidth))
	}
	blk.Store(v, g)
}

// effectiveAddress computes a Memory operand's address: base, then
// displacement, then scaled/extended index, applied in that order.
// Post-indexed addressing is the one exception: the access itself happens
// at the unmodified base, and the displacement is folded in only
// afterward by applyWriteback.
func effectiveAddress(ctx *EmissionContext, mem Memory) (coreir.Value, error) {
	blk := ctx.Block
	base, err := readRegister(ctx, mem.Base, RegisterBitSize(ParentRegister(mem.Base)), ShiftedOperand{})
	if err != nil {
		return nil, err
	}
	addr := base
	if mem.Disp != 0 && !mem.PostIndexed {
		addr = blk.Add(addr, blk.Const(addr.Type(), mem.Disp))
	}
	if mem.HasIndex {
		idx, err := readRegister(ctx, mem.Index, addr.Type().Bits(), mem.IndexApply)
		if err != nil {
			return nil, err
		}
		addr = blk.Add(addr, idx)
	}
	return addr, nil
}

// writebackTarget returns the displacement that should be folded into the
// base register after the access, or false if mem does not request
// writeback. Post-indexed forms always write back; pre-indexed forms only
// when the decoded instruction's writeback bit is set (the bit is what
// distinguishes pre-index from a plain offset form).
func writebackTarget(instr *DecodedInstruction, mem Memory) (int64, bool) {
	if mem.PostIndexed || (mem.PreIndexed && instr.Writeback) {
		return mem.Disp, true
	}
	return 0, false
}

// applyWriteback stores the updated base-plus-displacement address back
// into the base register: pre-indexed forms use the already-offset
// address that the load/store itself used; post-indexed forms use the
// unoffset base for the access but still write back base+disp afterward.
func applyWriteback(ctx *EmissionContext, mem Memory) error {
	disp, ok := writebackTarget(ctx.Instr, mem)
	if !ok {
		return nil
	}
	blk := ctx.Block
	base, err := readRegister(ctx, mem.Base, RegisterBitSize(ParentRegister(mem.Base)), ShiftedOperand{})
	if err != nil {
		return err
	}
	updated := blk.Add(base, blk.Const(base.Type(), disp))
	writeRegister(blk, ctx.Env, mem.Base, updated)
	return nil
}

// loadOperandValue resolves any read-role Operand (register, immediate, or
// memory) to an IR value of the requested width.
func loadOperandValue(ctx *EmissionContext, op Operand, width byte) (coreir.Value, error) {
	blk := ctx.Block
	switch op.Kind {
	case OperandRegister, OperandSystemRegister:
		// System registers load exactly like general registers; ids without
		// a backing global fail inside readRegister with a typed error.
		return readRegister(ctx, op.Reg, width, op.Apply)
	case OperandImmediate:
		return readImmediate(blk, op.Imm, width), nil
	case OperandMemory:
		addr, err := effectiveAddress(ctx, op.Mem)
		if err != nil {
			return nil, err
		}
		ptr := blk.IntToPtr(addr, coreir.IntType(width))
		return blk.Load(ptr, coreir.IntType(width)), nil
	default:
		return nil, &UnsupportedOperandError{Reason: op.Reason}
	}
}

// storeOperandValue stores v to a memory operand's effective address,
// used by the STR family of semantics functions.
func storeOperandValue(ctx *EmissionContext, mem Memory, v coreir.Value) error {
	blk := ctx.Block
	addr, err := effectiveAddress(ctx, mem)
	if err != nil {
		return err
	}
	ptr := blk.IntToPtr(addr, v.Type())
	blk.Store(v, ptr)
	return nil
}
