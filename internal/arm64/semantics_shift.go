package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_shift.go covers LSL/LSR/ASR/ROR/EXTR as standalone mnemonics
// (distinct from the extender/shifter applied to a second operand of
// another instruction, which operand.go already handles inline).
// LSL/LSR/ASR/ROR take a register or immediate shift amount as their third
// operand; EXTR takes Rd, Rn, Rm and an immediate lsb as its fourth.

func init() {
	register(LSL, func(ctx *EmissionContext) error { return emitShift(ctx, (coreir.Block).Shl, true) })
	register(LSR, func(ctx *EmissionContext) error { return emitShift(ctx, (coreir.Block).LShr, false) })
	register(ASR, func(ctx *EmissionContext) error { return emitShift(ctx, (coreir.Block).AShr, false) })
	register(ROR, emitRor)
	register(EXTR, emitExtr)
}

func emitShift(ctx *EmissionContext, op func(coreir.Block, coreir.Value, coreir.Value) coreir.Value, left bool) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	n, err := ctx.operand(1)
	if err != nil {
		return err
	}
	m, err := ctx.operand(2)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	blk := ctx.Block
	x, err := loadOperandValue(ctx, n, width)
	if err != nil {
		return err
	}
	amount, err := shiftAmount(ctx, m, width)
	if err != nil {
		return err
	}
	if ctx.Instr.UpdateFlags {
		storeShiftCarry(ctx, x, amount, width, left)
	}
	writeRegister(blk, ctx.Env, dst.Reg, op(blk, x, amount))
	return nil
}

// storeShiftCarry sets C to the last bit shifted out of x: bit width-a for
// a left shift, bit a-1 for a right shift. An amount of zero shifts
// nothing out and leaves the flag alone.
func storeShiftCarry(ctx *EmissionContext, x, amount coreir.Value, width byte, left bool) {
	blk := ctx.Block
	var bitIdx coreir.Value
	if left {
		bitIdx = blk.Sub(blk.Const(x.Type(), int64(width)), amount)
	} else {
		bitIdx = blk.Sub(amount, blk.Const(x.Type(), 1))
	}
	shifted := blk.Trunc(blk.LShr(x, bitIdx), coreir.I1)
	zeroAmt := blk.ICmpEQ(amount, blk.Const(x.Type(), 0))
	oldC := loadFlag(blk, ctx.Env, flagC)
	storeFlag(blk, ctx.Env, flagC, blk.Select(zeroAmt, oldC, shifted))
}

// emitRor implements ROR Rd, Rn, #amount|Rm. Register amounts are taken
// modulo the operand width, as the RORV form specifies.
func emitRor(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	n, err := ctx.operand(1)
	if err != nil {
		return err
	}
	m, err := ctx.operand(2)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	blk := ctx.Block
	x, err := loadOperandValue(ctx, n, width)
	if err != nil {
		return err
	}
	amount, err := loadOperandValue(ctx, m, width)
	if err != nil {
		return err
	}
	writeRegister(blk, ctx.Env, dst.Reg, rotateRightVar(blk, x, amount))
	return nil
}

// emitExtr implements EXTR Rd, Rn, Rm, #lsb: Rd gets the low `width` bits
// of the 2*width-bit concatenation {Rn:Rm} starting at bit `lsb`.
func emitExtr(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	n, err := ctx.operand(1)
	if err != nil {
		return err
	}
	m, err := ctx.operand(2)
	if err != nil {
		return err
	}
	lsbOp, err := ctx.operand(3)
	if err != nil {
		return err
	}
	if lsbOp.Kind != OperandImmediate {
		return &UnsupportedOperandError{Mnemonic: "extr", Reason: "lsb operand must be an immediate"}
	}
	width := RegisterBitSize(dst.Reg)
	blk := ctx.Block
	hi, err := loadOperandValue(ctx, n, width)
	if err != nil {
		return err
	}
	lo, err := loadOperandValue(ctx, m, width)
	if err != nil {
		return err
	}
	lsb := uint8(lsbOp.Imm)
	if lsb == 0 {
		writeRegister(blk, ctx.Env, dst.Reg, lo)
		return nil
	}
	wide := coreir.IntType(width * 2)
	concat := blk.Or(blk.Shl(blk.ZExt(hi, wide), blk.Const(wide, int64(width))), blk.ZExt(lo, wide))
	shifted := blk.LShr(concat, blk.Const(wide, int64(lsb)))
	writeRegister(blk, ctx.Env, dst.Reg, blk.Trunc(shifted, coreir.IntType(width)))
	return nil
}

// shiftAmount resolves the shift-amount operand, masking to the
// architectural modulo-width rule for register-specified amounts.
func shiftAmount(ctx *EmissionContext, op Operand, width byte) (coreir.Value, error) {
	v, err := loadOperandValue(ctx, op, width)
	if err != nil {
		return nil, err
	}
	if op.Kind == OperandRegister {
		mask := ctx.Block.Const(v.Type(), int64(width)-1)
		v = ctx.Block.And(v, mask)
	}
	return v, nil
}
