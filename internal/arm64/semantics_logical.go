package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_logical.go covers the AND/ORR/EOR family and TST. All flag-setting variants clear C and V
// unconditionally (logicalFlags); NZCV are never meaningfully defined by
// the architecture for these beyond N/Z, so this core matches that.

func init() {
	register(AND, func(ctx *EmissionContext) error { return emitLogical(ctx, blkAnd, false, false) })
	register(ANDS, func(ctx *EmissionContext) error { return emitLogical(ctx, blkAnd, true, false) })
	register(ORR, func(ctx *EmissionContext) error { return emitLogical(ctx, blkOr, false, false) })
	register(ORN, func(ctx *EmissionContext) error { return emitLogical(ctx, blkOr, false, true) })
	register(EOR, func(ctx *EmissionContext) error { return emitLogical(ctx, blkXor, false, false) })
	register(EON, func(ctx *EmissionContext) error { return emitLogical(ctx, blkXor, false, true) })
	register(TST, emitTst)
}

func blkAnd(blk coreir.Block, x, y coreir.Value) coreir.Value { return blk.And(x, y) }
func blkOr(blk coreir.Block, x, y coreir.Value) coreir.Value  { return blk.Or(x, y) }
func blkXor(blk coreir.Block, x, y coreir.Value) coreir.Value { return blk.Xor(x, y) }

// emitLogical implements Rd = Rn OP (~)Rm|imm, optionally setting flags.
// negateM selects the "NOT second operand first" variants (ORN/EON).
func emitLogical(ctx *EmissionContext, op func(coreir.Block, coreir.Value, coreir.Value) coreir.Value, setFlags, negateM bool) error {
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
	y, err := loadOperandValue(ctx, m, width)
	if err != nil {
		return err
	}
	if negateM {
		y = blk.Not(y)
	}
	result := op(blk, x, y)
	if setFlags {
		logicalFlags(blk, result).store(blk, ctx.Env)
	}
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

// emitTst implements TST: ANDS whose result is discarded.
func emitTst(ctx *EmissionContext) error {
	n, err := ctx.operand(0)
	if err != nil {
		return err
	}
	m, err := ctx.operand(1)
	if err != nil {
		return err
	}
	width := RegisterBitSize(n.Reg)
	blk := ctx.Block
	x, err := loadOperandValue(ctx, n, width)
	if err != nil {
		return err
	}
	y, err := loadOperandValue(ctx, m, width)
	if err != nil {
		return err
	}
	result := blk.And(x, y)
	logicalFlags(blk, result).store(blk, ctx.Env)
	return nil
}
