package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_condsel.go covers the conditional-select and
// conditional-compare families: CSEL/CSINC/CSINV/CSNEG and their aliases
// CSET/CSETM/CINC/CINV/CNEG, plus CCMP/CCMN. These instructions always
// execute; the condition selects between two already-computed values, or
// between "do the compare" and "synthesize flags directly". Each handler
// gates itself via the condition's flag expression, never through any
// driver-level wrapping.

func init() {
	register(CSEL, func(ctx *EmissionContext) error {
		return emitCsel(ctx, func(b coreir.Block, x coreir.Value) coreir.Value { return x })
	})
	register(CSINC, func(ctx *EmissionContext) error {
		return emitCsel(ctx, func(b coreir.Block, x coreir.Value) coreir.Value { return b.Add(x, b.Const(x.Type(), 1)) })
	})
	register(CSINV, func(ctx *EmissionContext) error {
		return emitCsel(ctx, func(b coreir.Block, x coreir.Value) coreir.Value { return b.Not(x) })
	})
	register(CSNEG, func(ctx *EmissionContext) error {
		return emitCsel(ctx, func(b coreir.Block, x coreir.Value) coreir.Value { return b.Neg(x) })
	})

	register(CSET, emitCset)
	register(CSETM, emitCsetm)
	register(CINC, func(ctx *EmissionContext) error { return emitCincLike(ctx, 1) })
	register(CINV, func(ctx *EmissionContext) error { return emitCincLike(ctx, -1) })
	register(CNEG, func(ctx *EmissionContext) error { return emitCincLike(ctx, -2) })

	register(CCMP, func(ctx *EmissionContext) error { return emitCcmp(ctx, true) })
	register(CCMN, func(ctx *EmissionContext) error { return emitCcmp(ctx, false) })
}

// emitCsel implements Rd, Rn, Rm, cond := cond ? Rn : elseFn(Rm). The
// "else" transform captures the CSINC/CSINV/CSNEG variants' extra op on Rm
// when the condition is false.
func emitCsel(ctx *EmissionContext, elseFn func(coreir.Block, coreir.Value) coreir.Value) error {
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
	condVal, err := ctx.Instr.Cond.expr(blk, ctx.Env)
	if err != nil {
		return err
	}
	result := blk.Select(condVal, x, elseFn(blk, y))
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

// emitCset implements CSET Rd, cond: Rd = cond ? 1 : 0.
func emitCset(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	blk := ctx.Block
	condVal, err := ctx.Instr.Cond.expr(blk, ctx.Env)
	if err != nil {
		return err
	}
	result := blk.Select(condVal, blk.Const(coreir.IntType(width), 1), blk.Const(coreir.IntType(width), 0))
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

// emitCsetm implements CSETM Rd, cond: Rd = cond ? -1 : 0.
func emitCsetm(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	blk := ctx.Block
	condVal, err := ctx.Instr.Cond.expr(blk, ctx.Env)
	if err != nil {
		return err
	}
	result := blk.Select(condVal, blk.Const(coreir.IntType(width), -1), blk.Const(coreir.IntType(width), 0))
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

// emitCincLike implements the two-operand CINC/CINV/CNEG aliases: Rd, Rn,
// cond := cond ? Rn : transform(Rn), where mode picks the transform
// (1 = +1, -1 = bitwise NOT, -2 = arithmetic negate).
func emitCincLike(ctx *EmissionContext, mode int) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	n, err := ctx.operand(1)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	blk := ctx.Block
	x, err := loadOperandValue(ctx, n, width)
	if err != nil {
		return err
	}
	condVal, err := ctx.Instr.Cond.expr(blk, ctx.Env)
	if err != nil {
		return err
	}
	var transformed coreir.Value
	switch mode {
	case 1:
		transformed = blk.Add(x, blk.Const(x.Type(), 1))
	case -1:
		transformed = blk.Not(x)
	default:
		transformed = blk.Neg(x)
	}
	result := blk.Select(condVal, x, transformed)
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

// emitCcmp implements CCMP/CCMN: if the instruction's condition holds, the
// NZCV flags are set from an ordinary compare of the two operands;
// otherwise they are set directly from the four-bit immediate flag
// operand encoded as operand 2.
func emitCcmp(ctx *EmissionContext, isSub bool) error {
	n, err := ctx.operand(0)
	if err != nil {
		return err
	}
	m, err := ctx.operand(1)
	if err != nil {
		return err
	}
	nzcvOp, err := ctx.operand(2)
	if err != nil {
		return err
	}
	if nzcvOp.Kind != OperandImmediate {
		return &UnsupportedOperandError{Mnemonic: ctx.Instr.Mnemonic.String(), Reason: "nzcv operand must be an immediate"}
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
	condVal, err := ctx.Instr.Cond.expr(blk, ctx.Env)
	if err != nil {
		return err
	}

	var taken flagUpdate
	if isSub {
		result := blk.Sub(x, y)
		taken = subFlags(blk, x, y, result, nil)
	} else {
		result := blk.Add(x, y)
		taken = addFlags(blk, x, y, result, nil)
	}

	nzcv := nzcvOp.Imm
	bit := func(shift uint) coreir.Value {
		if nzcv&(1<<shift) != 0 {
			return blk.Const(coreir.I1, 1)
		}
		return blk.Const(coreir.I1, 0)
	}
	storeFlag(blk, ctx.Env, flagN, blk.Select(condVal, taken.n, bit(3)))
	storeFlag(blk, ctx.Env, flagZ, blk.Select(condVal, taken.z, bit(2)))
	storeFlag(blk, ctx.Env, flagC, blk.Select(condVal, taken.c, bit(1)))
	storeFlag(blk, ctx.Env, flagV, blk.Select(condVal, taken.v, bit(0)))
	return nil
}
