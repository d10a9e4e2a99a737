package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_arith.go covers the ADD/SUB family, each operating at the destination register's
// architectural width with the usual two-or-three-operand shapes:
// Rd, Rn, Rm|imm  (ADD/SUB/ADC/SBC and their flag-setting variants)
// Rn, Rm|imm      (CMP/CMN, destination discarded)
// Rd, Rm|imm      (NEG/NGC, Rn implicitly the zero register)

func init() {
	register(ADD, func(ctx *EmissionContext) error { return emitAddSub(ctx, false, false, false) })
	register(ADDS, func(ctx *EmissionContext) error { return emitAddSub(ctx, false, true, false) })
	register(SUB, func(ctx *EmissionContext) error { return emitAddSub(ctx, true, false, false) })
	register(SUBS, func(ctx *EmissionContext) error { return emitAddSub(ctx, true, true, false) })
	register(ADC, func(ctx *EmissionContext) error { return emitAddSub(ctx, false, false, true) })
	register(ADCS, func(ctx *EmissionContext) error { return emitAddSub(ctx, false, true, true) })
	register(SBC, func(ctx *EmissionContext) error { return emitAddSub(ctx, true, false, true) })
	register(SBCS, func(ctx *EmissionContext) error { return emitAddSub(ctx, true, true, true) })

	register(CMP, func(ctx *EmissionContext) error { return emitCompare(ctx, true) })
	register(CMN, func(ctx *EmissionContext) error { return emitCompare(ctx, false) })

	register(NEG, func(ctx *EmissionContext) error { return emitNeg(ctx, false, false) })
	register(NEGS, func(ctx *EmissionContext) error { return emitNeg(ctx, true, false) })
	register(NGC, func(ctx *EmissionContext) error { return emitNeg(ctx, false, true) })
	register(NGCS, func(ctx *EmissionContext) error { return emitNeg(ctx, true, true) })
}

// emitAddSub implements Rd = Rn (+/-) Rm[, with carry], optionally setting
// flags. Operand order is always [Rd, Rn, Rm|imm].
func emitAddSub(ctx *EmissionContext, isSub, setFlags, withCarry bool) error {
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

	var carryIn coreir.Value
	if withCarry {
		carryIn = loadFlag(blk, ctx.Env, flagC)
	}

	var result coreir.Value
	if isSub {
		// SUB/SBC as a + ~b + c, with c = 1 for plain subtraction.
		c := carryIn
		if c == nil {
			c = blk.Const(coreir.I1, 1)
		}
		result = blk.Add(blk.Add(x, blk.Not(y)), blk.ZExt(c, x.Type()))
	} else {
		result = blk.Add(x, y)
		if carryIn != nil {
			result = blk.Add(result, blk.ZExt(carryIn, result.Type()))
		}
	}

	if setFlags {
		var fu flagUpdate
		if isSub {
			fu = subFlags(blk, x, y, result, carryInOrNil(withCarry, carryIn))
		} else {
			fu = addFlags(blk, x, y, result, carryIn)
		}
		fu.store(blk, ctx.Env)
	}

	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

func carryInOrNil(withCarry bool, c coreir.Value) coreir.Value {
	if withCarry {
		return c
	}
	return nil
}

// emitCompare implements CMP/CMN: a SUBS/ADDS whose result is discarded.
// Flags are computed at the first operand's width, so a W-register compare
// observes 32-bit carry/overflow.
func emitCompare(ctx *EmissionContext, isSub bool) error {
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
	var result coreir.Value
	var fu flagUpdate
	if isSub {
		result = blk.Sub(x, y)
		fu = subFlags(blk, x, y, result, nil)
	} else {
		result = blk.Add(x, y)
		fu = addFlags(blk, x, y, result, nil)
	}
	fu.store(blk, ctx.Env)
	return nil
}

// emitNeg implements NEG/NEGS/NGC/NGCS: Rd = 0 - Rm[, with borrow].
func emitNeg(ctx *EmissionContext, setFlags, withBorrow bool) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	m, err := ctx.operand(1)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	blk := ctx.Block
	y, err := loadOperandValue(ctx, m, width)
	if err != nil {
		return err
	}
	zero := blk.Const(coreir.IntType(width), 0)

	var carryIn coreir.Value
	if withBorrow {
		carryIn = loadFlag(blk, ctx.Env, flagC)
	} else {
		carryIn = blk.Const(coreir.I1, 1)
	}
	result := blk.Add(blk.Not(y), blk.ZExt(carryIn, y.Type()))

	if setFlags {
		fu := subFlags(blk, zero, y, result, carryIn)
		fu.store(blk, ctx.Env)
	}
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}
