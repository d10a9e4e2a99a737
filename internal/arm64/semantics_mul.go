package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_mul.go covers the multiply family: plain and
// multiply-accumulate forms, at both the native register width (MUL/MADD/
// MSUB/MNEG) and the widening long/high forms that produce a 2x-width
// result from two same-width operands (UMULL/SMULL/.../UMULH/SMULH).

func init() {
	register(MUL, func(ctx *EmissionContext) error { return emitMulAdd(ctx, false, false) })
	register(MADD, func(ctx *EmissionContext) error { return emitMulAdd(ctx, false, false) })
	register(MSUB, func(ctx *EmissionContext) error { return emitMulAdd(ctx, true, false) })
	register(MNEG, func(ctx *EmissionContext) error { return emitMulAdd(ctx, true, true) })

	register(UMULL, func(ctx *EmissionContext) error { return emitMulLong(ctx, false, 0) })
	register(SMULL, func(ctx *EmissionContext) error { return emitMulLong(ctx, true, 0) })
	register(UMADDL, func(ctx *EmissionContext) error { return emitMulLong(ctx, false, 1) })
	register(SMADDL, func(ctx *EmissionContext) error { return emitMulLong(ctx, true, 1) })
	register(UMSUBL, func(ctx *EmissionContext) error { return emitMulLong(ctx, false, -1) })
	register(SMSUBL, func(ctx *EmissionContext) error { return emitMulLong(ctx, true, -1) })
	register(UMNEGL, func(ctx *EmissionContext) error { return emitMulLong(ctx, false, -2) })
	register(SMNEGL, func(ctx *EmissionContext) error { return emitMulLong(ctx, true, -2) })

	register(UMULH, func(ctx *EmissionContext) error { return emitMulHigh(ctx, false) })
	register(SMULH, func(ctx *EmissionContext) error { return emitMulHigh(ctx, true) })
}

// emitMulAdd implements Rd = [+-](Rn*Rm) [+Ra], with the MNEG/MUL forms
// reading an implicit zero accumulator (present as operand 3 when the
// disassembler supplies one, absent for the 3-operand aliases).
func emitMulAdd(ctx *EmissionContext, subtract, negateOnly bool) error {
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
	product := blk.Mul(x, y)

	var result coreir.Value
	switch {
	case negateOnly:
		result = blk.Neg(product)
	case len(ctx.Instr.Operands) > 3:
		a, err := ctx.operand(3)
		if err != nil {
			return err
		}
		acc, err := loadOperandValue(ctx, a, width)
		if err != nil {
			return err
		}
		if subtract {
			result = blk.Sub(acc, product)
		} else {
			result = blk.Add(acc, product)
		}
	default:
		result = product
	}
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

// emitMulLong implements the widening long forms: Rd (64-bit) = Wn * Wm
// (+/- Ra), with operands sign- or zero-extended to 64 bits before the
// multiply so the full double-width product is preserved. mode selects
// 0 = plain, 1 = multiply-add, -1 = multiply-subtract, -2 = multiply-negate.
func emitMulLong(ctx *EmissionContext, signed bool, mode int) error {
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
	blk := ctx.Block
	x32, err := loadOperandValue(ctx, n, 32)
	if err != nil {
		return err
	}
	y32, err := loadOperandValue(ctx, m, 32)
	if err != nil {
		return err
	}
	var x, y coreir.Value
	if signed {
		x, y = blk.SExt(x32, coreir.I64), blk.SExt(y32, coreir.I64)
	} else {
		x, y = blk.ZExt(x32, coreir.I64), blk.ZExt(y32, coreir.I64)
	}
	product := blk.Mul(x, y)

	var result coreir.Value
	switch mode {
	case -2:
		result = blk.Neg(product)
	case 1, -1:
		a, err := ctx.operand(3)
		if err != nil {
			return err
		}
		acc, err := loadOperandValue(ctx, a, 64)
		if err != nil {
			return err
		}
		if mode == -1 {
			result = blk.Sub(acc, product)
		} else {
			result = blk.Add(acc, product)
		}
	default:
		result = product
	}
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}

// emitMulHigh implements UMULH/SMULH: Rd = high 64 bits of the full
// 128-bit product of two 64-bit operands, computed by widening to 128
// bits via two 64-bit halves combined arithmetically (no native 128-bit
// integer type is assumed to exist in the IR, so the product is built
// from cross terms rather than a single wide multiply).
func emitMulHigh(ctx *EmissionContext, signed bool) error {
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
	blk := ctx.Block
	x, err := loadOperandValue(ctx, n, 64)
	if err != nil {
		return err
	}
	y, err := loadOperandValue(ctx, m, 64)
	if err != nil {
		return err
	}

	mask32 := blk.Const(coreir.I64, 0xFFFFFFFF)
	xl := blk.And(x, mask32)
	xh := blk.LShr(x, blk.Const(coreir.I64, 32))
	yl := blk.And(y, mask32)
	yh := blk.LShr(y, blk.Const(coreir.I64, 32))

	lowLow := blk.Mul(xl, yl)
	lowHigh := blk.Mul(xl, yh)
	highLow := blk.Mul(xh, yl)
	highHigh := blk.Mul(xh, yh)

	mid := blk.Add(blk.LShr(lowLow, blk.Const(coreir.I64, 32)), blk.And(lowHigh, mask32))
	mid = blk.Add(mid, blk.And(highLow, mask32))
	carry := blk.LShr(mid, blk.Const(coreir.I64, 32))

	upperMid := blk.Add(blk.LShr(lowHigh, blk.Const(coreir.I64, 32)), blk.LShr(highLow, blk.Const(coreir.I64, 32)))
	result := blk.Add(highHigh, upperMid)
	result = blk.Add(result, carry)

	if signed {
		// Correct the unsigned cross-product for sign: subtract y if x<0,
		// subtract x if y<0 (standard signed-high-multiply-from-unsigned
		// correction).
		zero := blk.Const(coreir.I64, 0)
		xNeg := blk.ICmpSLT(x, zero)
		yNeg := blk.ICmpSLT(y, zero)
		result = blk.Sub(result, blk.Select(xNeg, y, zero))
		result = blk.Sub(result, blk.Select(yNeg, x, zero))
	}

	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}
