package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_div.go covers UDIV/SDIV. AArch64 integer division never traps;
// dividing by zero architecturally yields zero. A raw IR udiv/sdiv has no
// such guarantee (it is undefined behavior in the backing LLVM IR), so the
// zero case is modeled explicitly as a Select over the division rather than
// relied upon as a backend quirk.

func init() {
	register(UDIV, func(ctx *EmissionContext) error { return emitDiv(ctx, false) })
	register(SDIV, func(ctx *EmissionContext) error { return emitDiv(ctx, true) })
}

func emitDiv(ctx *EmissionContext, signed bool) error {
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
	var divided coreir.Value
	if signed {
		divided = blk.SDiv(x, y)
	} else {
		divided = blk.UDiv(x, y)
	}
	isZero := blk.ICmpEQ(y, blk.Const(y.Type(), 0))
	result := blk.Select(isZero, blk.Const(y.Type(), 0), divided)
	writeRegister(blk, ctx.Env, dst.Reg, result)
	return nil
}
