package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_bitfield.go covers the standalone sign/zero-extend mnemonics
// (SXTB/SXTH/SXTW/UXTB/UXTH), as distinct from the inline extender applied
// to a second operand elsewhere (operand.go's applyExtender). Rd, Rn.

func init() {
	register(SXTB, func(ctx *EmissionContext) error { return emitExtend(ctx, 8, true) })
	register(SXTH, func(ctx *EmissionContext) error { return emitExtend(ctx, 16, true) })
	register(SXTW, func(ctx *EmissionContext) error { return emitExtend(ctx, 32, true) })
	register(UXTB, func(ctx *EmissionContext) error { return emitExtend(ctx, 8, false) })
	register(UXTH, func(ctx *EmissionContext) error { return emitExtend(ctx, 16, false) })
}

func emitExtend(ctx *EmissionContext, fromBits byte, signed bool) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	src, err := ctx.operand(1)
	if err != nil {
		return err
	}
	blk := ctx.Block
	width := RegisterBitSize(dst.Reg)
	v, err := loadOperandValue(ctx, src, RegisterBitSize(ParentRegister(src.Reg)))
	if err != nil {
		return err
	}
	narrow := blk.Trunc(v, coreir.IntType(fromBits))
	var wide coreir.Value
	if signed {
		wide = blk.SExt(narrow, coreir.IntType(width))
	} else {
		wide = blk.ZExt(narrow, coreir.IntType(width))
	}
	writeRegister(blk, ctx.Env, dst.Reg, wide)
	return nil
}
