package arm64

// semantics_move.go covers MOV/MOVZ/MVN. MOV is lifted as a direct copy
// of its source into the destination (the same result as the ORR-with-
// zero-register form the instruction set encodes it as); MOVZ and MVN
// likewise get direct treatment.

func init() {
	register(MOV, emitMov)
	register(MOVZ, emitMovz)
	register(MVN, emitMvn)
}

// emitMov implements Rd = Rn|imm (register-register or wide-immediate
// forms). MOV is accepted directly rather than requiring callers to
// pre-expand the ORR alias.
func emitMov(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	src, err := ctx.operand(1)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	v, err := loadOperandValue(ctx, src, width)
	if err != nil {
		return err
	}
	writeRegister(ctx.Block, ctx.Env, dst.Reg, v)
	return nil
}

// emitMovz implements Rd = imm, zeroing the rest of the register. The
// shift-by-16-granularity encoding is assumed already folded into the
// Immediate operand by the disassembler.
func emitMovz(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	src, err := ctx.operand(1)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	v, err := loadOperandValue(ctx, src, width)
	if err != nil {
		return err
	}
	writeRegister(ctx.Block, ctx.Env, dst.Reg, v)
	return nil
}

// emitMvn implements Rd = ~Rm.
func emitMvn(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	src, err := ctx.operand(1)
	if err != nil {
		return err
	}
	width := RegisterBitSize(dst.Reg)
	v, err := loadOperandValue(ctx, src, width)
	if err != nil {
		return err
	}
	writeRegister(ctx.Block, ctx.Env, dst.Reg, ctx.Block.Not(v))
	return nil
}
