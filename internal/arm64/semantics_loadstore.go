package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_loadstore.go covers the STR/LDR family. Every variant shares the same
// shape: resolve the memory operand's effective address, perform the
// access at the access-width (which may be narrower than the destination
// register, requiring zero/sign extension on load), then apply writeback
// if the decoded instruction requested pre/post-indexing.

func init() {
	register(STR, func(ctx *EmissionContext) error { return emitStore(ctx, 0) })
	register(STRB, func(ctx *EmissionContext) error { return emitStore(ctx, 8) })
	register(STRH, func(ctx *EmissionContext) error { return emitStore(ctx, 16) })

	register(LDR, func(ctx *EmissionContext) error { return emitLoad(ctx, 0, false) })
	register(LDUR, func(ctx *EmissionContext) error { return emitLoad(ctx, 0, false) })
	register(LDRB, func(ctx *EmissionContext) error { return emitLoad(ctx, 8, false) })
	register(LDRH, func(ctx *EmissionContext) error { return emitLoad(ctx, 16, false) })
	register(LDRSB, func(ctx *EmissionContext) error { return emitLoad(ctx, 8, true) })
	register(LDRSH, func(ctx *EmissionContext) error { return emitLoad(ctx, 16, true) })
	register(LDRSW, func(ctx *EmissionContext) error { return emitLoad(ctx, 32, true) })

	register(STP, emitStp)
	register(LDP, func(ctx *EmissionContext) error { return emitLdp(ctx, false) })
	register(LDPSW, func(ctx *EmissionContext) error { return emitLdp(ctx, true) })
}

// emitStore implements STR/STRB/STRH: store Rt's low accessBits (or full
// register width when accessBits == 0) to memory, then apply writeback.
func emitStore(ctx *EmissionContext, accessBits byte) error {
	src, err := ctx.operand(0)
	if err != nil {
		return err
	}
	addrOp, err := ctx.operand(1)
	if err != nil {
		return err
	}
	if addrOp.Kind != OperandMemory {
		return &MalformedOperandCountError{Mnemonic: ctx.Instr.Mnemonic.String(), Want: "memory operand", Got: int(addrOp.Kind)}
	}
	blk := ctx.Block
	width := RegisterBitSize(src.Reg)
	if accessBits == 0 {
		accessBits = width
	}
	v, err := loadOperandValue(ctx, src, width)
	if err != nil {
		return err
	}
	if accessBits < width {
		v = blk.Trunc(v, coreir.IntType(accessBits))
	}
	if err := storeOperandValue(ctx, addrOp.Mem, v); err != nil {
		return err
	}
	return applyWriteback(ctx, addrOp.Mem)
}

// emitLoad implements LDR/LDRB/LDRH/LDRSB/LDRSH/LDRSW: load accessBits (or
// full register width when accessBits == 0) from memory, extending up to
// the destination register's width, then apply writeback.
func emitLoad(ctx *EmissionContext, accessBits byte, signExtend bool) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	addrOp, err := ctx.operand(1)
	if err != nil {
		return err
	}
	if addrOp.Kind != OperandMemory {
		return &MalformedOperandCountError{Mnemonic: ctx.Instr.Mnemonic.String(), Want: "memory operand", Got: int(addrOp.Kind)}
	}
	blk := ctx.Block
	destWidth := RegisterBitSize(dst.Reg)
	if accessBits == 0 {
		accessBits = destWidth
	}
	addr, err := effectiveAddress(ctx, addrOp.Mem)
	if err != nil {
		return err
	}
	ptr := blk.IntToPtr(addr, coreir.IntType(accessBits))
	v := blk.Load(ptr, coreir.IntType(accessBits))
	if accessBits < destWidth {
		if signExtend {
			v = blk.SExt(v, coreir.IntType(destWidth))
		} else {
			v = blk.ZExt(v, coreir.IntType(destWidth))
		}
	}
	writeRegister(blk, ctx.Env, dst.Reg, v)
	return applyWriteback(ctx, addrOp.Mem)
}

// emitStp implements STP: store a pair of registers to consecutive
// memory slots at [addr, addr+regwidth/8), then apply writeback once.
func emitStp(ctx *EmissionContext) error {
	r1, err := ctx.operand(0)
	if err != nil {
		return err
	}
	r2, err := ctx.operand(1)
	if err != nil {
		return err
	}
	addrOp, err := ctx.operand(2)
	if err != nil {
		return err
	}
	if addrOp.Kind != OperandMemory {
		return &MalformedOperandCountError{Mnemonic: "stp", Want: "memory operand", Got: int(addrOp.Kind)}
	}
	blk := ctx.Block
	width := RegisterBitSize(r1.Reg)
	v1, err := loadOperandValue(ctx, r1, width)
	if err != nil {
		return err
	}
	v2, err := loadOperandValue(ctx, r2, width)
	if err != nil {
		return err
	}
	addr, err := effectiveAddress(ctx, addrOp.Mem)
	if err != nil {
		return err
	}
	stride := int64(width) / 8
	ptr1 := blk.IntToPtr(addr, coreir.IntType(width))
	blk.Store(v1, ptr1)
	addr2 := blk.Add(addr, blk.Const(addr.Type(), stride))
	ptr2 := blk.IntToPtr(addr2, coreir.IntType(width))
	blk.Store(v2, ptr2)
	return applyWriteback(ctx, addrOp.Mem)
}

// emitLdp implements LDP/LDPSW: load a pair of consecutive memory slots
// into two destination registers, then apply writeback once.
func emitLdp(ctx *EmissionContext, signExtend bool) error {
	r1, err := ctx.operand(0)
	if err != nil {
		return err
	}
	r2, err := ctx.operand(1)
	if err != nil {
		return err
	}
	addrOp, err := ctx.operand(2)
	if err != nil {
		return err
	}
	if addrOp.Kind != OperandMemory {
		return &MalformedOperandCountError{Mnemonic: "ldp", Want: "memory operand", Got: int(addrOp.Kind)}
	}
	blk := ctx.Block
	destWidth := RegisterBitSize(r1.Reg)
	accessWidth := destWidth
	if signExtend {
		accessWidth = 32
	}
	addr, err := effectiveAddress(ctx, addrOp.Mem)
	if err != nil {
		return err
	}
	stride := int64(accessWidth) / 8

	ptr1 := blk.IntToPtr(addr, coreir.IntType(accessWidth))
	v1 := blk.Load(ptr1, coreir.IntType(accessWidth))
	addr2 := blk.Add(addr, blk.Const(addr.Type(), stride))
	ptr2 := blk.IntToPtr(addr2, coreir.IntType(accessWidth))
	v2 := blk.Load(ptr2, coreir.IntType(accessWidth))

	if signExtend {
		v1 = blk.SExt(v1, coreir.IntType(destWidth))
		v2 = blk.SExt(v2, coreir.IntType(destWidth))
	}
	writeRegister(blk, ctx.Env, r1.Reg, v1)
	writeRegister(blk, ctx.Env, r2.Reg, v2)
	return applyWriteback(ctx, addrOp.Mem)
}
