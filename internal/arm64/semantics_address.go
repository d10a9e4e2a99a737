package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_address.go covers ADR/ADRP. Both trust the disassembler's
// resolved immediate: the operand already carries the fully computed
// target address, so no PC-relative arithmetic is reconstructed here.
// The one exception is an ADRP operand that cannot be a computed page
// address (it is not page-aligned, so the decoder must have left the raw
// page count unfolded); only then is (pc>>12<<12)+(imm<<12) rebuilt
// explicitly.

func init() {
	register(ADR, emitAdr)
	register(ADRP, emitAdrp)
}

func emitAdr(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	src, err := ctx.operand(1)
	if err != nil {
		return err
	}
	if src.Kind != OperandImmediate {
		return &UnsupportedOperandError{Mnemonic: "adr", Reason: "target operand must be an immediate"}
	}
	blk := ctx.Block
	target := blk.Const(coreir.I64, src.Imm)
	writeRegister(blk, ctx.Env, dst.Reg, target)
	return nil
}

// emitAdrp implements ADRP: the decoded second operand already holds the
// computed 4KiB-page-aligned target address and is used directly. A
// non-page-aligned immediate is a bare unfolded page count, folded here
// against the current instruction's page.
func emitAdrp(ctx *EmissionContext) error {
	dst, err := ctx.operand(0)
	if err != nil {
		return err
	}
	src, err := ctx.operand(1)
	if err != nil {
		return err
	}
	if src.Kind != OperandImmediate {
		return &UnsupportedOperandError{Mnemonic: "adrp", Reason: "target operand must be an immediate"}
	}
	blk := ctx.Block
	const pageMask = ^int64(0xFFF)
	target := src.Imm
	if target&^pageMask != 0 {
		target = int64(ctx.Instr.Address)&pageMask + target<<12
	}
	writeRegister(blk, ctx.Env, dst.Reg, blk.Const(coreir.I64, target))
	return nil
}
