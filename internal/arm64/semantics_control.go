package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// semantics_control.go covers the control-flow family. None of these build a real IR
// basic-block terminator: every control transfer is emitted as a call to
// one of the four reserved escape functions (ir.Block.Branch/
// ConditionalBranch/Call/Return), keeping CFG reconstruction out of this
// core's scope entirely.

func init() {
	register(B, func(ctx *EmissionContext) error { return emitUnconditionalBranch(ctx, false) })
	register(BL, func(ctx *EmissionContext) error { return emitUnconditionalBranch(ctx, true) })
	register(BR, func(ctx *EmissionContext) error { return emitIndirectBranch(ctx, false) })
	register(BLR, func(ctx *EmissionContext) error { return emitIndirectBranch(ctx, true) })
	register(RET, emitRet)
	register(CBZ, func(ctx *EmissionContext) error { return emitCompareAndBranch(ctx, true) })
	register(CBNZ, func(ctx *EmissionContext) error { return emitCompareAndBranch(ctx, false) })
	register(TBZ, func(ctx *EmissionContext) error { return emitTestAndBranch(ctx, true) })
	register(TBNZ, func(ctx *EmissionContext) error { return emitTestAndBranch(ctx, false) })
}

// emitUnconditionalBranch implements B and BL. B.cond (a conditioned B) is
// represented the same way a disassembler represents any other predicated
// mnemonic: Cond is non-AL, so the ConditionalBranch escape is used
// instead of Branch.
func emitUnconditionalBranch(ctx *EmissionContext, link bool) error {
	target, err := ctx.operand(0)
	if err != nil {
		return err
	}
	if target.Kind != OperandImmediate {
		return &UnsupportedOperandError{Mnemonic: ctx.Instr.Mnemonic.String(), Reason: "branch target must be an immediate"}
	}
	blk := ctx.Block
	dest := blk.Const(coreir.I64, target.Imm)
	if link {
		writeRegister(blk, ctx.Env, lr, ctx.nextPC())
		blk.Call(dest)
		return nil
	}
	if ctx.Instr.Cond.isAlways() {
		blk.Branch(dest)
		return nil
	}
	condVal, err := ctx.Instr.Cond.expr(blk, ctx.Env)
	if err != nil {
		return err
	}
	blk.ConditionalBranch(condVal, dest)
	return nil
}

// emitIndirectBranch implements BR and BLR: the target is a register
// value rather than a resolved immediate.
func emitIndirectBranch(ctx *EmissionContext, link bool) error {
	target, err := ctx.operand(0)
	if err != nil {
		return err
	}
	blk := ctx.Block
	dest, err := loadOperandValue(ctx, target, 64)
	if err != nil {
		return err
	}
	if link {
		writeRegister(blk, ctx.Env, lr, ctx.nextPC())
		blk.Call(dest)
		return nil
	}
	blk.Branch(dest)
	return nil
}

// emitRet implements RET: branch to the value in Rn (X30/LR if omitted).
func emitRet(ctx *EmissionContext) error {
	blk := ctx.Block
	target := RegID(lr)
	if len(ctx.Instr.Operands) > 0 {
		op, err := ctx.operand(0)
		if err != nil {
			return err
		}
		target = op.Reg
	}
	dest, err := readRegister(ctx, target, 64, ShiftedOperand{})
	if err != nil {
		return err
	}
	blk.Return(dest)
	return nil
}

// emitCompareAndBranch implements CBZ/CBNZ: branch if Rt is (not) zero.
func emitCompareAndBranch(ctx *EmissionContext, branchIfZero bool) error {
	rt, err := ctx.operand(0)
	if err != nil {
		return err
	}
	targetOp, err := ctx.operand(1)
	if err != nil {
		return err
	}
	if targetOp.Kind != OperandImmediate {
		return &UnsupportedOperandError{Mnemonic: ctx.Instr.Mnemonic.String(), Reason: "branch target must be an immediate"}
	}
	blk := ctx.Block
	width := RegisterBitSize(rt.Reg)
	v, err := loadOperandValue(ctx, rt, width)
	if err != nil {
		return err
	}
	isZero := blk.ICmpEQ(v, blk.Const(v.Type(), 0))
	cond := isZero
	if !branchIfZero {
		cond = blk.Not(isZero)
	}
	dest := blk.Const(coreir.I64, targetOp.Imm)
	blk.ConditionalBranch(cond, dest)
	return nil
}

// emitTestAndBranch implements TBZ/TBNZ: branch if a given bit of Rt is
// (not) set.
func emitTestAndBranch(ctx *EmissionContext, branchIfZero bool) error {
	rt, err := ctx.operand(0)
	if err != nil {
		return err
	}
	bitOp, err := ctx.operand(1)
	if err != nil {
		return err
	}
	targetOp, err := ctx.operand(2)
	if err != nil {
		return err
	}
	if bitOp.Kind != OperandImmediate || targetOp.Kind != OperandImmediate {
		return &UnsupportedOperandError{Mnemonic: ctx.Instr.Mnemonic.String(), Reason: "bit index and branch target must be immediates"}
	}
	blk := ctx.Block
	width := RegisterBitSize(rt.Reg)
	v, err := loadOperandValue(ctx, rt, width)
	if err != nil {
		return err
	}
	bit := blk.And(blk.LShr(v, blk.Const(v.Type(), bitOp.Imm)), blk.Const(v.Type(), 1))
	isZero := blk.ICmpEQ(bit, blk.Const(v.Type(), 0))
	cond := isZero
	if !branchIfZero {
		cond = blk.Not(isZero)
	}
	dest := blk.Const(coreir.I64, targetOp.Imm)
	blk.ConditionalBranch(cond, dest)
	return nil
}
