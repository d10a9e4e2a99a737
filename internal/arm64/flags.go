package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// flags.go implements the condition-code expression table and the N/Z/C/V
// flag-update helpers shared by every "set flags" arithmetic and logical
// semantics function.

// flagGlobal loads the IR global backing one of the four flag
// pseudo-registers.
func flagGlobal(env *RegEnv, id regID) coreir.Value {
	g := env.GetRegister(id)
	if g == nil {
		panic("arm64: flag register has no backing global: " + id.String())
	}
	return g
}

func loadFlag(blk coreir.Block, env *RegEnv, id regID) coreir.Value {
	return blk.Load(flagGlobal(env, id), coreir.I1)
}

func storeFlag(blk coreir.Block, env *RegEnv, id regID, v coreir.Value) {
	blk.Store(v, flagGlobal(env, id))
}

// expr builds the boolean (i1) IR expression for c from the NZCV flag
// table. AL/NV have no expression and return InvalidConditionError; callers
// gate those away before ever reaching here.
func (c cond) expr(blk coreir.Block, env *RegEnv) (coreir.Value, error) {
	n := loadFlag(blk, env, flagN)
	z := loadFlag(blk, env, flagZ)
	cf := loadFlag(blk, env, flagC)
	v := loadFlag(blk, env, flagV)

	switch c {
	case condEQ:
		return z, nil
	case condNE:
		return blk.Not(z), nil
	case condHS:
		return cf, nil
	case condLO:
		return blk.Not(cf), nil
	case condMI:
		return n, nil
	case condPL:
		return blk.Not(n), nil
	case condVS:
		return v, nil
	case condVC:
		return blk.Not(v), nil
	case condHI:
		return blk.And(cf, blk.Not(z)), nil
	case condLS:
		return blk.Or(blk.Not(cf), z), nil
	case condGE:
		return blk.Not(blk.Xor(n, v)), nil
	case condLT:
		return blk.Xor(n, v), nil
	case condGT:
		return blk.Not(blk.Or(z, blk.Xor(n, v))), nil
	case condLE:
		return blk.Or(z, blk.Xor(n, v)), nil
	default:
		return nil, &InvalidConditionError{Cond: c}
	}
}

// zFlagOf computes Z = (result == 0).
func zFlagOf(blk coreir.Block, result coreir.Value) coreir.Value {
	return blk.ICmpEQ(result, blk.Const(result.Type(), 0))
}

// nFlagOf computes N = signed-less-than(result, 0), i.e. the top bit.
func nFlagOf(blk coreir.Block, result coreir.Value) coreir.Value {
	return blk.ICmpSLT(result, blk.Const(result.Type(), 0))
}

// carryOfAdd computes the carry-out of the unsigned addition
// x+y(+carryIn) at the operands' own width, without a wider intermediate
// type: x+y carries iff the wrapped sum compares below x, and adding a
// carry-in of one can produce at most one further wrap.
func carryOfAdd(blk coreir.Block, x, y coreir.Value, carryIn coreir.Value) coreir.Value {
	sum := blk.Add(x, y)
	carry := blk.ICmpULT(sum, x)
	if carryIn != nil {
		sum2 := blk.Add(sum, blk.ZExt(carryIn, sum.Type()))
		carry = blk.Or(carry, blk.ICmpULT(sum2, sum))
	}
	return carry
}

// vFlagOfAdd computes signed overflow of x+y producing result, via the
// standard two's-complement identity: both operands agree in sign and
// differ from the result's sign.
func vFlagOfAdd(blk coreir.Block, x, y, result coreir.Value) coreir.Value {
	width := result.Type().Bits()
	top := coreir.IntType(1)
	signBit := blk.Const(result.Type(), int64(width)-1)
	xr := blk.Trunc(blk.LShr(blk.Xor(x, result), signBit), top)
	yr := blk.Trunc(blk.LShr(blk.Xor(y, result), signBit), top)
	return blk.And(xr, yr)
}

// vFlagOfSub computes signed overflow of x-y producing result: operands
// differ in sign and the result differs in sign from the minuend x.
func vFlagOfSub(blk coreir.Block, x, y, result coreir.Value) coreir.Value {
	width := result.Type().Bits()
	top := coreir.IntType(1)
	signBit := blk.Const(result.Type(), int64(width)-1)
	xy := blk.Trunc(blk.LShr(blk.Xor(x, y), signBit), top)
	xr := blk.Trunc(blk.LShr(blk.Xor(x, result), signBit), top)
	return blk.And(xy, xr)
}

// flagUpdate bundles the four flag values an arithmetic/logical family
// writes in one call.
type flagUpdate struct {
	n, z, c, v coreir.Value
}

func (fu flagUpdate) store(blk coreir.Block, env *RegEnv) {
	storeFlag(blk, env, flagN, fu.n)
	storeFlag(blk, env, flagZ, fu.z)
	storeFlag(blk, env, flagC, fu.c)
	storeFlag(blk, env, flagV, fu.v)
}

// addFlags computes NZCV for an ADD/ADDS-family result (carryIn nil means
// plain ADD; non-nil means ADC, carrying the current C flag in).
func addFlags(blk coreir.Block, x, y, result coreir.Value, carryIn coreir.Value) flagUpdate {
	return flagUpdate{
		n: nFlagOf(blk, result),
		z: zFlagOf(blk, result),
		c: carryOfAdd(blk, x, y, carryIn),
		v: vFlagOfAdd(blk, x, y, result),
	}
}

// subFlags computes NZCV for a SUB/SUBS/CMP/NEG-family result. borrowIn
// models the "subtract with borrow" family (SBC/NGC): nil means a plain
// subtract (borrow-in of 0, i.e. carry-in of all-ones / true).
func subFlags(blk coreir.Block, x, y, result coreir.Value, borrowIn coreir.Value) flagUpdate {
	notY := blk.Not(y)
	carryIn := borrowIn
	if carryIn == nil {
		carryIn = blk.Const(coreir.I1, 1)
	}
	return flagUpdate{
		n: nFlagOf(blk, result),
		z: zFlagOf(blk, result),
		c: carryOfAdd(blk, x, notY, carryIn),
		v: vFlagOfSub(blk, x, y, result),
	}
}

// logicalFlags computes NZCV for AND/ANDS/TST: C and V are cleared.
func logicalFlags(blk coreir.Block, result coreir.Value) flagUpdate {
	zero1 := blk.Const(coreir.I1, 0)
	return flagUpdate{
		n: nFlagOf(blk, result),
		z: zFlagOf(blk, result),
		c: zero1,
		v: zero1,
	}
}
