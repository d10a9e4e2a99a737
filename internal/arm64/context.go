package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// EmissionContext is the per-instruction translation scratchpad: a handle
// on the register environment, the IR block currently being emitted into,
// and the decoded instruction under translation. One is created per
// TranslateOne call and discarded afterward.
type EmissionContext struct {
	Env   *RegEnv
	Block coreir.Block
	Instr *DecodedInstruction

	// inConditionalBody records that this instruction carries a real
	// (non-AL/NV) condition. The conditional-select and branch families
	// gate via Instr.Cond directly; the pseudo-asm fallback consults this
	// bit to gate its opaque call and result store.
	inConditionalBody bool
}

func newEmissionContext(env *RegEnv, blk coreir.Block, instr *DecodedInstruction) *EmissionContext {
	return &EmissionContext{Env: env, Block: blk, Instr: instr}
}

// operand fetches the i'th operand or returns a typed error.
func (ctx *EmissionContext) operand(i int) (Operand, error) {
	return ctx.Instr.operand(i)
}

// pc returns a constant for this instruction's address, for any semantics
// function that needs "the address of this instruction" (ADR/ADRP do not
// call it; ADRP reads ctx.Instr.Address directly). PC is never backed by
// storage.
func (ctx *EmissionContext) pc() coreir.Value {
	return ctx.Block.Const(coreir.I64, int64(ctx.Instr.Address))
}

// nextPC returns a constant for the address immediately following this
// instruction, used by BL to compute the link-register value.
func (ctx *EmissionContext) nextPC() coreir.Value {
	return ctx.Block.Const(coreir.I64, int64(ctx.Instr.Address+uint64(ctx.Instr.Size)))
}
