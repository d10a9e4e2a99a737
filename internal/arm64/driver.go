package arm64

import coreir "github.com/2lambda123/avast-retdec/ir"

// Translator owns the register environment and dispatches each decoded
// instruction to its semantics function. Condition gating is the
// semantics function's own responsibility (the conditional-select and
// conditional-branch families consume their condition directly); the
// driver only records that the instruction was conditioned. The dispatch
// loop follows a plain mnemonic-switch lowering pass, generalized from
// "lower one SSA instruction to machine instructions" to "translate one
// disassembled instruction to IR".
type Translator struct {
	Env *RegEnv

	// Reporter is invoked the first time a given mnemonic falls through to
	// the pseudo-asm fallback; nil means reports are simply dropped. It is
	// called at most once per distinct mnemonic per Translator, matching
	// the "report once" contract.
	Reporter func(*UnhandledInstructionError)

	reported map[Mnemonic]bool
}

// NewTranslator builds a driver over env. Callers construct one RegEnv per
// lifted function/module and reuse it across every TranslateOne call.
func NewTranslator(env *RegEnv) *Translator {
	return &Translator{Env: env}
}

// TranslateOne translates a single decoded instruction into blk, returning
// an error for any of the typed failure kinds. Unconditioned (AL/NV)
// instructions are emitted directly; for conditioned instructions the
// semantics function consults ctx's condition expression itself (IR has no
// speculative execution for a driver to undo afterward).
func (t *Translator) TranslateOne(blk coreir.Block, instr *DecodedInstruction) error {
	ctx := newEmissionContext(t.Env, blk, instr)
	if !instr.Cond.isAlways() {
		ctx.inConditionalBody = true
	}

	fn, ok := lookup(instr.Mnemonic)
	if !ok {
		t.reportUnhandled(instr.Mnemonic)
		return t.fallback(ctx)
	}
	return fn(ctx)
}

// reportUnhandled notifies t.Reporter the first time m is seen by this
// Translator, then remembers it so later occurrences of the same opcode in
// the same function don't re-report.
func (t *Translator) reportUnhandled(m Mnemonic) {
	if t.reported == nil {
		t.reported = make(map[Mnemonic]bool)
	}
	if t.reported[m] {
		return
	}
	t.reported[m] = true
	if t.Reporter != nil {
		t.Reporter(&UnhandledInstructionError{Mnemonic: m.String()})
	}
}
