package arm64

import (
	coreir "github.com/2lambda123/avast-retdec/ir"
	"github.com/2lambda123/avast-retdec/ir/irtest"
)

// newTestModule returns a fresh eager-evaluation reference module, used by
// every test in this package in place of a real LLVM IR module.
func newTestModule() coreir.Module {
	return irtest.NewModule()
}

// fixture bundles everything a semantics test needs: a register
// environment, a translator, and a block to translate into.
type fixture struct {
	Mod   *irtest.Module
	Env   *RegEnv
	Trans *Translator
	Block *irtest.Block
}

func newFixture() *fixture {
	mod := irtest.NewModule()
	env := NewRegEnv(mod)
	return &fixture{
		Mod:   mod,
		Env:   env,
		Trans: NewTranslator(env),
		Block: irtest.NewBlock(mod),
	}
}

func (f *fixture) setReg(id regID, v uint64) {
	g := f.Env.GetRegister(id)
	g.(*irtest.Global).Write(v)
}

func (f *fixture) readReg(id regID) uint64 {
	g := f.Env.GetRegister(id)
	return g.(*irtest.Global).Read()
}

func (f *fixture) readFlag(id regID) uint64 {
	return f.readReg(id)
}

func (f *fixture) translate(instr *DecodedInstruction) error {
	return f.Trans.TranslateOne(f.Block, instr)
}
