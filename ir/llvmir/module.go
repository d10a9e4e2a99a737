// Package llvmir binds this project's minimal ir.Module/ir.Block interfaces
// to github.com/llir/llvm, the same Go LLVM-IR construction library used by
// golint-fixer-exp's bin2ll translator for an analogous (x86) lift. It is
// the concrete collaborator the core never imports directly.
package llvmir

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/pkg/errors"

	coreir "github.com/2lambda123/avast-retdec/ir"
)

// Module adapts an *ir.Module (llir/llvm) to coreir.Module.
type Module struct {
	M        *ir.Module
	globals  map[string]*globalValue
	asmFuncs map[string]*ir.Func

	// The four reserved control-flow escape functions.
	// Calls to these remain inside one basic block; a later pass rebuilds
	// the real control-flow graph from them.
	branchFn, condBranchFn, callFn, returnFn *ir.Func
}

// NewModule creates an empty llir/llvm module ready to receive registers,
// with the four reserved escape functions already declared.
func NewModule(name string) *Module {
	m := ir.NewModule()
	m.SourceFilename = name
	mod := &Module{
		M:        m,
		globals:  map[string]*globalValue{},
		asmFuncs: map[string]*ir.Func{},
	}
	mod.branchFn = m.NewFunc("branch", types.Void, ir.NewParam("target", types.I64))
	mod.condBranchFn = m.NewFunc("conditional_branch", types.Void,
		ir.NewParam("cond", types.I1), ir.NewParam("target", types.I64))
	mod.callFn = m.NewFunc("call", types.Void, ir.NewParam("target", types.I64))
	mod.returnFn = m.NewFunc("return", types.Void, ir.NewParam("target", types.I64))
	return mod
}

func toLLType(t coreir.Type) types.Type {
	if t.IsPointer() {
		return types.NewPointer(toLLType(t.Elem()))
	}
	return types.NewInt(uint64(t.Bits()))
}

func fromLLType(t types.Type) coreir.Type {
	switch v := t.(type) {
	case *types.PointerType:
		return coreir.PointerType(fromLLType(v.ElemType))
	case *types.IntType:
		return coreir.IntType(byte(v.BitSize))
	default:
		panic(fmt.Sprintf("llvmir: unsupported llir type %T", t))
	}
}

type globalValue struct {
	name string
	g    *ir.Global
	typ  coreir.Type
}

func (g *globalValue) Type() coreir.Type { return g.typ }
func (g *globalValue) String() string    { return g.g.Ident() }
func (g *globalValue) Name() string      { return g.name }

// NewGlobal implements coreir.Module.
func (m *Module) NewGlobal(name string, t coreir.Type) coreir.Global {
	if _, ok := m.globals[name]; ok {
		panic(errors.Errorf("llvmir: global %q already exists", name))
	}
	llt := toLLType(t)
	g := m.M.NewGlobalDef(name, constant.NewInt(llt.(*types.IntType), 0))
	gv := &globalValue{name: name, g: g, typ: t}
	m.globals[name] = gv
	return gv
}

// Global implements coreir.Module.
func (m *Module) Global(name string) (coreir.Global, bool) {
	g, ok := m.globals[name]
	if !ok {
		return nil, false
	}
	return g, true
}

// AsmFunc implements coreir.Module. All asm fallback functions are declared
// variadic and i64-returning: the mnemonic determines identity, the operand
// values are passed as a variable-length argument list.
func (m *Module) AsmFunc(mnemonic string, _ int) coreir.Value {
	name := "asm." + mnemonic
	f, ok := m.asmFuncs[name]
	if !ok {
		f = m.M.NewFunc(name, types.I64)
		f.Sig.Variadic = true
		m.asmFuncs[name] = f
	}
	return &funcValue{f: f}
}

type funcValue struct{ f *ir.Func }

func (f *funcValue) Type() coreir.Type { return coreir.I64 }
func (f *funcValue) String() string    { return f.f.Ident() }

var _ coreir.Module = (*Module)(nil)

// Block adapts an *ir.Block to coreir.Block.
type Block struct {
	B   *ir.Block
	Mod *Module
}

func (b *Block) unwrap(v coreir.Value) value.Value {
	switch x := v.(type) {
	case *globalValue:
		return x.g
	case *funcValue:
		return x.f
	case *llValue:
		return x.v
	default:
		panic(fmt.Sprintf("llvmir: unrecognized value %T", v))
	}
}

type llValue struct {
	v   value.Value
	typ coreir.Type
}

func (l *llValue) Type() coreir.Type { return l.typ }
func (l *llValue) String() string    { return l.v.Ident() }

func (b *Block) wrap(v value.Value, t coreir.Type) coreir.Value {
	return &llValue{v: v, typ: t}
}

func (b *Block) Const(t coreir.Type, val int64) coreir.Value {
	llt := toLLType(t).(*types.IntType)
	return b.wrap(constant.NewInt(llt, val), t)
}

func (b *Block) Load(ptr coreir.Value, t coreir.Type) coreir.Value {
	inst := b.B.NewLoad(toLLType(t), b.unwrap(ptr))
	return b.wrap(inst, t)
}

func (b *Block) Store(val, ptr coreir.Value) {
	b.B.NewStore(b.unwrap(val), b.unwrap(ptr))
}

func (b *Block) binop(kind string, x, y coreir.Value) coreir.Value {
	xv, yv := b.unwrap(x), b.unwrap(y)
	var inst value.Value
	switch kind {
	case "add":
		inst = b.B.NewAdd(xv, yv)
	case "sub":
		inst = b.B.NewSub(xv, yv)
	case "and":
		inst = b.B.NewAnd(xv, yv)
	case "or":
		inst = b.B.NewOr(xv, yv)
	case "xor":
		inst = b.B.NewXor(xv, yv)
	case "mul":
		inst = b.B.NewMul(xv, yv)
	case "udiv":
		inst = b.B.NewUDiv(xv, yv)
	case "sdiv":
		inst = b.B.NewSDiv(xv, yv)
	case "shl":
		inst = b.B.NewShl(xv, yv)
	case "lshr":
		inst = b.B.NewLShr(xv, yv)
	case "ashr":
		inst = b.B.NewAShr(xv, yv)
	default:
		panic("llvmir: unknown binop " + kind)
	}
	return b.wrap(inst, x.Type())
}

func (b *Block) Add(x, y coreir.Value) coreir.Value  { return b.binop("add", x, y) }
func (b *Block) Sub(x, y coreir.Value) coreir.Value  { return b.binop("sub", x, y) }
func (b *Block) And(x, y coreir.Value) coreir.Value  { return b.binop("and", x, y) }
func (b *Block) Or(x, y coreir.Value) coreir.Value   { return b.binop("or", x, y) }
func (b *Block) Xor(x, y coreir.Value) coreir.Value  { return b.binop("xor", x, y) }
func (b *Block) Mul(x, y coreir.Value) coreir.Value  { return b.binop("mul", x, y) }
func (b *Block) UDiv(x, y coreir.Value) coreir.Value { return b.binop("udiv", x, y) }
func (b *Block) SDiv(x, y coreir.Value) coreir.Value { return b.binop("sdiv", x, y) }
func (b *Block) Shl(x, y coreir.Value) coreir.Value  { return b.binop("shl", x, y) }
func (b *Block) LShr(x, y coreir.Value) coreir.Value { return b.binop("lshr", x, y) }
func (b *Block) AShr(x, y coreir.Value) coreir.Value { return b.binop("ashr", x, y) }

func (b *Block) Not(x coreir.Value) coreir.Value {
	allOnes := b.Const(x.Type(), -1)
	return b.Xor(x, allOnes)
}

func (b *Block) Neg(x coreir.Value) coreir.Value {
	zero := b.Const(x.Type(), 0)
	return b.Sub(zero, x)
}

func (b *Block) icmp(pred enum.IPred, x, y coreir.Value) coreir.Value {
	inst := b.B.NewICmp(pred, b.unwrap(x), b.unwrap(y))
	return b.wrap(inst, coreir.I1)
}

func (b *Block) ICmpEQ(x, y coreir.Value) coreir.Value  { return b.icmp(enum.IPredEQ, x, y) }
func (b *Block) ICmpNE(x, y coreir.Value) coreir.Value  { return b.icmp(enum.IPredNE, x, y) }
func (b *Block) ICmpULT(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredULT, x, y) }
func (b *Block) ICmpULE(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredULE, x, y) }
func (b *Block) ICmpUGT(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredUGT, x, y) }
func (b *Block) ICmpUGE(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredUGE, x, y) }
func (b *Block) ICmpSLT(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredSLT, x, y) }
func (b *Block) ICmpSLE(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredSLE, x, y) }
func (b *Block) ICmpSGT(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredSGT, x, y) }
func (b *Block) ICmpSGE(x, y coreir.Value) coreir.Value { return b.icmp(enum.IPredSGE, x, y) }

func (b *Block) Trunc(x coreir.Value, t coreir.Type) coreir.Value {
	return b.wrap(b.B.NewTrunc(b.unwrap(x), toLLType(t)), t)
}

func (b *Block) ZExt(x coreir.Value, t coreir.Type) coreir.Value {
	return b.wrap(b.B.NewZExt(b.unwrap(x), toLLType(t)), t)
}

func (b *Block) SExt(x coreir.Value, t coreir.Type) coreir.Value {
	return b.wrap(b.B.NewSExt(b.unwrap(x), toLLType(t)), t)
}

func (b *Block) Select(cond, x, y coreir.Value) coreir.Value {
	return b.wrap(b.B.NewSelect(b.unwrap(cond), b.unwrap(x), b.unwrap(y)), x.Type())
}

func (b *Block) IntToPtr(x coreir.Value, elem coreir.Type) coreir.Value {
	pt := coreir.PointerType(elem)
	return b.wrap(b.B.NewIntToPtr(b.unwrap(x), toLLType(pt)), pt)
}

func (b *Block) Branch(target coreir.Value) {
	b.B.NewCall(b.Mod.branchFn, b.unwrap(target))
}

func (b *Block) ConditionalBranch(cond, target coreir.Value) {
	b.B.NewCall(b.Mod.condBranchFn, b.unwrap(cond), b.unwrap(target))
}

func (b *Block) Call(target coreir.Value) {
	b.B.NewCall(b.Mod.callFn, b.unwrap(target))
}

func (b *Block) Return(target coreir.Value) {
	b.B.NewCall(b.Mod.returnFn, b.unwrap(target))
}

func (b *Block) GenericCall(fn coreir.Value, args []coreir.Value) coreir.Value {
	llargs := make([]value.Value, len(args))
	for i, a := range args {
		llargs[i] = b.unwrap(a)
	}
	call := b.B.NewCall(b.unwrap(fn), llargs...)
	return b.wrap(call, coreir.I64)
}

var _ coreir.Block = (*Block)(nil)
