// Package irtest is an eager-evaluation reference implementation of
// ir.Module/ir.Block used only by this project's own tests. Each New*
// builder call computes its concrete result immediately instead of
// recording a deferred instruction graph, which lets a test assert exact
// register/flag/memory values the same way the original project's
// Capstone2LlvmIrTranslatorArm64Tests harness read back GenericValues from
// an LLVM ExecutionEngine.
package irtest

import (
	"fmt"

	coreir "github.com/2lambda123/avast-retdec/ir"
)

func mask(bits byte) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// Val is the concrete value carried by every ir.Value this package produces.
type Val struct {
	typ coreir.Type
	raw uint64 // the value's bits, stored in the low bits, high bits zero.
}

func (v Val) Type() coreir.Type { return v.typ }
func (v Val) String() string    { return fmt.Sprintf("%s %#x", v.typ, v.raw) }

func newVal(t coreir.Type, raw uint64) Val {
	if t.IsPointer() {
		return Val{typ: t, raw: raw}
	}
	return Val{typ: t, raw: raw & mask(t.Bits())}
}

// EscapeKind identifies which of the four reserved control-flow escapes was
// recorded.
type EscapeKind int

const (
	EscapeBranch EscapeKind = iota
	EscapeConditionalBranch
	EscapeCall
	EscapeReturn
)

// Escape records one call to a reserved control-flow escape function.
type Escape struct {
	Kind      EscapeKind
	Cond      uint64 // only meaningful for EscapeConditionalBranch
	CondTaken bool   // only meaningful for EscapeConditionalBranch
	Target    uint64
}

// AsmCall records one call emitted by the Pseudo-Instruction Fallback.
type AsmCall struct {
	Mnemonic string
	Args     []uint64
}

// Global is a register-backed storage cell.
type Global struct {
	name string
	typ  coreir.Type
	cell *uint64
}

func (g *Global) Type() coreir.Type { return g.typ }
func (g *Global) String() string    { return g.name }
func (g *Global) Name() string      { return g.name }

// Read returns the global's current value.
func (g *Global) Read() uint64 { return *g.cell & mask(g.typ.Bits()) }

// Write overwrites the global's current value.
func (g *Global) Write(v uint64) { *g.cell = v & mask(g.typ.Bits()) }

// Module is the irtest reference module: a set of register globals plus a
// flat byte-addressable memory.
type Module struct {
	globals map[string]*Global
	asm     map[string]*asmFuncVal
	mem     map[uint64]byte
}

// NewModule creates an empty reference module.
func NewModule() *Module {
	return &Module{
		globals: map[string]*Global{},
		asm:     map[string]*asmFuncVal{},
		mem:     map[uint64]byte{},
	}
}

func (m *Module) NewGlobal(name string, t coreir.Type) coreir.Global {
	if _, ok := m.globals[name]; ok {
		panic(fmt.Sprintf("irtest: global %q already exists", name))
	}
	var cell uint64
	g := &Global{name: name, typ: t, cell: &cell}
	m.globals[name] = g
	return g
}

func (m *Module) Global(name string) (coreir.Global, bool) {
	g, ok := m.globals[name]
	if !ok {
		return nil, false
	}
	return g, true
}

type asmFuncVal struct {
	mnemonic string
}

func (a *asmFuncVal) Type() coreir.Type { return coreir.I64 }
func (a *asmFuncVal) String() string    { return "asm." + a.mnemonic }

func (m *Module) AsmFunc(mnemonic string, _ int) coreir.Value {
	f, ok := m.asm[mnemonic]
	if !ok {
		f = &asmFuncVal{mnemonic: mnemonic}
		m.asm[mnemonic] = f
	}
	return f
}

// SetMemory64 seeds eight bytes of little-endian memory content for test
// fixtures.
func (m *Module) SetMemory64(addr, v uint64) {
	for i := 0; i < 8; i++ {
		m.mem[addr+uint64(i)] = byte(v >> (8 * i))
	}
}

func (m *Module) readMem(addr uint64, bits byte) uint64 {
	n := int(bits) / 8
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(m.mem[addr+uint64(i)]) << (8 * i)
	}
	return v
}

func (m *Module) writeMem(addr uint64, bits byte, v uint64) {
	n := int(bits) / 8
	for i := 0; i < n; i++ {
		m.mem[addr+uint64(i)] = byte(v >> (8 * i))
	}
}

// Block is the reference-evaluator instruction builder.
type Block struct {
	Mod     *Module
	Escapes []Escape
	Asm     []AsmCall
}

// NewBlock creates a Block bound to mod.
func NewBlock(mod *Module) *Block { return &Block{Mod: mod} }

func toVal(v coreir.Value) Val {
	switch x := v.(type) {
	case Val:
		return x
	case *Global:
		return newVal(x.typ, x.Read())
	default:
		panic(fmt.Sprintf("irtest: unrecognized value %T", v))
	}
}

func (b *Block) Const(t coreir.Type, val int64) coreir.Value {
	return newVal(t, uint64(val))
}

func (b *Block) Load(ptr coreir.Value, t coreir.Type) coreir.Value {
	// A Global used as the pointer operand reads the global's own cell (it
	// is the address of that cell); anything else is an integer address
	// into flat memory.
	if g, ok := ptr.(*Global); ok {
		return newVal(t, g.Read())
	}
	addr := toVal(ptr).raw
	return newVal(t, b.Mod.readMem(addr, t.Bits()))
}

func (b *Block) Store(val, ptr coreir.Value) {
	v := toVal(val)
	if g, ok := ptr.(*Global); ok {
		g.Write(v.raw)
		return
	}
	addr := toVal(ptr).raw
	b.Mod.writeMem(addr, v.typ.Bits(), v.raw)
}

func signExtend(v uint64, bits byte) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

func (b *Block) binop(op string, x, y coreir.Value) coreir.Value {
	xv, yv := toVal(x), toVal(y)
	t := xv.typ
	var r uint64
	switch op {
	case "add":
		r = xv.raw + yv.raw
	case "sub":
		r = xv.raw - yv.raw
	case "and":
		r = xv.raw & yv.raw
	case "or":
		r = xv.raw | yv.raw
	case "xor":
		r = xv.raw ^ yv.raw
	case "mul":
		r = xv.raw * yv.raw
	case "udiv":
		if yv.raw == 0 {
			r = 0
		} else {
			r = xv.raw / yv.raw
		}
	case "sdiv":
		if yv.raw == 0 {
			r = 0
		} else {
			sx, sy := signExtend(xv.raw, t.Bits()), signExtend(yv.raw, t.Bits())
			r = uint64(sx / sy)
		}
	case "shl":
		r = xv.raw << (yv.raw % uint64(t.Bits()))
	case "lshr":
		r = xv.raw >> (yv.raw % uint64(t.Bits()))
	case "ashr":
		sx := signExtend(xv.raw, t.Bits())
		r = uint64(sx >> (yv.raw % uint64(t.Bits())))
	default:
		panic("irtest: unknown binop " + op)
	}
	return newVal(t, r)
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
	xv := toVal(x)
	return newVal(xv.typ, ^xv.raw)
}

func (b *Block) Neg(x coreir.Value) coreir.Value {
	xv := toVal(x)
	return newVal(xv.typ, uint64(-int64(xv.raw)))
}

func boolVal(v bool) coreir.Value {
	if v {
		return newVal(coreir.I1, 1)
	}
	return newVal(coreir.I1, 0)
}

func (b *Block) ICmpEQ(x, y coreir.Value) coreir.Value {
	return boolVal(toVal(x).raw == toVal(y).raw)
}
func (b *Block) ICmpNE(x, y coreir.Value) coreir.Value {
	return boolVal(toVal(x).raw != toVal(y).raw)
}
func (b *Block) ICmpULT(x, y coreir.Value) coreir.Value {
	return boolVal(toVal(x).raw < toVal(y).raw)
}
func (b *Block) ICmpULE(x, y coreir.Value) coreir.Value {
	return boolVal(toVal(x).raw <= toVal(y).raw)
}
func (b *Block) ICmpUGT(x, y coreir.Value) coreir.Value {
	return boolVal(toVal(x).raw > toVal(y).raw)
}
func (b *Block) ICmpUGE(x, y coreir.Value) coreir.Value {
	return boolVal(toVal(x).raw >= toVal(y).raw)
}
func (b *Block) ICmpSLT(x, y coreir.Value) coreir.Value {
	xv, yv := toVal(x), toVal(y)
	return boolVal(signExtend(xv.raw, xv.typ.Bits()) < signExtend(yv.raw, yv.typ.Bits()))
}
func (b *Block) ICmpSLE(x, y coreir.Value) coreir.Value {
	xv, yv := toVal(x), toVal(y)
	return boolVal(signExtend(xv.raw, xv.typ.Bits()) <= signExtend(yv.raw, yv.typ.Bits()))
}
func (b *Block) ICmpSGT(x, y coreir.Value) coreir.Value {
	xv, yv := toVal(x), toVal(y)
	return boolVal(signExtend(xv.raw, xv.typ.Bits()) > signExtend(yv.raw, yv.typ.Bits()))
}
func (b *Block) ICmpSGE(x, y coreir.Value) coreir.Value {
	xv, yv := toVal(x), toVal(y)
	return boolVal(signExtend(xv.raw, xv.typ.Bits()) >= signExtend(yv.raw, yv.typ.Bits()))
}

func (b *Block) Trunc(x coreir.Value, t coreir.Type) coreir.Value {
	return newVal(t, toVal(x).raw)
}

func (b *Block) ZExt(x coreir.Value, t coreir.Type) coreir.Value {
	return newVal(t, toVal(x).raw)
}

func (b *Block) SExt(x coreir.Value, t coreir.Type) coreir.Value {
	xv := toVal(x)
	return newVal(t, uint64(signExtend(xv.raw, xv.typ.Bits())))
}

func (b *Block) Select(cond, x, y coreir.Value) coreir.Value {
	if toVal(cond).raw != 0 {
		return x
	}
	return y
}

func (b *Block) IntToPtr(x coreir.Value, elem coreir.Type) coreir.Value {
	return newVal(coreir.PointerType(elem), toVal(x).raw)
}

func (b *Block) Branch(target coreir.Value) {
	b.Escapes = append(b.Escapes, Escape{Kind: EscapeBranch, Target: toVal(target).raw})
}

func (b *Block) ConditionalBranch(cond, target coreir.Value) {
	cv := toVal(cond)
	b.Escapes = append(b.Escapes, Escape{
		Kind: EscapeConditionalBranch, Cond: cv.raw, CondTaken: cv.raw != 0, Target: toVal(target).raw,
	})
}

func (b *Block) Call(target coreir.Value) {
	b.Escapes = append(b.Escapes, Escape{Kind: EscapeCall, Target: toVal(target).raw})
}

func (b *Block) Return(target coreir.Value) {
	b.Escapes = append(b.Escapes, Escape{Kind: EscapeReturn, Target: toVal(target).raw})
}

func (b *Block) GenericCall(fn coreir.Value, args []coreir.Value) coreir.Value {
	f, ok := fn.(*asmFuncVal)
	if !ok {
		panic(fmt.Sprintf("irtest: GenericCall target is not an asm func: %T", fn))
	}
	raws := make([]uint64, len(args))
	for i, a := range args {
		raws[i] = toVal(a).raw
	}
	b.Asm = append(b.Asm, AsmCall{Mnemonic: f.mnemonic, Args: raws})
	return newVal(coreir.I64, 0)
}

// Raw extracts the concrete bit pattern backing v, for tests that need to
// assert on a computed coreir.Value directly rather than reading it back
// through a Global.
func Raw(v coreir.Value) uint64 {
	return toVal(v).raw
}

var (
	_ coreir.Module = (*Module)(nil)
	_ coreir.Block  = (*Block)(nil)
	_ coreir.Global = (*Global)(nil)
	_ coreir.Value  = Val{}
)
