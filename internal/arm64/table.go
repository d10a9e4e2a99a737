package arm64

// semanticsFunc emits the IR for one decoded instruction's body (operand
// resolution, flag updates, result writeback and any conditional gating
// are its responsibility; the driver only records whether the instruction
// is conditioned).
type semanticsFunc func(ctx *EmissionContext) error

// semanticsTable is a mnemonic-to-semantics-function registry populated
// once at package init. A lookup table rather than a big switch so the
// driver and the fallback path can share one "is this mnemonic handled"
// test.
var semanticsTable = map[Mnemonic]semanticsFunc{}

func register(m Mnemonic, fn semanticsFunc) {
	if _, exists := semanticsTable[m]; exists {
		panic("arm64: duplicate semantics registration for " + m.String())
	}
	semanticsTable[m] = fn
}

func lookup(m Mnemonic) (semanticsFunc, bool) {
	fn, ok := semanticsTable[m]
	return fn, ok
}
