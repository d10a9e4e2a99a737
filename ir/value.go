package ir

// Value is an SSA-style IR value: the result of a constant, a global
// reference, or an instruction. It carries its own Type so that callers
// never need a side table to recover width/pointer-ness.
type Value interface {
	// Type returns the value's IR type.
	Type() Type
	// String returns a debug rendering, e.g. for CLI dumps.
	String() string
}

// Global is a named, module-level storage location (what the Register
// Environment creates one of per architectural parent register).
type Global interface {
	Value
	// Name returns the global's identifier, e.g. "x0".
	Name() string
}
