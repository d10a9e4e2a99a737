package callingconv

// RegisterID is an architecture-neutral small integer naming a register
// within a Descriptor's parameter/return lists. A Binding translates
// between a caller's own value representation and these ids; per-arch
// descriptor files (arm64.go, x64.go, ...) populate Descriptor fields with
// the RegisterID values their Binding is expected to hand back.
type RegisterID uint16

// Binding is the architecture/IR-level collaborator the provider consumes. The
// provider never constructs or owns a Binding; callers (the translation
// driver, or a downstream analysis pass) supply one bound to their own IR
// values.
type Binding interface {
	// WordSize returns the architecture's natural word size in bytes.
	WordSize() int

	// RegisterID resolves v (an IR value, global, or similar caller-side
	// handle) to the RegisterID it was constructed from, if any.
	RegisterID(v interface{}) (RegisterID, bool)

	// IsStackVariable reports whether v is recognized as a stack-resident
	// variable rather than a register-resident one.
	IsStackVariable(v interface{}) bool
}
