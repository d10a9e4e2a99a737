package callingconv

// Factory builds a Descriptor for one Tag against a concrete Binding.
type Factory func(b Binding) *Descriptor

// Registry maps a Tag to the Factory that builds its Descriptor. Unlike
// the original project's process-wide singleton, a Registry here is an
// explicit value: callers construct one with NewRegistry, optionally seed
// it with RegisterDefaults, and pass it around like any other dependency.
type Registry struct {
	factories map[Tag]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Tag]Factory)}
}

// Register adds or replaces the factory for tag. Idempotent: registering
// the same tag twice is not an error, and the last writer wins.
func (r *Registry) Register(tag Tag, f Factory) {
	r.factories[tag] = f
}

// RegisterDefaults populates r with a factory for every Tag, drawn from
// the architecture files in this directory (several tags share a factory).
func (r *Registry) RegisterDefaults() {
	r.Register(ARM64, newARM64Descriptor)
	r.Register(ARM, newARMDescriptor)
	r.Register(MIPS, newMIPSDescriptor)
	r.Register(MIPS64, newMIPS64Descriptor)
	r.Register(MIPSPsp, newMIPSDescriptor)
	r.Register(PIC32, newPIC32Descriptor)
	r.Register(PowerPC, newPowerPCDescriptor)
	r.Register(PowerPC64, newPowerPC64Descriptor)
	r.Register(SystemVX64, newSystemVX64Descriptor)
	r.Register(MicrosoftX64, newMicrosoftX64Descriptor)
	r.Register(Cdecl, newCdeclDescriptor)
	r.Register(Ellipsis, newCdeclDescriptor)
	r.Register(Stdcall, newStdcallDescriptor)
	r.Register(Thiscall, newThiscallDescriptor)
	r.Register(Pascal, newPascalDescriptor)
	r.Register(Fastcall, newFastcallDescriptor)
	r.Register(PascalFastcall, newFastcallDescriptor)
	r.Register(Watcom, newWatcomDescriptor)
}

// Create returns a freshly constructed Descriptor for tag bound to b, or
// (nil, false) if tag has no registered factory — an unrecognized ABI tag
// is reported to the caller rather than treated as a fatal error.
func (r *Registry) Create(tag Tag, b Binding) (*Descriptor, bool) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, false
	}
	d := f(b)
	d.wordSize = b.WordSize()
	return d, true
}
