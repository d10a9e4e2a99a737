package callingconv

// x86.go covers the 32-bit x86 family. Who cleans the stack is not
// modeled here since this provider only describes storage locations, not
// cleanup responsibility. Cdecl, Stdcall and Pascal pass every parameter
// on the stack; Thiscall, Fastcall and Watcom also pass parameters in the
// general registers listed in their descriptors.

func newCdeclDescriptor(b Binding) *Descriptor {
	return &Descriptor{Tag: Cdecl, GeneralReturnRegs: regRange(0, 0), StackDirection: RightToLeft, CompositesOnStack: true}
}

func newStdcallDescriptor(b Binding) *Descriptor {
	return &Descriptor{Tag: Stdcall, GeneralReturnRegs: regRange(0, 0), StackDirection: RightToLeft, CompositesOnStack: true}
}

func newThiscallDescriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 Thiscall,
		GeneralParamRegs:    regRange(1, 1), // ECX carries the implicit this pointer
		GeneralReturnRegs:   regRange(0, 0),
		NumRegsPerWideParam: 1,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}

func newPascalDescriptor(b Binding) *Descriptor {
	return &Descriptor{Tag: Pascal, GeneralReturnRegs: regRange(0, 0), StackDirection: LeftToRight, CompositesOnStack: true}
}

func newFastcallDescriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 Fastcall,
		GeneralParamRegs:    regRange(1, 2), // ECX, EDX
		GeneralReturnRegs:   regRange(0, 0),
		NumRegsPerWideParam: 1,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}

func newWatcomDescriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 Watcom,
		GeneralParamRegs:    regRange(0, 3), // EAX, EDX, EBX, ECX
		GeneralReturnRegs:   regRange(0, 0),
		NumRegsPerWideParam: 1,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}
