package callingconv

// newSystemVX64Descriptor implements the System V AMD64 ABI: RDI, RSI,
// RDX, RCX, R8, R9 general parameters; RAX:RDX general return; XMM0-XMM7
// FP/double/vector parameters; XMM0:XMM1 FP/double/vector return.
func newSystemVX64Descriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 SystemVX64,
		GeneralParamRegs:    []RegisterID{7, 6, 2, 1, 8, 9}, // rdi, rsi, rdx, rcx, r8, r9
		FPParamRegs:         regRange(100, 107),
		DoubleParamRegs:     regRange(100, 107),
		VectorParamRegs:     regRange(100, 107),
		GeneralReturnRegs:   []RegisterID{0, 2}, // rax, rdx
		FPReturnRegs:        regRange(100, 101),
		DoubleReturnRegs:    regRange(100, 101),
		VectorReturnRegs:    regRange(100, 101),
		NumRegsPerWideParam: 1,
		StackDirection:      RightToLeft,
		CompositesOnStack:   false,
	}
}

// newMicrosoftX64Descriptor implements the Microsoft x64 ABI: RCX, RDX,
// R8, R9 general parameters, with the floating-point file sharing the same
// argument-slot numbering (argument N is either an integer register or an
// XMM register, never both) — modeled here as RegistersOverlay.
func newMicrosoftX64Descriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 MicrosoftX64,
		GeneralParamRegs:    []RegisterID{1, 2, 8, 9}, // rcx, rdx, r8, r9
		FPParamRegs:         regRange(100, 103),
		DoubleParamRegs:     regRange(100, 103),
		GeneralReturnRegs:   []RegisterID{0}, // rax
		FPReturnRegs:        regRange(100, 100),
		DoubleReturnRegs:    regRange(100, 100),
		NumRegsPerWideParam: 1,
		RegistersOverlay:    true,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}
