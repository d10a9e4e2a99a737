package callingconv

// newPIC32Descriptor implements the PIC32 (MIPS32-derived, no hardware
// FPU parameter registers in the common configuration) ABI: A0-A3 general
// parameters, V0-V1 return, no floating-point register parameter passing.
func newPIC32Descriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 PIC32,
		GeneralParamRegs:    regRange(4, 7),
		GeneralReturnRegs:   regRange(2, 3),
		NumRegsPerWideParam: 2,
		StackDirection:      LeftToRight,
		CompositesOnStack:   true,
	}
}
