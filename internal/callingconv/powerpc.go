package callingconv

// newPowerPCDescriptor implements the 32-bit PowerPC SysV ABI: R3-R10
// general parameters, R3-R4 return, F1-F8 FP/double parameters, F1 return.
func newPowerPCDescriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 PowerPC,
		GeneralParamRegs:    regRange(3, 10),
		FPParamRegs:         regRange(101, 108),
		DoubleParamRegs:     regRange(101, 108),
		GeneralReturnRegs:   regRange(3, 4),
		FPReturnRegs:        regRange(101, 101),
		DoubleReturnRegs:    regRange(101, 101),
		NumRegsPerWideParam: 2,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}

// newPowerPC64Descriptor implements the 64-bit PowerPC ELFv2 ABI: R3-R10
// general parameters and one register per wide parameter since general
// registers are already 64 bits wide.
func newPowerPC64Descriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 PowerPC64,
		GeneralParamRegs:    regRange(3, 10),
		FPParamRegs:         regRange(101, 113),
		DoubleParamRegs:     regRange(101, 113),
		GeneralReturnRegs:   regRange(3, 4),
		FPReturnRegs:        regRange(101, 101),
		DoubleReturnRegs:    regRange(101, 101),
		NumRegsPerWideParam: 1,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}
