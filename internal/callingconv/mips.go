package callingconv

// newMIPSDescriptor implements the o32 MIPS ABI: A0-A3 general parameters,
// V0-V1 return, F12-F15 FP/double parameters (two registers per
// double-precision value), stack parameters left-to-right.
func newMIPSDescriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 MIPS,
		GeneralParamRegs:    regRange(4, 7),
		FPParamRegs:         regRange(112, 115),
		DoubleParamRegs:     regRange(112, 115),
		GeneralReturnRegs:   regRange(2, 3),
		FPReturnRegs:        regRange(112, 112),
		DoubleReturnRegs:    regRange(112, 112),
		NumRegsPerWideParam: 2,
		StackDirection:      LeftToRight,
		CompositesOnStack:   true,
	}
}

// newMIPS64Descriptor implements the n64 MIPS ABI: A0-A7 general
// parameters, V0-V1 return, F12-F19 FP/double parameters, one register per
// wide parameter since general registers are already 64 bits wide.
func newMIPS64Descriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 MIPS64,
		GeneralParamRegs:    regRange(4, 11),
		FPParamRegs:         regRange(112, 119),
		DoubleParamRegs:     regRange(112, 119),
		GeneralReturnRegs:   regRange(2, 3),
		FPReturnRegs:        regRange(112, 112),
		DoubleReturnRegs:    regRange(112, 112),
		NumRegsPerWideParam: 1,
		StackDirection:      LeftToRight,
		CompositesOnStack:   true,
	}
}
