package callingconv

// newARMDescriptor implements the 32-bit AAPCS: R0-R3 general parameters
// and return, D0-D7 double parameters (S0-S15 overlay the same storage as
// single-precision), composites larger than 4 bytes go on the stack,
// stack parameters right-to-left.
func newARMDescriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 ARM,
		GeneralParamRegs:    regRange(0, 3),
		FPParamRegs:         regRange(100, 115),
		DoubleParamRegs:     regRange(100, 107),
		GeneralReturnRegs:   regRange(0, 1),
		FPReturnRegs:        regRange(100, 100),
		DoubleReturnRegs:    regRange(100, 100),
		NumRegsPerWideParam: 2,
		RegistersOverlay:    true,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}
