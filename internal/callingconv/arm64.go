package callingconv

// newARM64Descriptor implements the AAPCS64 parameter/return register
// assignment: X0-X7 general parameters, V0-V7 for FP/double/vector
// (overlaid across the three categories since the vector registers are
// the same physical file at different lane widths), X0-X1 general return,
// V0-V1 FP/double/vector return, composites larger than 16 bytes passed
// on the stack, stack parameters right-to-left.
func newARM64Descriptor(b Binding) *Descriptor {
	return &Descriptor{
		Tag:                 ARM64,
		GeneralParamRegs:    regRange(0, 7),
		FPParamRegs:         regRange(100, 107),
		DoubleParamRegs:     regRange(100, 107),
		VectorParamRegs:     regRange(100, 107),
		GeneralReturnRegs:   regRange(0, 1),
		FPReturnRegs:        regRange(100, 101),
		DoubleReturnRegs:    regRange(100, 101),
		VectorReturnRegs:    regRange(100, 101),
		NumRegsPerWideParam: 1,
		RegistersOverlay:    true,
		StackDirection:      RightToLeft,
		CompositesOnStack:   true,
	}
}

func regRange(lo, hi int) []RegisterID {
	out := make([]RegisterID, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, RegisterID(i))
	}
	return out
}
