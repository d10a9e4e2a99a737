package arm64

// semantics_misc.go covers NOP, which has no IR effect whatsoever.

func init() {
	register(NOP, func(ctx *EmissionContext) error { return nil })
}
