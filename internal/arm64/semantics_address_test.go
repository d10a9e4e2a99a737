package arm64

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
)

func TestAdrUsesResolvedImmediateDirectly(t *testing.T) {
	f := newFixture()

	err := f.translate(&DecodedInstruction{
		Address:  0x1004,
		Mnemonic: ADR,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), imm(0x1010)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x1010), f.readReg(x0))
}

// TestAdrpTrustsResolvedPageAddress: a page-aligned immediate is the
// disassembler's already-computed target and is used as-is.
func TestAdrpTrustsResolvedPageAddress(t *testing.T) {
	f := newFixture()

	err := f.translate(&DecodedInstruction{
		Address:  0x1234,
		Mnemonic: ADRP,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), imm(0x2000)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x2000), f.readReg(x0))
}

// TestAdrpFoldsBareImmediate: a non-page-aligned immediate cannot be a
// computed page address, so the raw page count is folded against the
// current instruction's page explicitly.
func TestAdrpFoldsBareImmediate(t *testing.T) {
	f := newFixture()

	err := f.translate(&DecodedInstruction{
		Address:  0x11234,
		Mnemonic: ADRP,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), imm(3)},
	})
	require.NoError(t, err)
	// page(0x11234) + (3 << 12) == 0x11000 + 0x3000.
	require.Equal(t, uint64(0x14000), f.readReg(x0))
}
