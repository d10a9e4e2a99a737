package arm64

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
)

// TestUdivByZeroYieldsZero: ARM64 integer division never traps, a
// divide-by-zero simply yields zero.
func TestUdivByZeroYieldsZero(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 42)
	f.setReg(x2, 0)

	err := f.translate(&DecodedInstruction{
		Mnemonic: UDIV,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1), reg(x2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), f.readReg(x0))
}

func TestSdivByZeroYieldsZero(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 42)
	f.setReg(x2, 0)

	err := f.translate(&DecodedInstruction{
		Mnemonic: SDIV,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1), reg(x2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), f.readReg(x0))
}

func TestSdivRoundsTowardZero(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0xFFFFFFFFFFFFFFF9) // -7
	f.setReg(x2, 2)

	err := f.translate(&DecodedInstruction{
		Mnemonic: SDIV,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1), reg(x2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFD), f.readReg(x0)) // -3
}

func TestUdivTruncatesTowardZero(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 7)
	f.setReg(x2, 2)

	err := f.translate(&DecodedInstruction{
		Mnemonic: UDIV,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1), reg(x2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(3), f.readReg(x0))
}
