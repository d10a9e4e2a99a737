package arm64

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
)

func TestAndsClearsCarryAndOverflow(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0xFF)
	f.setReg(x2, 0x0F)
	f.setReg(flagC, 1)
	f.setReg(flagV, 1)

	err := f.translate(&DecodedInstruction{
		Mnemonic: ANDS,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1), reg(x2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x0F), f.readReg(x0))
	require.Equal(t, uint64(0), f.readFlag(flagC))
	require.Equal(t, uint64(0), f.readFlag(flagV))
}

func TestOrnNegatesSecondOperand(t *testing.T) {
	f := newFixture()
	f.setReg(w1, 0x0000FF00)
	f.setReg(w2, 0xFFFFFFFF)

	err := f.translate(&DecodedInstruction{
		Mnemonic: ORN,
		Cond:     CondAL,
		Operands: []Operand{reg(w0), reg(w1), reg(w2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x0000FF00), f.readReg(w0)) // w1 | ~w2 == w1 | 0
}

func TestTstDiscardsResultButSetsZ(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0xF0)
	f.setReg(x2, 0x0F)

	err := f.translate(&DecodedInstruction{
		Mnemonic: TST,
		Cond:     CondAL,
		Operands: []Operand{reg(x1), reg(x2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.readFlag(flagZ))
}

func TestMovCopiesRegister(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 99)

	err := f.translate(&DecodedInstruction{
		Mnemonic: MOV,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(99), f.readReg(x0))
}

func TestMvnInverts(t *testing.T) {
	f := newFixture()
	f.setReg(w1, 0)

	err := f.translate(&DecodedInstruction{
		Mnemonic: MVN,
		Cond:     CondAL,
		Operands: []Operand{reg(w0), reg(w1)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0xFFFFFFFF), f.readReg(w0))
}

func TestSxtbSignExtendsNegativeByte(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0xFF) // byte -1

	err := f.translate(&DecodedInstruction{
		Mnemonic: SXTB,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), f.readReg(x0))
}

func TestUxtbZeroExtendsHighByteGarbage(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0xABCDEF42)

	err := f.translate(&DecodedInstruction{
		Mnemonic: UXTB,
		Cond:     CondAL,
		Operands: []Operand{reg(x0), reg(x1)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x42), f.readReg(x0))
}
