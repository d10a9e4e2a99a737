package arm64

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
	"github.com/2lambda123/avast-retdec/ir/irtest"
)

// TestBlWritesLinkRegisterAndEscapesAsCall covers BL's link-register
// write plus its call escape.
func TestBlWritesLinkRegisterAndEscapesAsCall(t *testing.T) {
	f := newFixture()

	err := f.translate(&DecodedInstruction{
		Address:  0x1000,
		Size:     4,
		Mnemonic: BL,
		Cond:     CondAL,
		Operands: []Operand{imm(0x2000)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x1004), f.readReg(lr))
	require.Equal(t, 1, len(f.Block.Escapes))
	require.Equal(t, irtest.EscapeCall, f.Block.Escapes[0].Kind)
	require.Equal(t, uint64(0x2000), f.Block.Escapes[0].Target)
}

func TestBUnconditionalEmitsBranchEscape(t *testing.T) {
	f := newFixture()

	err := f.translate(&DecodedInstruction{
		Mnemonic: B,
		Cond:     CondAL,
		Operands: []Operand{imm(0x3000)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, len(f.Block.Escapes))
	require.Equal(t, irtest.EscapeBranch, f.Block.Escapes[0].Kind)
}

// TestTbnzEmitsConditionalBranchEscape covers TBNZ's conditional-branch
// escape.
func TestTbnzEmitsConditionalBranchEscape(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0b100) // bit 2 set

	err := f.translate(&DecodedInstruction{
		Mnemonic: TBNZ,
		Cond:     CondAL,
		Operands: []Operand{reg(x1), imm(2), imm(0x4000)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, len(f.Block.Escapes))
	esc := f.Block.Escapes[0]
	require.Equal(t, irtest.EscapeConditionalBranch, esc.Kind)
	require.True(t, esc.CondTaken)
	require.Equal(t, uint64(0x4000), esc.Target)
}

// TestBlLinkRegisterPointsPastInstruction lifts "bl 0x110D8" at 0x1107C:
// LR receives 0x11080 and the call escape targets 0x110D8.
func TestBlLinkRegisterPointsPastInstruction(t *testing.T) {
	f := newFixture()

	err := f.translate(&DecodedInstruction{
		Address:  0x1107C,
		Size:     4,
		Mnemonic: BL,
		Cond:     CondAL,
		Operands: []Operand{imm(0x110D8)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x11080), f.readReg(lr))
	require.Equal(t, irtest.EscapeCall, f.Block.Escapes[0].Kind)
	require.Equal(t, uint64(0x110D8), f.Block.Escapes[0].Target)
}

func TestBConditionalEmitsConditionalBranchEscape(t *testing.T) {
	f := newFixture()
	f.setReg(flagZ, 1)

	err := f.translate(&DecodedInstruction{
		Mnemonic: B,
		Cond:     CondEQ,
		Operands: []Operand{imm(0x6000)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, len(f.Block.Escapes))
	esc := f.Block.Escapes[0]
	require.Equal(t, irtest.EscapeConditionalBranch, esc.Kind)
	require.True(t, esc.CondTaken)
	require.Equal(t, uint64(0x6000), esc.Target)
}

// TestTbnzTopBit: testing bit 63 of a value with the sign bit set takes
// the branch.
func TestTbnzTopBit(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0x8000000000000000)

	err := f.translate(&DecodedInstruction{
		Mnemonic: TBNZ,
		Cond:     CondAL,
		Operands: []Operand{reg(x1), imm(63), imm(0x1000)},
	})
	require.NoError(t, err)
	esc := f.Block.Escapes[0]
	require.Equal(t, irtest.EscapeConditionalBranch, esc.Kind)
	require.True(t, esc.CondTaken)
}

func TestTbzBranchesOnClearBit(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0)

	err := f.translate(&DecodedInstruction{
		Mnemonic: TBZ,
		Cond:     CondAL,
		Operands: []Operand{reg(x1), imm(5), imm(0x1000)},
	})
	require.NoError(t, err)
	require.True(t, f.Block.Escapes[0].CondTaken)
}

func TestCbzBranchesOnZero(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0)

	err := f.translate(&DecodedInstruction{
		Mnemonic: CBZ,
		Cond:     CondAL,
		Operands: []Operand{reg(x1), imm(0x7000)},
	})
	require.NoError(t, err)
	esc := f.Block.Escapes[0]
	require.Equal(t, irtest.EscapeConditionalBranch, esc.Kind)
	require.True(t, esc.CondTaken)
	require.Equal(t, uint64(0x7000), esc.Target)
}

func TestCbnzDoesNotTakeOnZero(t *testing.T) {
	f := newFixture()
	f.setReg(w1, 0)

	err := f.translate(&DecodedInstruction{
		Mnemonic: CBNZ,
		Cond:     CondAL,
		Operands: []Operand{reg(w1), imm(0x7000)},
	})
	require.NoError(t, err)
	require.False(t, f.Block.Escapes[0].CondTaken)
}

func TestBlrCallsThroughRegister(t *testing.T) {
	f := newFixture()
	f.setReg(x5, 0x9000)

	err := f.translate(&DecodedInstruction{
		Address:  0x100,
		Size:     4,
		Mnemonic: BLR,
		Cond:     CondAL,
		Operands: []Operand{reg(x5)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0x104), f.readReg(lr))
	require.Equal(t, irtest.EscapeCall, f.Block.Escapes[0].Kind)
	require.Equal(t, uint64(0x9000), f.Block.Escapes[0].Target)
}

func TestRetThroughExplicitRegister(t *testing.T) {
	f := newFixture()
	f.setReg(x5, 0xCAFEBABE)

	err := f.translate(&DecodedInstruction{
		Mnemonic: RET,
		Cond:     CondAL,
		Operands: []Operand{reg(x5)},
	})
	require.NoError(t, err)
	require.Equal(t, irtest.EscapeReturn, f.Block.Escapes[0].Kind)
	require.Equal(t, uint64(0xCAFEBABE), f.Block.Escapes[0].Target)
}

func TestRetDefaultsToLinkRegister(t *testing.T) {
	f := newFixture()
	f.setReg(lr, 0x5000)

	err := f.translate(&DecodedInstruction{
		Mnemonic: RET,
		Cond:     CondAL,
	})
	require.NoError(t, err)
	require.Equal(t, 1, len(f.Block.Escapes))
	require.Equal(t, irtest.EscapeReturn, f.Block.Escapes[0].Kind)
	require.Equal(t, uint64(0x5000), f.Block.Escapes[0].Target)
}
