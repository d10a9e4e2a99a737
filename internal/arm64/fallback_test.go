package arm64

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
)

// TestUnknownMnemonicFallsBackToAsmCall: a mnemonic with no semantics-table
// entry becomes an opaque asm call instead of aborting translation.
func TestUnknownMnemonicFallsBackToAsmCall(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 7)

	err := f.translate(&DecodedInstruction{
		Mnemonic: MnemonicInvalid,
		Cond:     CondAL,
		Operands: []Operand{reg(x1), imm(3)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, len(f.Block.Asm))
	require.Equal(t, []uint64{7, 3}, f.Block.Asm[0].Args)
}

func TestFallbackRejectsMemoryOperand(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 0x1000)

	err := f.translate(&DecodedInstruction{
		Mnemonic: MnemonicInvalid,
		Cond:     CondAL,
		Operands: []Operand{{Kind: OperandMemory, Mem: Memory{Base: x1}}},
	})
	require.Error(t, err)
}

// TestFallbackStoresResultIntoWriteOperand: the asm call's result lands
// in the first write-role register operand.
func TestFallbackStoresResultIntoWriteOperand(t *testing.T) {
	f := newFixture()
	f.setReg(x0, 0x5555)
	f.setReg(x1, 7)

	err := f.translate(&DecodedInstruction{
		Mnemonic: MnemonicInvalid,
		Cond:     CondAL,
		Operands: []Operand{
			{Kind: OperandRegister, Reg: x0, Access: AccessWrite},
			reg(x1),
		},
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{0x5555, 7}, f.Block.Asm[0].Args)
	// The reference evaluator's asm calls return zero.
	require.Equal(t, uint64(0), f.readReg(x0))
}

// TestConditionedFallbackNotTakenKeepsDestination: an unhandled mnemonic
// with a real condition prepends the predicate to the asm call's
// arguments, and a false predicate leaves the destination untouched.
func TestConditionedFallbackNotTakenKeepsDestination(t *testing.T) {
	f := newFixture()
	f.setReg(x0, 0x5555)
	f.setReg(x1, 7)
	f.setReg(flagZ, 0) // EQ does not hold

	err := f.translate(&DecodedInstruction{
		Mnemonic: MnemonicInvalid,
		Cond:     CondEQ,
		Operands: []Operand{
			{Kind: OperandRegister, Reg: x0, Access: AccessWrite},
			reg(x1),
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, len(f.Block.Asm))
	require.Equal(t, []uint64{0, 0x5555, 7}, f.Block.Asm[0].Args)
	require.Equal(t, uint64(0x5555), f.readReg(x0))
}

func TestConditionedFallbackTakenStoresResult(t *testing.T) {
	f := newFixture()
	f.setReg(x0, 0x5555)
	f.setReg(flagZ, 1) // EQ holds

	err := f.translate(&DecodedInstruction{
		Mnemonic: MnemonicInvalid,
		Cond:     CondEQ,
		Operands: []Operand{
			{Kind: OperandRegister, Reg: x0, Access: AccessWrite},
		},
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0x5555}, f.Block.Asm[0].Args)
	require.Equal(t, uint64(0), f.readReg(x0))
}

// TestUnhandledReporterFiresOncePerMnemonic: the driver notifies the
// injected reporter the first time a mnemonic falls through to the
// fallback, then stays quiet for later instances of the same opcode.
func TestUnhandledReporterFiresOncePerMnemonic(t *testing.T) {
	f := newFixture()
	var reports []string
	f.Trans.Reporter = func(e *UnhandledInstructionError) {
		reports = append(reports, e.Mnemonic)
	}

	for i := 0; i < 3; i++ {
		err := f.translate(&DecodedInstruction{Mnemonic: MnemonicInvalid, Cond: CondAL})
		require.NoError(t, err)
	}
	require.Equal(t, 1, len(reports))
	require.Equal(t, "mnemonic(0)", reports[0])
}
