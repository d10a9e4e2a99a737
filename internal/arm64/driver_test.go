package arm64

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
)

// TestNewEmissionContextStartsUnconditional: newEmissionContext never sets
// inConditionalBody itself; TranslateOne sets it after construction for a
// non-AL/NV condition, as the second half does by hand.
func TestNewEmissionContextStartsUnconditional(t *testing.T) {
	f := newFixture()
	ctx := newEmissionContext(f.Env, f.Block, &DecodedInstruction{Cond: CondAL})
	require.False(t, ctx.inConditionalBody)

	if !CondEQ.isAlways() {
		ctx2 := newEmissionContext(f.Env, f.Block, &DecodedInstruction{Cond: CondEQ})
		ctx2.inConditionalBody = true
		require.True(t, ctx2.inConditionalBody)
	}
}

func TestTranslateOneDispatchesConditionedInstruction(t *testing.T) {
	f := newFixture()
	f.setReg(x1, 1)
	f.setReg(x2, 2)
	f.setReg(flagZ, 1)

	// A conditioned instruction with a semantics entry is dispatched to it
	// rather than to the fallback; CSEL gates on ctx.Instr.Cond itself, so
	// EQ holding selects X1.
	err := f.translate(&DecodedInstruction{
		Mnemonic: CSEL,
		Cond:     CondEQ,
		Operands: []Operand{reg(x0), reg(x1), reg(x2)},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.readReg(x0))
}

func TestMissingOperandReturnsTypedError(t *testing.T) {
	f := newFixture()

	err := f.translate(&DecodedInstruction{
		Mnemonic: ADD,
		Cond:     CondAL,
		Operands: []Operand{reg(x0)},
	})
	require.Error(t, err)
	_, ok := err.(*MalformedOperandCountError)
	require.True(t, ok)
}
