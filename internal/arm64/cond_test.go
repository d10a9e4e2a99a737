package arm64

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
	"github.com/2lambda123/avast-retdec/ir/irtest"
)

func TestCondInvertIsSymmetric(t *testing.T) {
	for c := condEQ; c <= condNV; c++ {
		require.Equal(t, c, c.invert().invert())
	}
}

func TestCondIsAlways(t *testing.T) {
	require.True(t, condAL.isAlways())
	require.True(t, condNV.isAlways())
	require.False(t, condEQ.isAlways())
}

func TestCondExprTable(t *testing.T) {
	tests := []struct {
		name       string
		cond       cond
		n, z, c, v uint64
		want       bool
	}{
		{"eq-taken", condEQ, 0, 1, 0, 0, true},
		{"eq-not-taken", condEQ, 0, 0, 0, 0, false},
		{"ne-taken", condNE, 0, 0, 0, 0, true},
		{"hs-taken", condHS, 0, 0, 1, 0, true},
		{"lo-taken", condLO, 0, 0, 0, 0, true},
		{"mi-taken", condMI, 1, 0, 0, 0, true},
		{"pl-taken", condPL, 0, 0, 0, 0, true},
		{"vs-taken", condVS, 0, 0, 0, 1, true},
		{"vc-taken", condVC, 0, 0, 0, 0, true},
		{"hi-taken", condHI, 0, 0, 1, 0, true},
		{"hi-not-taken-z", condHI, 0, 1, 1, 0, false},
		{"ls-taken", condLS, 0, 1, 1, 0, true},
		{"ge-taken-both-clear", condGE, 0, 0, 0, 0, true},
		{"ge-taken-both-set", condGE, 1, 0, 0, 1, true},
		{"lt-taken", condLT, 1, 0, 0, 0, true},
		{"gt-taken", condGT, 0, 0, 0, 0, true},
		{"gt-not-taken-z", condGT, 0, 1, 0, 0, false},
		{"le-taken-z", condLE, 0, 1, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.setReg(flagN, tt.n)
			f.setReg(flagZ, tt.z)
			f.setReg(flagC, tt.c)
			f.setReg(flagV, tt.v)

			got, err := tt.cond.expr(f.Block, f.Env)
			require.NoError(t, err)
			require.Equal(t, tt.want, irtest.Raw(got) != 0)
		})
	}
}

func TestCondExprRejectsAlwaysAndNever(t *testing.T) {
	f := newFixture()
	_, err := condAL.expr(f.Block, f.Env)
	require.Error(t, err)
	_, err = condNV.expr(f.Block, f.Env)
	require.Error(t, err)
}
