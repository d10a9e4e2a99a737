package callingconv

import (
	"testing"

	"github.com/2lambda123/avast-retdec/internal/testing/require"
)

// testBinding is a minimal Binding used only by this package's tests: it
// maps every interface{} value to its own RegisterID when it is one, and
// recognizes the sentinel stackVar value as a stack variable.
type testBinding struct {
	word int
}

type stackVar struct{}

func (b testBinding) WordSize() int { return b.word }

func (b testBinding) RegisterID(v interface{}) (RegisterID, bool) {
	id, ok := v.(RegisterID)
	return id, ok
}

func (b testBinding) IsStackVariable(v interface{}) bool {
	_, ok := v.(stackVar)
	return ok
}

func TestRegistryCreateReturnsFalseForUnregisteredTag(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Create(ARM64, testBinding{word: 8})
	require.False(t, ok)
}

func TestRegistryCreateBuildsDescriptorWithWordSize(t *testing.T) {
	r := NewRegistry()
	r.RegisterDefaults()

	d, ok := r.Create(ARM64, testBinding{word: 8})
	require.True(t, ok)
	require.Equal(t, ARM64, d.Tag)
	require.Equal(t, 8, d.MaxBytesPerStackParam())
}

func TestRegisterIsIdempotentLastWriterWins(t *testing.T) {
	r := NewRegistry()
	r.Register(Cdecl, newCdeclDescriptor)
	r.Register(Cdecl, newStdcallDescriptor)

	d, ok := r.Create(Cdecl, testBinding{word: 4})
	require.True(t, ok)
	require.Equal(t, Stdcall, d.Tag)
}

func TestArm64DescriptorCoversGeneralParamRegisters(t *testing.T) {
	r := NewRegistry()
	r.RegisterDefaults()
	d, ok := r.Create(ARM64, testBinding{word: 8})
	require.True(t, ok)

	require.True(t, d.ValueCanBeParameter(testBinding{}, RegisterID(0)))
	require.True(t, d.ValueCanBeParameter(testBinding{}, RegisterID(7)))
	require.False(t, d.ValueCanBeParameter(testBinding{}, RegisterID(8)))
	require.True(t, d.ValueCanBeParameter(testBinding{}, stackVar{}))
}

func TestArm64DescriptorReturnRegisters(t *testing.T) {
	r := NewRegistry()
	r.RegisterDefaults()
	d, ok := r.Create(ARM64, testBinding{word: 8})
	require.True(t, ok)

	require.True(t, d.ValueCanHoldReturn(testBinding{}, RegisterID(0)))
	require.True(t, d.ValueCanHoldReturn(testBinding{}, RegisterID(1)))
	require.False(t, d.ValueCanHoldReturn(testBinding{}, RegisterID(2)))
}

func TestSystemVAndMicrosoftX64DifferInParamCount(t *testing.T) {
	r := NewRegistry()
	r.RegisterDefaults()

	sysv, ok := r.Create(SystemVX64, testBinding{word: 8})
	require.True(t, ok)
	msvc, ok := r.Create(MicrosoftX64, testBinding{word: 8})
	require.True(t, ok)

	require.Equal(t, 6, len(sysv.GeneralParamRegs))
	require.Equal(t, 4, len(msvc.GeneralParamRegs))
	require.True(t, msvc.RegistersOverlay)
}

func TestTagStringRoundTrips(t *testing.T) {
	require.Equal(t, "arm64", ARM64.String())
	require.Equal(t, "systemv_x64", SystemVX64.String())
}
