package vprec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "add", Add.String())
	assert.Equal(t, "sub", Sub.String())
	assert.Equal(t, "mul", Mul.String())
	assert.Equal(t, "div", Div.String())
	assert.Equal(t, "?", Kind(99).String())
}

// At full carrier precision every mode collapses to the plain hardware
// operator: rounding to the carrier's own format is the identity.
func TestOperationsFullPrecisionAllModes(t *testing.T) {
	for _, mode := range []Mode{ModeIEEE, ModeFull, ModeIB, ModeOB} {
		ctx := NewContext()
		require.NoError(t, ctx.SetMode(mode))

		a, b := 7.0, -3.0
		assert.Equal(t, a+b, AddF64(a, b, ctx), "mode %v add", mode)
		assert.Equal(t, a-b, SubF64(a, b, ctx), "mode %v sub", mode)
		assert.Equal(t, a*b, MulF64(a, b, ctx), "mode %v mul", mode)
		assert.Equal(t, a/b, DivF64(a, b, ctx), "mode %v div", mode)
	}
}

// The wrapper does not special-case division by zero, NaN propagation, or
// signed zero: whatever the carrier hardware produces passes straight
// through, in every mode.
func TestOperationsNoSpecialCasing(t *testing.T) {
	for _, mode := range []Mode{ModeIEEE, ModeFull, ModeIB, ModeOB} {
		ctx := NewContext()
		require.NoError(t, ctx.SetMode(mode))

		assert.True(t, math.IsInf(DivF64(1.0, 0.0, ctx), 1), "mode %v", mode)
		assert.True(t, math.IsInf(DivF64(1.0, math.Copysign(0, -1), ctx), -1), "mode %v", mode)
		assert.True(t, math.IsNaN(DivF64(0.0, 0.0, ctx)), "mode %v", mode)
		assert.True(t, math.IsNaN(AddF64(math.NaN(), 1.0, ctx)), "mode %v", mode)

		got := MulF64(math.Copysign(0, -1), 1.0, ctx)
		assert.True(t, math.Signbit(got), "mode %v", mode)
	}
}

// ModeIB rounds only the operands; a result that would itself need rounding
// is left at full carrier precision.
func TestOperationsIBRoundsOperandsOnly(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.SetMode(ModeIB))
	require.NoError(t, ctx.SetErrorMode(ErrorModeRelative))
	require.NoError(t, ctx.SetPrecision64(2)) // [1,2): {1.0, 1.25, 1.5, 1.75}

	a := 1.0 + math.Ldexp(1, -40) // rounds down to 1.0 on input
	b := 1.0
	got := AddF64(a, b, ctx)
	assert.Equal(t, 2.0, got) // exact hardware sum of the rounded operands
}

// ModeOB rounds only the result; operands pass through hardware untouched.
func TestOperationsOBRoundsResultOnly(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.SetMode(ModeOB))
	require.NoError(t, ctx.SetErrorMode(ErrorModeRelative))
	require.NoError(t, ctx.SetPrecision64(10))
	require.NoError(t, ctx.SetRange64(11))

	got := AddF64(1.0, math.Ldexp(1, -30), ctx)
	assert.Equal(t, 1.0, got) // matches TestScenarioS1S2
}

// ModeFull rounds operands and result; it can diverge from both IB-only and
// OB-only modes (see TestModeMonotonicity for a worked-out divergence).
func TestOperationsFullRoundsBothSides(t *testing.T) {
	ctx := relOnlyContext(t, 1, 8)
	require.NoError(t, ctx.SetMode(ModeFull))

	got := MulF64(1.3, 1.3, ctx)
	assert.Equal(t, 2.0, got)
}
