package vprec

import "math"

// Round32 projects a binary32 carrier value onto the (range32, precision32)
// format recorded in ctx, under the active error regime. isInput selects
// whether daz (true) or ftz (false) applies in the underflow branch.
func Round32(x float32, isInput bool, ctx *Context) float32 {
	return round(x, isInput, ctx, layout32, ctx.range32, ctx.prec32,
		math.Float32bits, math.Float32frombits,
		roundNormalF32, roundSubnormalF32, powerOfTwoF32)
}

// Round64 projects a binary64 carrier value onto the (range64, precision64)
// format recorded in ctx.
func Round64(x float64, isInput bool, ctx *Context) float64 {
	return round(x, isInput, ctx, layout64, ctx.range64, ctx.prec64,
		math.Float64bits, math.Float64frombits,
		roundNormalF64, roundSubnormalF64, powerOfTwoF64)
}

// round implements the five-stage rounder once, generic over the
// carrier width via the bit-conversion and rounding-primitive functions
// passed in by Round32/Round64. X is the floating type (float32|float64),
// T its same-width raw-bits storage.
func round[X float32 | float64, T rawBits](
	x X, isInput bool, ctx *Context, l layout, rng, prec uint,
	bits func(X) T, fromBits func(T) X,
	roundNormal func(X, uint) X,
	roundSubnormal func(X, int64, uint) X,
	pow2 func(int64) X,
) X {
	// Stage 1: special passthrough.
	f := decode(bits(x), l)
	if c := classify(f, l); c == classInfinite || c == classNaN {
		return x
	}

	// Stage 2: target-range bounds.
	emax := int64(1)<<(rng-1) - 1
	emin := 1 - emax
	ex := unbiasedExponent(f, l)

	// Stage 3: overflow.
	if ex > emax {
		return x * fromBits(encode[T](fields{0, l.expLimit(), 0}, l)) // sign(x)*Inf
	}

	// Stage 4: underflow / subnormal region.
	if ex < emin {
		switch {
		case (isInput && ctx.daz) || (!isInput && ctx.ftz):
			return x * 0
		case f.biasedExp == 0 && f.mantissa == 0: // already signed zero
			return x
		default:
			precEff := prec
			if ctx.absErr {
				precEff = computeAbsErrPrec(ctx, true, 0, prec, l.manBits)
			}
			return roundSubnormal(x, emin, precEff)
		}
	}

	// Stage 5: normal region.
	if !ctx.absErr {
		return roundNormal(x, prec)
	}
	return handleNormalAbsErr(x, ex, prec, ctx, l.manBits, roundNormal, pow2)
}

// computeAbsErrPrec is the effective-precision table for the
// absolute-error regime.
func computeAbsErrPrec(ctx *Context, denormal bool, expDiff int64, prec, manBits uint) uint {
	if denormal {
		if ctx.relErr {
			// absErr ∧ relErr, denormal: min(|absErrExp|, prec)
			abs := ctx.absErrExp
			if abs < 0 {
				abs = -abs
			}
			return clampPrecision(min64(abs, int64(prec)), manBits)
		}
		// absErr only, denormal: absErrExp, clamped to a valid bit count.
		// The source compares abs(absErrExp) against the precision but
		// returns the (possibly negative) absErrExp itself; absErrExp is
		// documented to be <= 0 in normal operation, so a negative result
		// here is clamped to zero rather than propagated as a bit count.
		return clampPrecision(ctx.absErrExp, manBits)
	}
	if ctx.relErr {
		// absErr ∧ relErr, normal: min(expDiff, prec)
		return clampPrecision(min64(expDiff, int64(prec)), manBits)
	}
	// absErr only, normal: min(expDiff, P_carrier)
	return clampPrecision(min64(expDiff, int64(manBits)), manBits)
}

// handleNormalAbsErr applies the absolute-error regime in the normal region.
func handleNormalAbsErr[X float32 | float64](
	x X, ex int64, prec uint, ctx *Context, manBits uint,
	roundNormal func(X, uint) X, pow2 func(int64) X,
) X {
	expDiff := ex - ctx.absErrExp
	switch {
	case expDiff < -1:
		return copysignX(X(0), x)
	case expDiff == -1:
		return copysignX(pow2(ctx.absErrExp), x)
	default:
		pEff := computeAbsErrPrec(ctx, false, expDiff, prec, manBits)
		return roundNormal(x, pEff)
	}
}

// copysignX is math.Copysign generalized over float32|float64: both
// magnitudes passed through it here are exact powers of two (or zero), so
// the float64 round trip for the float32 instantiation loses no precision.
func copysignX[X float32 | float64](magnitude, sign X) X {
	return X(math.Copysign(float64(magnitude), float64(sign)))
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// roundNormalBits implements round-to-nearest-ties-to-even on the stored
// mantissa field, keeping the top p bits and rounding away the rest. A
// mantissa carry that pushes the exponent past the carrier's own limit
// produces the carrier's signed infinity.
func roundNormalBits[T rawBits](bits T, l layout, p uint) T {
	f := decode(bits, l)
	drop := l.manBits - p
	if drop == 0 {
		return bits
	}

	mant := f.mantissa
	keep := mant >> drop
	remainder := mant & (uint64(1)<<drop - 1)
	half := uint64(1) << (drop - 1)

	switch {
	case remainder > half:
		keep++
	case remainder == half && keep&1 == 1:
		keep++
	}

	biasedExp := f.biasedExp
	if keep == uint64(1)<<p {
		keep = 0
		biasedExp++
	}

	if biasedExp >= l.expLimit() {
		return encode[T](fields{f.sign, l.expLimit(), 0}, l)
	}
	return encode[T](fields{f.sign, biasedExp, keep << drop}, l)
}

func roundNormalF32(x float32, p uint) float32 {
	return math.Float32frombits(roundNormalBits(math.Float32bits(x), layout32, p))
}

func roundNormalF64(x float64, p uint) float64 {
	return math.Float64frombits(roundNormalBits(math.Float64bits(x), layout64, p))
}

// roundSubnormalF64 treats x as if the exponent floor were emin: the ulp of
// the result is 2^(emin-p+1), and x rounds to the nearest multiple of that
// ulp, ties to even. Division and multiplication by an exact power of two
// are themselves exact, so the only rounding performed is the explicit
// RoundToEven.
func roundSubnormalF64(x float64, emin int64, p uint) float64 {
	if p == 0 {
		return math.Copysign(0, x)
	}
	ulp := powerOfTwoF64(emin - int64(p) + 1)
	if ulp == 0 {
		return math.Copysign(0, x)
	}
	return math.RoundToEven(x/ulp) * ulp
}

func roundSubnormalF32(x float32, emin int64, p uint) float32 {
	if p == 0 {
		return float32(math.Copysign(0, float64(x)))
	}
	ulp := powerOfTwoF32(emin - int64(p) + 1)
	if ulp == 0 {
		return float32(math.Copysign(0, float64(x)))
	}
	return float32(math.RoundToEven(float64(x)/float64(ulp))) * ulp
}
