package vprec

import "math"

// decode splits a carrier's raw bits into (sign, biased exponent, mantissa).
// It never inspects the value's meaning (NaN/Inf/subnormal) beyond the pure
// bit split; classify does that on top of the result.
func decode[T rawBits](bits T, l layout) fields {
	u := uint64(bits)
	return fields{
		sign:      uint8(u >> (l.width - 1) & 1),
		biasedExp: (u >> l.manBits) & l.expLimit(),
		mantissa:  u & l.manMask(),
	}
}

// encode is the inverse of decode.
func encode[T rawBits](f fields, l layout) T {
	u := uint64(f.sign&1) << (l.width - 1)
	u |= (f.biasedExp & l.expLimit()) << l.manBits
	u |= f.mantissa & l.manMask()
	return T(u)
}

// powerOfTwo constructs the carrier value 2^i by direct exponent synthesis,
// exact for every i representable in the format. e is the biased exponent
// the value would carry; out-of-range e collapses to the nearest special
// value (+Inf above the format, +0 below the smallest subnormal).
func powerOfTwo[T rawBits](i int64, l layout) T {
	e := i + l.bias
	switch {
	case e >= int64(l.expLimit()):
		return encode[T](fields{0, l.expLimit(), 0}, l)
	case e <= -int64(l.manBits):
		return encode[T](fields{0, 0, 0}, l)
	case e <= 0:
		shift := uint(int64(l.manBits) - 1 + e)
		return encode[T](fields{0, 0, uint64(1) << shift}, l)
	default:
		return encode[T](fields{0, uint64(e), 0}, l)
	}
}

func powerOfTwoF32(i int64) float32 {
	return math.Float32frombits(powerOfTwo[uint32](i, layout32))
}

func powerOfTwoF64(i int64) float64 {
	return math.Float64frombits(powerOfTwo[uint64](i, layout64))
}

// unbiasedExponent returns the exponent of x in the target-format unbiased
// convention: biasedExp - bias for normals, 1 - bias for subnormals (the
// carrier's own floor).
func unbiasedExponent(f fields, l layout) int64 {
	if f.biasedExp == 0 {
		return 1 - l.bias
	}
	return int64(f.biasedExp) - l.bias
}
