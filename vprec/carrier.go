// Package vprec implements a variable-precision floating-point emulation
// backend: given an IEEE-754 binary32 or binary64 value, it projects the
// value onto a hypothetical reduced format described by a (range, precision)
// pair, and lifts the four elementary arithmetic operators to that format.
package vprec

// rawBits is the unsigned integer storage behind a carrier float.
type rawBits interface {
	~uint32 | ~uint64
}

// layout describes the bit geometry of one of the two carrier formats.
// The rounder is written once against layout and rawBits, then instantiated
// for uint32/binary32 and uint64/binary64 rather than duplicated by hand.
type layout struct {
	width   uint  // total bits of the encoding
	expBits uint  // width of the biased-exponent field
	manBits uint  // width of the stored-mantissa field
	bias    int64 // exponent bias
}

var layout32 = layout{width: 32, expBits: 8, manBits: 23, bias: 127}
var layout64 = layout{width: 64, expBits: 11, manBits: 52, bias: 1023}

func (l layout) expLimit() uint64 { return uint64(1)<<l.expBits - 1 }
func (l layout) manMask() uint64  { return uint64(1)<<l.manBits - 1 }

// class is the five-way classification of a decoded carrier value.
// The original source's interflop_fpclassify_e mixes an IFP_ and an IFS_
// prefix on otherwise parallel names; that's a naming slip in the source,
// not a sixth state, so this is a plain five-variant enum.
type class uint8

const (
	classNormal class = iota
	classZero
	classSubnormal
	classInfinite
	classNaN
)

// fields is the decomposed (sign, biased exponent, mantissa) of a carrier
// value, independent of its width.
type fields struct {
	sign      uint8
	biasedExp uint64
	mantissa  uint64
}

func classify(f fields, l layout) class {
	if f.biasedExp == l.expLimit() {
		if f.mantissa == 0 {
			return classInfinite
		}
		return classNaN
	}
	if f.biasedExp == 0 {
		if f.mantissa == 0 {
			return classZero
		}
		return classSubnormal
	}
	return classNormal
}
