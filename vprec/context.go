package vprec

import "github.com/verificarlo/vprec-go/imath"

// Context carries the format parameters shared by every arithmetic call:
// the target (range, precision) for each carrier, the rounding mode, the
// active error regime and the denormal flush flags.
//
// A Context is created with NewContext, mutated only through its setters,
// and then threaded by pointer through Round32/Round64 and the Add/Sub/
// Mul/Div family. Arithmetic calls treat it as read-only, which makes
// them safe to call concurrently as long as no goroutine is
// concurrently calling a setter on the same Context.
type Context struct {
	prec32, prec64   uint
	range32, range64 uint
	mode             Mode
	relErr, absErr   bool
	absErrExp        int64
	daz, ftz         bool
}

// minNormalExpDouble is the smallest unbiased exponent of a normal binary64
// value, i.e. 1-1023. The default AbsErrExp is its negation, matching the
// original's VPREC_RANGE_BINARY64_DEFAULT-derived default.
const minNormalExpDouble = 1 - 1023

// NewContext returns a Context with every field at its spec-mandated
// default: full carrier precision and range, mode OB, relative error only,
// absErrExp = -minNormalExp(binary64), daz and ftz both off.
func NewContext() *Context {
	return &Context{
		prec32:    PrecisionMax32,
		range32:   RangeMax32,
		prec64:    PrecisionMax64,
		range64:   RangeMax64,
		mode:      DefaultMode,
		relErr:    true,
		absErr:    false,
		absErrExp: -minNormalExpDouble,
	}
}

func (c *Context) Precision32() uint { return c.prec32 }
func (c *Context) Precision64() uint { return c.prec64 }
func (c *Context) Range32() uint     { return c.range32 }
func (c *Context) Range64() uint     { return c.range64 }
func (c *Context) Mode() Mode        { return c.mode }
func (c *Context) AbsErrExp() int64  { return c.absErrExp }
func (c *Context) DAZ() bool         { return c.daz }
func (c *Context) FTZ() bool         { return c.ftz }

// ErrorMode reconstructs the current error regime from the independent
// relErr/absErr flags (the mode-to-error-mode encoding is read back
// instead of written).
func (c *Context) ErrorMode() ErrorMode { return errorModeFromFlags(c.relErr, c.absErr) }

// SetPrecision32 sets the binary32 target mantissa width.
// Range: [PrecisionMin32, PrecisionMax32].
func (c *Context) SetPrecision32(precision uint) error {
	if precision < PrecisionMin32 || precision > PrecisionMax32 {
		return newInvalidParameterError("precision32", precision)
	}
	c.prec32 = precision
	return nil
}

// SetPrecision64 sets the binary64 target mantissa width.
// Range: [PrecisionMin64, PrecisionMax64].
func (c *Context) SetPrecision64(precision uint) error {
	if precision < PrecisionMin64 || precision > PrecisionMax64 {
		return newInvalidParameterError("precision64", precision)
	}
	c.prec64 = precision
	return nil
}

// SetRange32 sets the binary32 target exponent width.
// Range: [RangeMin32, RangeMax32].
func (c *Context) SetRange32(rng uint) error {
	if rng < RangeMin32 || rng > RangeMax32 {
		return newInvalidParameterError("range32", rng)
	}
	c.range32 = rng
	return nil
}

// SetRange64 sets the binary64 target exponent width.
// Range: [RangeMin64, RangeMax64].
func (c *Context) SetRange64(rng uint) error {
	if rng < RangeMin64 || rng > RangeMax64 {
		return newInvalidParameterError("range64", rng)
	}
	c.range64 = rng
	return nil
}

// SetMode sets the arithmetic mode.
func (c *Context) SetMode(mode Mode) error {
	if mode >= modeEnd {
		return newInvalidParameterError("mode", mode)
	}
	c.mode = mode
	return nil
}

// SetErrorMode sets the error regime, decomposing it into the independent
// relErr/absErr flags.
func (c *Context) SetErrorMode(mode ErrorMode) error {
	if mode >= errorModeEnd {
		return newInvalidParameterError("errorMode", mode)
	}
	c.relErr, c.absErr = mode.flags()
	return nil
}

// SetAbsErrExp sets the absolute-error exponent e_abs. Any int64 is
// syntactically accepted: the documented operating constraint is
// absErrExp <= 0 (see computeAbsErrPrec's denormal+abs handling), but a
// positive value is not itself a parameter-validation failure, only an
// unusual configuration.
func (c *Context) SetAbsErrExp(exp int64) error {
	c.absErrExp = exp
	return nil
}

// SetDAZ sets whether subnormal inputs are flushed to signed zero.
func (c *Context) SetDAZ(daz bool) { c.daz = daz }

// SetFTZ sets whether subnormal outputs are flushed to signed zero.
func (c *Context) SetFTZ(ftz bool) { c.ftz = ftz }

// clampPrecision keeps a computed effective-precision bit count within the
// carrier's representable mantissa width; imath.Clamp is a generic
// integer-range helper reused here instead of hand-rolling a min/max pair.
func clampPrecision(p int64, manBits uint) uint {
	return uint(imath.Clamp(p, 0, int64(manBits)))
}
