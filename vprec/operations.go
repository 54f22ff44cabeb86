package vprec

// Kind names the four elementary arithmetic operators the wrapper lifts
// into the emulated format.
type Kind uint8

const (
	Add Kind = iota
	Sub
	Mul
	Div
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	default:
		return "?"
	}
}

// op32 implements the round-operate-round pipeline for float32: round
// operands on {FULL,IB}, perform the IEEE operation in hardware, then
// round the result on {FULL,OB}.
// IEEE mode short-circuits both rounds, so the four named wrappers below
// are bit-exact with the hardware operator when ctx.Mode() == ModeIEEE.
func op32(a, b float32, k Kind, ctx *Context) float32 {
	if ctx.mode == ModeFull || ctx.mode == ModeIB {
		a = Round32(a, true, ctx)
		b = Round32(b, true, ctx)
	}

	var r float32
	switch k {
	case Add:
		r = a + b
	case Sub:
		r = a - b
	case Mul:
		r = a * b
	case Div:
		r = a / b
	}

	if ctx.mode == ModeFull || ctx.mode == ModeOB {
		r = Round32(r, false, ctx)
	}
	return r
}

func op64(a, b float64, k Kind, ctx *Context) float64 {
	if ctx.mode == ModeFull || ctx.mode == ModeIB {
		a = Round64(a, true, ctx)
		b = Round64(b, true, ctx)
	}

	var r float64
	switch k {
	case Add:
		r = a + b
	case Sub:
		r = a - b
	case Mul:
		r = a * b
	case Div:
		r = a / b
	}

	if ctx.mode == ModeFull || ctx.mode == ModeOB {
		r = Round64(r, false, ctx)
	}
	return r
}

// AddF32 returns a+b, rounded per ctx.Mode(). Division by zero, NaN
// propagation and signed-zero behavior are whatever the binary32 hardware
// operator produces; the wrapper never special-cases them.
func AddF32(a, b float32, ctx *Context) float32 { return op32(a, b, Add, ctx) }
func SubF32(a, b float32, ctx *Context) float32 { return op32(a, b, Sub, ctx) }
func MulF32(a, b float32, ctx *Context) float32 { return op32(a, b, Mul, ctx) }
func DivF32(a, b float32, ctx *Context) float32 { return op32(a, b, Div, ctx) }

func AddF64(a, b float64, ctx *Context) float64 { return op64(a, b, Add, ctx) }
func SubF64(a, b float64, ctx *Context) float64 { return op64(a, b, Sub, ctx) }
func MulF64(a, b float64, ctx *Context) float64 { return op64(a, b, Mul, ctx) }
func DivF64(a, b float64, ctx *Context) float64 { return op64(a, b, Div, ctx) }
