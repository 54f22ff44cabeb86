package vprec

import "fmt"

// Mode selects which side of an arithmetic operation is rounded to the
// target format.
type Mode uint8

const (
	// ModeIEEE is transparent passthrough: no rounding is applied anywhere.
	ModeIEEE Mode = iota
	// ModeFull rounds both operands and the result.
	ModeFull
	// ModeIB rounds operands only ("inbound").
	ModeIB
	// ModeOB rounds the result only ("outbound"). This is the default.
	ModeOB
	modeEnd
)

// DefaultMode is the mode a fresh Context starts with.
const DefaultMode = ModeOB

var modeNames = [...]string{
	ModeIEEE: "ieee",
	ModeFull: "full",
	ModeIB:   "ib",
	ModeOB:   "ob",
}

func (m Mode) String() string {
	if m < modeEnd {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode maps a CLI/config string to a Mode. It is the adapter-facing
// counterpart of Context.SetMode: a bad string never reaches the core as
// anything other than ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ErrorMode selects which of (relative, absolute) error the rounder
// enforces. It is not stored directly on Context; SetErrorMode decomposes
// it into the independent relErr/absErr flags, and ErrorMode reconstructs
// it from them.
type ErrorMode uint8

const (
	// ErrorModeRelative bounds only the relative (ulp) error.
	ErrorModeRelative ErrorMode = iota
	// ErrorModeAbsolute bounds only the absolute error, anchored at AbsErrExp.
	ErrorModeAbsolute
	// ErrorModeAll bounds both simultaneously.
	ErrorModeAll
	errorModeEnd
)

var errorModeNames = [...]string{
	ErrorModeRelative: "rel",
	ErrorModeAbsolute: "abs",
	ErrorModeAll:      "all",
}

func (e ErrorMode) String() string {
	if e < errorModeEnd {
		return errorModeNames[e]
	}
	return fmt.Sprintf("ErrorMode(%d)", uint8(e))
}

// ParseErrorMode maps a CLI/config string to an ErrorMode.
//
// The original source's switch on this value falls through the "all" case
// into a default branch with no side effect, so the visible result happens
// to still be (relErr=true, absErr=true), but relying on fallthrough is a
// latent bug waiting for the next case to gain a body. This port sets both
// flags in one explicit case instead of reproducing the fallthrough.
func ParseErrorMode(s string) (ErrorMode, error) {
	for e, name := range errorModeNames {
		if name == s {
			return ErrorMode(e), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidErrorMode, s)
}

func (e ErrorMode) flags() (relErr, absErr bool) {
	switch e {
	case ErrorModeRelative:
		return true, false
	case ErrorModeAbsolute:
		return false, true
	case ErrorModeAll:
		return true, true
	default:
		return false, false
	}
}

func errorModeFromFlags(relErr, absErr bool) ErrorMode {
	switch {
	case relErr && absErr:
		return ErrorModeAll
	case relErr:
		return ErrorModeRelative
	case absErr:
		return ErrorModeAbsolute
	default:
		// Unreachable through the validated setters: a Context always has
		// at least one of relErr/absErr set.
		return ErrorModeRelative
	}
}
