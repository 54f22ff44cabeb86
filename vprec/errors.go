package vprec

import "fmt"

// Sentinel errors a caller can match with errors.Is. Arithmetic entry points
// never return an error; only the parameter setters and
// preset resolution can fail.
var (
	ErrInvalidParameter = fmt.Errorf("vprec: invalid parameter")
	ErrUnknownPreset    = fmt.Errorf("vprec: unknown preset")
	ErrInvalidMode      = fmt.Errorf("vprec: invalid mode")
	ErrInvalidErrorMode = fmt.Errorf("vprec: invalid error mode")
)

// invalidParameterError names the rejected field and the value that
// triggered rejection, wrapping one of the sentinels above so callers
// can still errors.Is against ErrInvalidParameter.
type invalidParameterError struct {
	field string
	value any
}

func (e *invalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %v", ErrInvalidParameter, e.field, e.value)
}

func (e *invalidParameterError) Unwrap() error { return ErrInvalidParameter }

func newInvalidParameterError(field string, value any) error {
	return &invalidParameterError{field: field, value: value}
}

type unknownPresetError struct {
	name string
}

func (e *unknownPresetError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownPreset, e.name)
}

func (e *unknownPresetError) Unwrap() error { return ErrUnknownPreset }

func newUnknownPresetError(name string) error {
	return &unknownPresetError{name: name}
}
