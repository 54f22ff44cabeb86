// Package vfcpresets exposes the named format presets of vprec for adapter
// and report code, plus a storage round trip for the one preset that has a
// genuine hardware storage type in the example pack: binary16, via
// x448/float16. None of the other presets (bfloat16, tensorfloat, fp24,
// PXR24) have a corresponding encode/decode type anywhere in the retrieved
// corpus, so they are exposed only as (precision, range) pairs.
package vfcpresets

import (
	"github.com/x448/float16"

	"github.com/verificarlo/vprec-go/vprec"
)

// Names lists every preset vprec.ParsePreset accepts, in table order.
func Names() []string {
	return []string{"binary16", "binary32", "bfloat16", "tensorfloat", "fp24", "PXR24"}
}

// Lookup resolves a preset name to its (precision, range) pair without
// touching a Context, for adapters that want to display the table (e.g. a
// `--list-presets` flag) without constructing one.
func Lookup(name string) (precision, rng uint, err error) {
	p, err := vprec.ParsePreset(name)
	if err != nil {
		return 0, 0, err
	}
	return p.Precision(), p.Range(), nil
}

// StoreBinary16 rounds x to vprec's binary16 preset and returns the
// round-tripped value as it would read back out of 16-bit hardware storage:
// Round32 projects onto the preset's (precision, range), and the float16
// encode/decode then confirms that projection actually fits a real 16-bit
// carrier, not just a simulated one.
func StoreBinary16(x float32) float32 {
	ctx := vprec.NewContext()
	// ApplyPreset cannot fail for a name from Names(); the error is
	// structurally unreachable here.
	_ = ctx.ApplyPreset("binary16")
	rounded := vprec.Round32(x, false, ctx)
	return float16.Fromfloat32(rounded).Float32()
}
