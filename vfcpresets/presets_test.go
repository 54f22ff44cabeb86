package vfcpresets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesMatchesLookup(t *testing.T) {
	for _, name := range Names() {
		prec, rng, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Greater(t, prec, uint(0), name)
		assert.Greater(t, rng, uint(0), name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, _, err := Lookup("does-not-exist")
	assert.Error(t, err)
}

func TestStoreBinary16Identity(t *testing.T) {
	// 1.5 is exactly representable in binary16: projecting and storing it
	// round trips unchanged.
	got := StoreBinary16(1.5)
	assert.Equal(t, float32(1.5), got)
}

func TestStoreBinary16RoundsMantissa(t *testing.T) {
	// binary16 has a 10-bit mantissa; this value needs more bits than that
	// and must move toward a representable neighbor.
	x := float32(1.0) + float32(1)/float32(1<<20)
	got := StoreBinary16(x)
	assert.Equal(t, float32(1.0), got)
}
