package vfcreport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/verificarlo/vprec-go/vfclog"
	"github.com/verificarlo/vprec-go/vprec"
)

func TestHeaderWritesAllFields(t *testing.T) {
	t.Setenv(envSilentLoad, "")
	var buf bytes.Buffer
	l := vfclog.New(&buf, "vprec", false, true)
	ctx := vprec.NewContext()
	Header(l, ctx)

	out := buf.String()
	assert.Contains(t, out, "precision-binary32 = 23")
	assert.Contains(t, out, "mode = ob")
	assert.Contains(t, out, "error-mode = rel")
	assert.NotContains(t, out, "max-abs-error-exponent")
}

func TestHeaderShowsAbsErrExpWhenRelevant(t *testing.T) {
	t.Setenv(envSilentLoad, "")
	var buf bytes.Buffer
	l := vfclog.New(&buf, "vprec", false, true)
	ctx := vprec.NewContext()
	require.NoError(t, ctx.SetErrorMode(vprec.ErrorModeAbsolute))
	Header(l, ctx)
	assert.Contains(t, buf.String(), "max-abs-error-exponent")
}

func TestHeaderSilentLoad(t *testing.T) {
	t.Setenv(envSilentLoad, "true")
	var buf bytes.Buffer
	l := vfclog.New(&buf, "vprec", false, true)
	Header(l, vprec.NewContext())
	assert.Empty(t, buf.String())
}

func TestSummaryContainsParameters(t *testing.T) {
	ctx := vprec.NewContext()
	require.NoError(t, ctx.SetPrecision32(10))
	s := Summary(language.AmericanEnglish, ctx)
	assert.Contains(t, s, "prec=10")
	assert.Contains(t, s, "mode=ob")
}

func TestSummaryDefault(t *testing.T) {
	ctx := vprec.NewContext()
	assert.Equal(t, Summary(language.AmericanEnglish, ctx), SummaryDefault(ctx))
}
