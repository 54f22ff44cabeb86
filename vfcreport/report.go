// Package vfcreport formats a Context for human consumption: a startup
// banner equivalent to the original backend's print_information_header,
// and a locale-aware summary line built with golang.org/x/text, for
// adapters that want to report parameters in the user's own number
// formatting conventions rather than hard-coded US English.
package vfcreport

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/verificarlo/vprec-go/vfclog"
	"github.com/verificarlo/vprec-go/vprec"
)

const envSilentLoad = "VFC_BACKENDS_SILENT_LOAD"

// Header logs the parameter dump print_information_header produced at
// backend load time, unless VFC_BACKENDS_SILENT_LOAD is set to "true".
func Header(l *vfclog.Logger, ctx *vprec.Context) {
	if strings.EqualFold(os.Getenv(envSilentLoad), "true") {
		return
	}

	l.Info("load backend with: \n")
	l.Info("\tprecision-binary32 = %d\n", ctx.Precision32())
	l.Info("\trange-binary32 = %d\n", ctx.Range32())
	l.Info("\tprecision-binary64 = %d\n", ctx.Precision64())
	l.Info("\trange-binary64 = %d\n", ctx.Range64())
	l.Info("\tmode = %s\n", ctx.Mode())
	l.Info("\terror-mode = %s\n", ctx.ErrorMode())
	if ctx.ErrorMode() == vprec.ErrorModeAbsolute || ctx.ErrorMode() == vprec.ErrorModeAll {
		l.Info("\tmax-abs-error-exponent = %d\n", ctx.AbsErrExp())
	}
	l.Info("\tdaz = %t\n", ctx.DAZ())
	l.Info("\tftz = %t\n", ctx.FTZ())
}

// Summary renders ctx as a single locale-aware line, using tag for number
// formatting (grouping separators, decimal marks).
func Summary(tag language.Tag, ctx *vprec.Context) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("binary32(prec=%d,range=%d) binary64(prec=%d,range=%d) mode=%s error=%s",
		ctx.Precision32(), ctx.Range32(), ctx.Precision64(), ctx.Range64(),
		ctx.Mode(), ctx.ErrorMode())
}

// SummaryDefault renders ctx with language.AmericanEnglish, for callers that
// have no locale preference of their own.
func SummaryDefault(ctx *vprec.Context) string {
	return Summary(language.AmericanEnglish, ctx)
}
