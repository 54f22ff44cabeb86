// Package vfcargs parses the adapter's command-line flags into a vprec
// Context, using the same flag names as the original backend's argp option
// table (interflop_vprec.c's options[]). This uses the standard library's
// flag package, since there is no CLI parsing framework to build on here.
package vfcargs

import (
	"flag"
	"fmt"

	"github.com/verificarlo/vprec-go/vprec"
)

// Config is the parsed result of a command line: the Context it describes,
// plus the adapter-level flags (input/output/log files, batch carrier
// selection, summary printing) that do not belong on Context itself.
type Config struct {
	Context *vprec.Context

	InputFile  string
	OutputFile string
	LogFile    string
	Binary32   bool
	Summary    bool
}

// Parse defines and parses the adapter's flag set against args (typically
// os.Args[1:]), returning a Config with a fully validated Context.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	ctx := vprec.NewContext()

	var (
		precBinary32  uint
		precBinary64  uint
		rangeBinary32 uint
		rangeBinary64 uint
		mode          string
		errorMode     string
		absErrExp     int64
		daz, ftz      bool
		preset        string
		inputFile     string
		outputFile    string
		logFile       string
		binary32      bool
		summary       bool
	)

	fs.UintVar(&precBinary32, "precision-binary32", ctx.Precision32(), "binary32 target mantissa width")
	fs.UintVar(&precBinary64, "precision-binary64", ctx.Precision64(), "binary64 target mantissa width")
	fs.UintVar(&rangeBinary32, "range-binary32", ctx.Range32(), "binary32 target exponent width")
	fs.UintVar(&rangeBinary64, "range-binary64", ctx.Range64(), "binary64 target exponent width")
	fs.StringVar(&mode, "mode", ctx.Mode().String(), "rounding mode: ieee, full, ib, ob")
	fs.StringVar(&errorMode, "error-mode", ctx.ErrorMode().String(), "error regime: rel, abs, all")
	fs.Int64Var(&absErrExp, "max-abs-error-exponent", ctx.AbsErrExp(), "absolute error exponent")
	fs.BoolVar(&daz, "daz", ctx.DAZ(), "denormals-are-zero: flush subnormal inputs to zero")
	fs.BoolVar(&ftz, "ftz", ctx.FTZ(), "flush-to-zero: flush subnormal outputs to zero")
	fs.StringVar(&preset, "preset", "", "named format preset, overrides precision/range flags")
	fs.StringVar(&inputFile, "input-file", "", "batch input file (one literal per line)")
	fs.StringVar(&outputFile, "output-file", "", "batch output file")
	fs.StringVar(&logFile, "log-file", "", "override VFC_BACKENDS_LOGFILE")
	fs.BoolVar(&binary32, "binary32", false, "batch mode reads/rounds binary32 literals instead of binary64")
	fs.BoolVar(&summary, "summary", false, "print a locale-aware one-line Context summary")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if preset != "" {
		if err := ctx.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("vfcargs: %w", err)
		}
	} else {
		if err := ctx.SetPrecision32(precBinary32); err != nil {
			return nil, fmt.Errorf("vfcargs: %w", err)
		}
		if err := ctx.SetPrecision64(precBinary64); err != nil {
			return nil, fmt.Errorf("vfcargs: %w", err)
		}
		if err := ctx.SetRange32(rangeBinary32); err != nil {
			return nil, fmt.Errorf("vfcargs: %w", err)
		}
		if err := ctx.SetRange64(rangeBinary64); err != nil {
			return nil, fmt.Errorf("vfcargs: %w", err)
		}
	}

	m, err := vprec.ParseMode(mode)
	if err != nil {
		return nil, fmt.Errorf("vfcargs: %w", err)
	}
	if err := ctx.SetMode(m); err != nil {
		return nil, fmt.Errorf("vfcargs: %w", err)
	}

	em, err := vprec.ParseErrorMode(errorMode)
	if err != nil {
		return nil, fmt.Errorf("vfcargs: %w", err)
	}
	if err := ctx.SetErrorMode(em); err != nil {
		return nil, fmt.Errorf("vfcargs: %w", err)
	}

	ctx.SetAbsErrExp(absErrExp)
	ctx.SetDAZ(daz)
	ctx.SetFTZ(ftz)

	return &Config{
		Context:    ctx,
		InputFile:  inputFile,
		OutputFile: outputFile,
		LogFile:    logFile,
		Binary32:   binary32,
		Summary:    summary,
	}, nil
}
