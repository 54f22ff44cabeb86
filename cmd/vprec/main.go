// Command vprec is the adapter binary: it parses format parameters from the
// command line, reports them the way the original backend reported its
// load-time configuration, optionally prints a locale-aware summary line,
// and optionally runs a batch rounding pass (binary64, or binary32 with
// --binary32) over an input file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/verificarlo/vprec-go/vfcargs"
	"github.com/verificarlo/vprec-go/vfcbatch"
	"github.com/verificarlo/vprec-go/vfclog"
	"github.com/verificarlo/vprec-go/vfcreport"
)

const backendHeader = "vprec"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("vprec", flag.ContinueOnError)
	cfg, err := vfcargs.Parse(fs, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if cfg.LogFile != "" {
		os.Setenv("VFC_BACKENDS_LOGFILE", cfg.LogFile)
	}
	logger := vfclog.NewFromEnv(backendHeader)
	vfcreport.Header(logger, cfg.Context)

	if cfg.Summary {
		fmt.Println(vfcreport.SummaryDefault(cfg.Context))
	}

	if cfg.InputFile == "" {
		return 0
	}

	in, err := os.Open(cfg.InputFile)
	if err != nil {
		logger.Warning("cannot open input file %s: %v\n", cfg.InputFile, err)
		return 1
	}
	defer in.Close()

	out := os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			logger.Warning("cannot create output file %s: %v\n", cfg.OutputFile, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	runBatch := vfcbatch.RunF64
	if cfg.Binary32 {
		runBatch = vfcbatch.RunF32
	}
	if err := runBatch(in, out, cfg.Context); err != nil {
		logger.Warning("batch run failed: %v\n", err)
		return 1
	}
	return 0
}
