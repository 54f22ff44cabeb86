// Package vfcbatch rounds a stream of decimal literals through a vprec
// Context, for the adapter's --input-file/--output-file mode: a way to
// exercise the emulated format against a fixed data set without wiring
// vprec into a running program's instruction stream.
package vfcbatch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verificarlo/vprec-go/vprec"
)

// RunF64 reads whitespace/newline-separated binary64 literals from r,
// rounds each through ctx via vprec.Round64 (the file-driven datum is
// treated as an input, not an operation result), and writes one result per
// line to w in Go's default %v formatting.
func RunF64(r io.Reader, w io.Writer, ctx *vprec.Context) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for scanner.Scan() {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("vfcbatch: parse %q: %w", tok, err)
		}
		rounded := vprec.Round64(x, true, ctx)
		if _, err := fmt.Fprintln(bw, rounded); err != nil {
			return fmt.Errorf("vfcbatch: write: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("vfcbatch: read: %w", err)
	}
	return nil
}

// RunF32 is RunF64's binary32 counterpart.
func RunF32(r io.Reader, w io.Writer, ctx *vprec.Context) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for scanner.Scan() {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		x, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return fmt.Errorf("vfcbatch: parse %q: %w", tok, err)
		}
		rounded := vprec.Round32(float32(x), true, ctx)
		if _, err := fmt.Fprintln(bw, rounded); err != nil {
			return fmt.Errorf("vfcbatch: write: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("vfcbatch: read: %w", err)
	}
	return nil
}
