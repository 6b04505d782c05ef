// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"ravel/internal/errors"
	"ravel/internal/reader"
	"ravel/internal/rewriter"
	"ravel/internal/term"
	"ravel/repl"
)

func main() {
	gas := flag.Int("gas", 1_000_000, "gas budget for rewriting")
	trace := flag.Bool("trace", false, "print each step's head and stack sizes")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		repl.Start(os.Stdin, os.Stdout, *gas)
		return
	}

	path := args[0]
	var source []byte
	var err error
	if path == "-" {
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(path)
	}
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}

	b, err := reader.Read(string(source))
	if err != nil {
		if ce, ok := err.(*errors.CompilerError); ok {
			r := errors.NewReporter(path, string(source))
			fmt.Fprint(os.Stderr, r.FormatError(ce))
		} else {
			color.Red("%s", err)
		}
		os.Exit(1)
	}

	opts := []rewriter.Option{}
	if *trace {
		opts = append(opts, rewriter.WithTrace(traceLogger(os.Stderr)))
	}

	residual := rewriter.New(opts...).Rewrite(b, *gas)
	color.Green("%s", term.Print(residual))
}

func traceLogger(w io.Writer) func(rewriter.TraceStep) {
	n := 0
	return func(s rewriter.TraceStep) {
		n++
		fmt.Fprintf(w, "step %d: hand=%s code=%d data=%d sink=%d gas=%d\n",
			n, term.Print(s.Hand), s.CodeLen, s.DataLen, s.SinkLen, s.GasRemaining)
	}
}
