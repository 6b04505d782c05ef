// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ravel/internal/errors"
	"ravel/internal/reader"
	"ravel/internal/rewriter"
	"ravel/internal/term"
)

const PROMPT = ">> "

// Recall, typed alone on a line, re-feeds the previous residual as that
// line's whole input, the same way a shell's "!!" recalls the previous
// command. Recall is recognised only when it is the entire line.
const Recall = "!!"

// Start runs the REPL loop against in, rewriting each line with gas and
// printing the residual. The last residual is kept so that Recall can
// rewrite it again.
func Start(in io.Reader, out io.Writer, gas int) {
	scanner := bufio.NewScanner(in)
	var last string

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == Recall {
			if last == "" {
				fmt.Fprintln(out, "no previous result to recall")
				continue
			}
			line = last
		}

		b, err := reader.Read(line)
		if err != nil {
			if ce, ok := err.(*errors.CompilerError); ok {
				r := errors.NewReporter("<repl>", line)
				fmt.Fprintln(out, r.FormatError(ce))
			} else {
				fmt.Fprintln(out, err)
			}
			continue
		}

		residual := rewriter.Rewrite(b, gas)
		printed := term.Print(residual)
		last = printed
		fmt.Fprintln(out, color.GreenString(printed))
	}
}
