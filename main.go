// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"ravel/grammar"
)

// main is a quick-parse entry point for the declarative, participle-based
// grammar: it reads a source file and prints its parsed form, without
// rewriting it. Use cmd/ravel-cli to actually run a program.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ravel <file.rv>")
		os.Exit(1)
	}

	path := os.Args[1]
	program, err := grammar.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}

	fmt.Println("Parsed program:")
	fmt.Println(program.String())

	color.Green("parsed %s", path)
}
