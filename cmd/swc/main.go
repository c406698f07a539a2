// Command swc is the compiler driver: it wires internal/lexer,
// internal/parser, and internal/sema into one process per spec §6.3's
// "file-level driver" contract.
package main

import (
	"fmt"
	"os"

	"github.com/swglang/swc/cmd/swc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
