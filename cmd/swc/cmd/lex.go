package cmd

import (
	"fmt"
	"os"

	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>...",
	Short: "Tokenize one or more source files and print the resulting tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	reg := newSVRegistry()
	var allDiags []diag.Diagnostic

	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sv, fileDiags := lexer.Lex(path, src)
		svRef := reg.add(path, sv)
		for _, d := range fileDiags {
			d.SrcView = svRef
			allDiags = append(allDiags, d)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "%s: %d tokens\n", path, len(sv.Tokens()))
		}
		if !jsonOutput {
			for _, t := range sv.Tokens() {
				fmt.Printf("%-20s %q\n", t.ID.String(), sv.TokenText(t))
			}
		}
	}

	if report(allDiags, reg) {
		return fmt.Errorf("lexing failed")
	}
	return nil
}
