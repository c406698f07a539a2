package cmd

import (
	"fmt"
	"os"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/directive"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/lexer"
	"github.com/swglang/swc/internal/parser"
	"github.com/swglang/swc/internal/sourceview"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Run each file's expected-diagnostic directive comments against its own diagnostics",
	Long: `verify lexes and parses each file, matches every reported diagnostic
against that file's "// expected-error"/"// expected-warning"
comments, and fails if any directive never matched a real diagnostic.
A "// swc-option lex-only" comment stops a file's pipeline after
lexing, for fixtures that only exercise the lexer.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	failed := false

	for shard, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		sv, lexDiags := lexer.Lex(path, src)
		dirs, opts := directive.Parse(sv)

		diags := lexDiags
		if !opts.LexOnly {
			store := ast.NewStore()
			idents := identpool.New()
			_, parseDiags := parser.Parse(store, idents, arena.SourceViewRef(1), sv, uint32(shard)%arena.ShardCount)
			diags = append(diags, parseDiags...)
		}

		if verifyFile(path, sv, dirs, diags) {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("verify failed")
	}
	return nil
}

// verifyFile dismisses every diagnostic that matches a directive, then
// reports the file's own location-prefixed diagnostics for whatever's
// left plus a failure for every directive that never matched.
func verifyFile(path string, sv *sourceview.SourceView, dirs []*directive.Directive, diags []diag.Diagnostic) bool {
	failed := false

	for _, d := range diags {
		if directive.Verify(dirs, d, sv) {
			continue
		}
		line, col := sv.Location(sv.Token(int(d.Tok)).ByteStart)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s", path, line, col, diag.RenderText(d))
	}

	for _, d := range directive.Untouched(dirs) {
		line, col := sv.Location(d.ByteOffset)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: expected %s {{%s}} was never raised\n", path, line, col, d.Severity, d.Match)
		failed = true
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %d directive(s) checked\n", path, len(dirs))
	}
	return failed
}
