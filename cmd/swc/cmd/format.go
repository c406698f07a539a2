package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/lexer"
	"github.com/swglang/swc/internal/parser"
	"github.com/swglang/swc/internal/printer"
	"github.com/spf13/cobra"
)

var (
	fmtWrite     bool
	fmtList      bool
	fmtDiff      bool
	fmtStyle     string
	fmtIndent    int
	fmtUseTabs   bool
	fmtRecursive bool
)

var formatCmd = &cobra.Command{
	Use:   "format [files or directories...]",
	Short: "Format source files using the AST-driven printer",
	Long: `format reads source files, parses them into an AST, and
pretty-prints the result back to source text.

By default format writes to standard output. If no path is given, it
reads from standard input.

  swc format file.swg            # format to stdout
  swc format -w file.swg         # overwrite the file
  swc format -l -r src/          # list files that need formatting
  swc format -d file.swg         # show a diff instead of rewriting
  swc format --style compact f.swg`,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	formatCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	formatCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display diffs instead of rewriting files")
	formatCmd.Flags().BoolVarP(&fmtRecursive, "recursive", "r", false, "process directories recursively")
	formatCmd.Flags().StringVar(&fmtStyle, "style", "detailed", "formatting style: detailed, compact, or multiline")
	formatCmd.Flags().IntVar(&fmtIndent, "indent", 2, "number of spaces per indentation level")
	formatCmd.Flags().BoolVar(&fmtUseTabs, "tabs", false, "use tabs instead of spaces for indentation")
}

func runFormat(_ *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	var style printer.Style
	switch strings.ToLower(fmtStyle) {
	case "detailed":
		style = printer.StyleDetailed
	case "compact":
		style = printer.StyleCompact
	case "multiline":
		style = printer.StyleMultiline
	default:
		return fmt.Errorf("unknown style: %s (use detailed, compact, or multiline)", fmtStyle)
	}

	opts := printer.Options{
		Style:       style,
		IndentWidth: fmtIndent,
		UseSpaces:   !fmtUseTabs,
	}

	if len(args) == 0 {
		return formatStdin(opts)
	}

	hasErrors := false
	for _, path := range args {
		if err := processPath(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "error processing %s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

func processPath(path string, opts printer.Options) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if !fmtRecursive {
			return fmt.Errorf("%s is a directory (use -r to process recursively)", path)
		}
		return processDirectory(path, opts)
	}
	return formatFile(path, opts)
}

func processDirectory(dir string, opts printer.Options) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".swg") && !strings.HasSuffix(path, ".swgs") {
			return nil
		}
		if err := formatFile(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "error formatting %s: %v\n", path, err)
		}
		return nil
	})
}

func formatStdin(opts printer.Options) error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	formatted, err := formatSource("<stdin>", src, opts)
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func formatFile(path string, opts printer.Options) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	original := string(src)

	formatted, err := formatSource(path, src, opts)
	if err != nil {
		return err
	}
	changed := original != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(path)
		}
	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", path)
			fmt.Printf("+++ %s (formatted)\n", path)
			showDiff(original, formatted)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			if verbose {
				fmt.Printf("formatted %s\n", path)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

// formatSource lexes and parses src, then renders it back via the
// printer. A file whose own diagnostics include a parse error is left
// unformatted — callers should not propose a rewrite of source the
// frontend couldn't fully understand.
func formatSource(path string, src []byte, opts printer.Options) (string, error) {
	sv, lexDiags := lexer.Lex(path, src)
	if len(lexDiags) > 0 {
		return "", fmt.Errorf("lex errors in %s", path)
	}

	store := ast.NewStore()
	idents := identpool.New()
	root, parseDiags := parser.Parse(store, idents, arena.SourceViewRef(1), sv, 0)
	if len(parseDiags) > 0 {
		return "", fmt.Errorf("parse errors in %s", path)
	}

	pr := printer.New(opts)
	return pr.Print(store, idents, sv, root), nil
}

// showDiff prints a simple line-by-line diff between original and
// formatted; good enough for eyeballing what format would change.
func showDiff(original, formatted string) {
	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")

	maxLines := len(origLines)
	if len(fmtLines) > maxLines {
		maxLines = len(fmtLines)
	}

	for i := 0; i < maxLines; i++ {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}
		if origLine != fmtLine {
			if origLine != "" {
				fmt.Printf("- %s\n", origLine)
			}
			if fmtLine != "" {
				fmt.Printf("+ %s\n", fmtLine)
			}
		}
	}
}
