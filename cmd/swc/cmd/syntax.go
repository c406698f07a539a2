package cmd

import (
	"fmt"
	"os"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/lexer"
	"github.com/swglang/swc/internal/parser"
	"github.com/spf13/cobra"
)

var dumpAST bool

var syntaxCmd = &cobra.Command{
	Use:   "syntax <file>...",
	Short: "Lex and parse one or more source files, reporting diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSyntax,
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
	syntaxCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST for each file")
}

func runSyntax(_ *cobra.Command, args []string) error {
	reg := newSVRegistry()
	store := ast.NewStore()
	idents := identpool.New()
	var allDiags []diag.Diagnostic

	for shard, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		sv, lexDiags := lexer.Lex(path, src)
		svRef := reg.add(path, sv)
		for _, d := range lexDiags {
			d.SrcView = svRef
			allDiags = append(allDiags, d)
		}

		root, parseDiags := parser.Parse(store, idents, svRef, sv, uint32(shard)%arena.ShardCount)
		allDiags = append(allDiags, parseDiags...)

		if dumpAST {
			fmt.Printf("%s:\n", path)
			dumpNode(store, root, 0)
		}
	}

	if report(allDiags, reg) {
		return fmt.Errorf("parsing failed")
	}
	return nil
}

// dumpNode prints ref and its children depth-first, indented two
// spaces per level — grounded on the teacher's own recursive AST
// dumper (cmd/dwscript/cmd/parse.go's dumpASTNode), adapted to this
// repo's single tagged-union Node type plus children.go's generic
// Children() walk instead of a type switch per concrete AST type.
func dumpNode(store *ast.Store, ref arena.AstNodeRef, depth int) {
	if ref.Invalid() {
		return
	}
	node := store.MustNode(ref)
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%s%s\n", indent, node.ID.String())
	for _, child := range store.Children(node) {
		dumpNode(store, child, depth+1)
	}
}
