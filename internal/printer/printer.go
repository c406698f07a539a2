// Package printer implements an AST-driven pretty-printer for the
// `swc format` CLI command: it walks a parsed `internal/ast.Store`
// tree and re-renders it as source text, independent of whatever
// whitespace the original file used. Grounded on the teacher's
// `pkg/printer` in concept — an `Options{Style, IndentWidth,
// UseSpaces}` knob set driving one recursive `Print` entry point,
// the same shape `cmd/dwscript/cmd/fmt.go` drives — but not a port of
// its algorithm: the retrieval pack carried only `pkg/printer`'s test
// suite, not its source, so the actual rendering rules below are
// authored directly against this repo's own `internal/ast` node
// catalogue (grounded on `internal/parser`, the one thing that
// unambiguously defines what each node shape means) rather than
// translated from teacher code that wasn't available to read.
package printer

import (
	"strings"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/sourceview"
	"github.com/swglang/swc/internal/symbol"
)

// Style is the overall formatting shape, matching the teacher's own
// three-way Style enum.
type Style int

const (
	// StyleDetailed spreads every block member onto its own line.
	StyleDetailed Style = iota
	// StyleCompact collapses a block of at most one member onto the
	// same line as its opening brace.
	StyleCompact
	// StyleMultiline is StyleDetailed plus a blank line between
	// top-level declarations.
	StyleMultiline
)

// Options configures a Printer.
type Options struct {
	Style       Style
	IndentWidth int
	UseSpaces   bool
}

// Printer renders a parsed file back to source text.
type Printer struct {
	opts   Options
	store  *ast.Store
	idents *identpool.Pool
	sv     *sourceview.SourceView
	buf    strings.Builder
	depth  int
}

// New builds a Printer for the given options.
func New(opts Options) *Printer {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}
	return &Printer{opts: opts}
}

// Print renders the file rooted at root. store and idents must be the
// same ones the node tree was built against; sv supplies literal token
// text.
func (p *Printer) Print(store *ast.Store, idents *identpool.Pool, sv *sourceview.SourceView, root arena.AstNodeRef) string {
	p.store, p.idents, p.sv = store, idents, sv
	p.buf.Reset()
	p.depth = 0
	p.printNode(root)
	return p.buf.String()
}

func (p *Printer) indent() string {
	unit := "\t"
	if p.opts.UseSpaces {
		unit = strings.Repeat(" ", p.opts.IndentWidth)
	}
	return strings.Repeat(unit, p.depth)
}

func (p *Printer) writeLine(s string) {
	p.buf.WriteString(p.indent())
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func (p *Printer) tokenText(ref arena.TokenRef) string {
	return p.sv.TokenText(p.sv.Token(int(ref)))
}

func (p *Printer) name(id arena.IdentifierRef) string {
	return p.idents.String(id)
}

func accessPrefix(a uint8) string {
	switch symbol.AccessModifier(a) {
	case symbol.AccessProtected:
		return "internal "
	case symbol.AccessPrivate:
		return "private "
	default:
		return ""
	}
}

func (p *Printer) node(ref arena.AstNodeRef) ast.Node { return p.store.MustNode(ref) }

// expr renders ref as an inline expression fragment (no trailing
// newline, no leading indent).
func (p *Printer) expr(ref arena.AstNodeRef) string {
	if ref.Invalid() {
		return ""
	}
	n := p.node(ref)
	switch n.ID {
	case ast.IntLiteral, ast.FloatLiteral, ast.StringLiteral, ast.CharLiteral,
		ast.BoolLiteral, ast.NullLiteral, ast.UndefinedLiteral, ast.Identifier, ast.TypeExpr:
		if !n.Name.Invalid() {
			return p.name(n.Name)
		}
		return p.tokenText(n.TokRef)
	case ast.BinaryExpr, ast.LogicalExpr, ast.RelationalExpr:
		return "(" + p.expr(n.A) + " " + n.Op.String() + " " + p.expr(n.B) + ")"
	case ast.UnaryExpr:
		return p.tokenText(n.TokRef) + p.expr(n.A)
	case ast.CastExpr:
		switch n.Modifier {
		case ast.ModWrap:
			return "#wrap(" + p.expr(n.A) + ")"
		case ast.ModPromote:
			return "cast(" + p.name(n.Name) + ", " + p.expr(n.A) + ")"
		default:
			return p.expr(n.A) + " as " + p.name(n.Name)
		}
	case ast.CallExpr:
		args := p.exprList(n.Span)
		return p.expr(n.A) + "(" + strings.Join(args, ", ") + ")"
	case ast.MemberExpr:
		return p.expr(n.A) + "." + p.name(n.Name)
	case ast.IndexExpr:
		return p.expr(n.A) + "[" + p.expr(n.B) + "]"
	case ast.AggregateLiteral:
		items := p.exprList(n.Span)
		head := ""
		if !n.Name.Invalid() {
			head = p.name(n.Name)
		}
		return head + "{" + strings.Join(items, ", ") + "}"
	case ast.IntrinsicExpr:
		kw := p.tokenText(n.TokRef)
		if !n.Name.Invalid() {
			return kw + "(" + p.expr(n.A) + ", " + p.name(n.Name) + ")"
		}
		return kw + "(" + p.expr(n.A) + ")"
	default:
		return p.tokenText(n.TokRef)
	}
}

func (p *Printer) exprList(span arena.SpanRef) []string {
	refs := p.store.Span(span)
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = p.expr(r)
	}
	return out
}

// block renders a Block node's statements as a braced, indented group.
// An empty or single-statement block collapses to one line under
// StyleCompact.
func (p *Printer) block(ref arena.AstNodeRef) string {
	if ref.Invalid() {
		return "{}"
	}
	n := p.node(ref)
	stmts := p.store.Span(n.Span)

	if p.opts.Style == StyleCompact && len(stmts) <= 1 {
		if len(stmts) == 0 {
			return "{}"
		}
		return "{ " + strings.TrimSpace(p.stmtInline(stmts[0])) + " }"
	}

	var b strings.Builder
	b.WriteString("{\n")
	p.depth++
	for _, s := range stmts {
		b.WriteString(p.indent())
		b.WriteString(p.stmtInline(s))
		b.WriteByte('\n')
	}
	p.depth--
	b.WriteString(p.indent())
	b.WriteString("}")
	return b.String()
}

// stmtInline renders one statement (no leading indent, no trailing
// newline — the caller supplies both).
func (p *Printer) stmtInline(ref arena.AstNodeRef) string {
	n := p.node(ref)
	switch n.ID {
	case ast.ExprStmt:
		return p.expr(n.A) + ";"
	case ast.VarDecl, ast.ConstDecl:
		kw := "var"
		if n.ID == ast.ConstDecl {
			kw = "const"
		}
		s := kw + " " + p.name(n.Name)
		if !n.A.Invalid() {
			s += ": " + p.expr(n.A)
		}
		if !n.B.Invalid() {
			s += " = " + p.expr(n.B)
		}
		return s + ";"
	case ast.AssignStmt:
		return p.expr(n.A) + " = " + p.expr(n.B) + ";"
	case ast.IfStmt:
		s := "if " + p.expr(n.A) + " " + p.block(n.B)
		if !n.C.Invalid() {
			s += " else " + p.block(n.C)
		}
		return s
	case ast.WhileStmt:
		return "while " + p.expr(n.A) + " " + p.block(n.B)
	case ast.ForStmt:
		post := ""
		if !n.C.Invalid() {
			post = p.stmtInline(n.C)
			post = strings.TrimSuffix(post, ";")
		}
		init, cond := "", ""
		if !n.A.Invalid() {
			init = strings.TrimSuffix(p.stmtInline(n.A), ";")
		}
		if !n.B.Invalid() {
			cond = p.expr(n.B)
		}
		body := p.blockFromSpan(n.Span2)
		return "for (" + init + "; " + cond + "; " + post + ") " + body
	case ast.ForeachStmt:
		s := "foreach "
		if !n.Name.Invalid() {
			s += "(" + p.name(n.Name) + " in " + p.expr(n.A) + ") "
		} else {
			s += "(" + p.expr(n.A) + ") "
		}
		return s + p.block(n.B)
	case ast.SwitchStmt:
		return p.switchStmt(n)
	case ast.ReturnStmt:
		if n.A.Invalid() {
			return "return;"
		}
		return "return " + p.expr(n.A) + ";"
	case ast.BreakStmt:
		return "break;"
	case ast.ContinueStmt:
		return "continue;"
	case ast.CompilerAssertDecl:
		return "#assert(" + p.expr(n.A) + ");"
	case ast.CompilerErrorDecl:
		return "#error(" + p.expr(n.A) + ");"
	case ast.CompilerWarningDecl:
		return "#warning(" + p.expr(n.A) + ");"
	case ast.CompilerIfDecl:
		return p.compilerIf(n)
	default:
		return p.expr(ref) + ";"
	}
}

// blockFromSpan wraps a bare statement span (no owning Block node, as
// ForStmt's body uses) the same way block() renders one.
func (p *Printer) blockFromSpan(span arena.SpanRef) string {
	stmts := p.store.Span(span)
	if p.opts.Style == StyleCompact && len(stmts) <= 1 {
		if len(stmts) == 0 {
			return "{}"
		}
		return "{ " + p.stmtInline(stmts[0]) + " }"
	}
	var b strings.Builder
	b.WriteString("{\n")
	p.depth++
	for _, s := range stmts {
		b.WriteString(p.indent())
		b.WriteString(p.stmtInline(s))
		b.WriteByte('\n')
	}
	p.depth--
	b.WriteString(p.indent())
	b.WriteString("}")
	return b.String()
}

func (p *Printer) switchStmt(n ast.Node) string {
	var b strings.Builder
	b.WriteString("switch " + p.expr(n.A) + " {\n")
	p.depth++
	for _, c := range p.store.Span(n.Span) {
		cn := p.node(c)
		values := p.exprList(cn.Span)
		b.WriteString(p.indent())
		b.WriteString("case " + strings.Join(values, ", ") + ": ")
		b.WriteString(p.block(cn.A))
		b.WriteByte('\n')
	}
	if !n.B.Invalid() {
		b.WriteString(p.indent())
		b.WriteString("default: " + p.block(n.B))
		b.WriteByte('\n')
	}
	p.depth--
	b.WriteString(p.indent())
	b.WriteString("}")
	return b.String()
}

func (p *Printer) compilerIf(n ast.Node) string {
	s := "#if " + p.expr(n.A) + "\n"
	p.depth++
	for _, st := range p.store.Span(p.node(n.B).Span) {
		s += p.indent() + p.stmtInline(st) + "\n"
	}
	p.depth--
	if !n.C.Invalid() {
		s += p.indent() + "#else\n"
		p.depth++
		for _, st := range p.store.Span(p.node(n.C).Span) {
			s += p.indent() + p.stmtInline(st) + "\n"
		}
		p.depth--
	}
	s += p.indent() + "#endif"
	return s
}

// printNode renders a top-level File node into p.buf.
func (p *Printer) printNode(ref arena.AstNodeRef) {
	n := p.node(ref)
	if n.ID != ast.File {
		p.writeLine(p.stmtInline(ref))
		return
	}
	decls := p.store.Span(n.Span2)
	for i, d := range decls {
		if p.opts.Style == StyleMultiline && i > 0 {
			p.buf.WriteByte('\n')
		}
		p.printDecl(d)
	}
}

func (p *Printer) printDecl(ref arena.AstNodeRef) {
	n := p.node(ref)
	switch n.ID {
	case ast.FuncDecl:
		p.printFunc(n)
	case ast.StructDecl, ast.UnionDecl, ast.InterfaceDecl:
		p.printAggregate(n)
	case ast.EnumDecl:
		p.printEnum(n)
	case ast.AliasDecl:
		p.writeLine(accessPrefix(n.Access) + "alias " + p.name(n.Name) + " = " + p.expr(n.A) + ";")
	case ast.NamespaceDecl:
		p.writeLine("namespace " + p.name(n.Name) + " {")
		p.depth++
		for _, d := range p.store.Span(n.Span) {
			p.printDecl(d)
		}
		p.depth--
		p.writeLine("}")
	case ast.ImplDecl:
		p.writeLine("impl " + p.expr(n.A) + " {")
		p.depth++
		for _, d := range p.store.Span(n.Span) {
			p.printDecl(d)
		}
		p.depth--
		p.writeLine("}")
	case ast.CompilerIfDecl:
		p.writeLine(p.compilerIf(n))
	case ast.CompilerAssertDecl, ast.CompilerErrorDecl, ast.CompilerWarningDecl:
		p.writeLine(p.stmtInline(ref))
	case ast.Param:
		s := p.name(n.Name)
		if !n.A.Invalid() {
			s += ": " + p.expr(n.A)
		}
		p.writeLine(s + ";")
	default:
		p.writeLine(p.stmtInline(ref))
	}
}

func (p *Printer) printFunc(n ast.Node) {
	params := make([]string, 0, 4)
	for _, pr := range p.store.Span(n.Span) {
		pn := p.node(pr)
		s := p.name(pn.Name)
		if !pn.A.Invalid() {
			s += ": " + p.expr(pn.A)
		}
		params = append(params, s)
	}
	sig := accessPrefix(n.Access) + "func " + p.name(n.Name) + "(" + strings.Join(params, ", ") + ")"
	if !n.A.Invalid() {
		sig += " -> " + p.expr(n.A)
	}
	if n.B.Invalid() {
		p.writeLine(sig + ";")
		return
	}
	p.buf.WriteString(p.indent())
	p.buf.WriteString(sig + " ")
	p.buf.WriteString(p.block(n.B))
	p.buf.WriteByte('\n')
}

func (p *Printer) printAggregate(n ast.Node) {
	kw := map[ast.NodeID]string{ast.StructDecl: "struct", ast.UnionDecl: "union", ast.InterfaceDecl: "interface"}[n.ID]
	p.writeLine(accessPrefix(n.Access) + kw + " " + p.name(n.Name) + " {")
	p.depth++
	for _, m := range p.store.Span(n.Span) {
		p.printDecl(m)
	}
	p.depth--
	p.writeLine("}")
}

func (p *Printer) printEnum(n ast.Node) {
	p.writeLine(accessPrefix(n.Access) + "enum " + p.name(n.Name) + " {")
	p.depth++
	members := p.store.Span(n.Span)
	for i, m := range members {
		mn := p.node(m)
		s := p.name(mn.Name)
		if !mn.A.Invalid() {
			s += " = " + p.expr(mn.A)
		}
		if i < len(members)-1 {
			s += ","
		}
		p.writeLine(s)
	}
	p.depth--
	p.writeLine("}")
}
