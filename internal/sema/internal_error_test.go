package sema

import (
	"testing"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/job"
)

// TestHookPanicBecomesInternalDiagnostic exercises spec §7's "Internal"
// kind end to end: a BinaryExpr operand that claims to already be a
// folded constant but whose ConstantRef was never actually interned
// makes evalBinary's constpool.Pool.MustGet panic. PostNode must
// recover that panic, report a Kind == diag.KindInternal diagnostic
// carrying the pass's declaration stack, and abort the traversal
// instead of crashing the worker goroutine it ran on.
func TestHookPanicBecomesInternalDiagnostic(t *testing.T) {
	prog, _ := newTestBed(t)

	danglingConst := arena.ConstantRef(0x7fffffff)
	lhs := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, Constant: danglingConst, Flags: ast.FlagValue})
	rhs := prog.Ast.MakeNode(0, ast.Node{ID: ast.IntLiteral, Constant: danglingConst, Flags: ast.FlagValue})
	bad := prog.Ast.MakeNode(0, ast.Node{ID: ast.BinaryExpr, Op: ast.OpAdd, A: lhs, B: rhs})

	file := NewFileCtx(arena.FileRef(1), arena.SourceViewRef(1), newTestSource(t).view("test.swg"), bad)
	p := newPass(prog, file, false, &job.Job{})

	p.PostNode(bad)

	all := prog.Diags.All()
	var found *diag.Diagnostic
	for i := range all {
		if all[i].ID == "sema_err_internal" {
			found = &all[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("expected a sema_err_internal diagnostic, got %d diagnostics", len(all))
	}
	if found.Kind != diag.KindInternal {
		t.Fatalf("internal diagnostic Kind = %v, want KindInternal", found.Kind)
	}
	if found.Severity != diag.SeverityError {
		t.Fatalf("internal diagnostic Severity = %v, want SeverityError", found.Severity)
	}
}
