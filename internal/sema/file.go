package sema

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/sourceview"
	"github.com/swglang/swc/internal/symbol"
)

// FileCtx is the per-file state that survives across the decl pass and
// the use pass (spec §4.4: "Sema runs in two passes per file").
type FileCtx struct {
	Ref        arena.FileRef
	SrcView    *sourceview.SourceView
	SrcViewRef arena.SourceViewRef
	Root       arena.AstNodeRef

	// DeclSymbols maps a declaring AST node to the symbol the decl pass
	// created for it, so the use pass resolving the same node doesn't
	// redeclare.
	DeclSymbols map[arena.AstNodeRef]*symbol.Symbol

	// CompilerIfStaged records, per (ifNode, armNode) pair, which
	// symbols were declared while that arm's frame was active — read
	// back by the use pass once the condition constant is known (spec
	// §4.4 Compiler-if).
	CompilerIfStaged map[[2]arena.AstNodeRef][]*symbol.Symbol

	// NamespaceScopes / FuncScopes let the use pass re-enter exactly the
	// scope the decl pass built for the same node, rather than
	// reconstructing (and re-declaring into) a second one.
	NamespaceScopes map[arena.AstNodeRef]*symbol.Scope
	FuncScopes      map[arena.AstNodeRef]*symbol.Scope

	HasErrors bool
}

func NewFileCtx(ref arena.FileRef, svRef arena.SourceViewRef, sv *sourceview.SourceView, root arena.AstNodeRef) *FileCtx {
	return &FileCtx{
		Ref:              ref,
		SrcView:          sv,
		SrcViewRef:       svRef,
		Root:             root,
		DeclSymbols:      make(map[arena.AstNodeRef]*symbol.Symbol),
		CompilerIfStaged: make(map[[2]arena.AstNodeRef][]*symbol.Symbol),
		NamespaceScopes:  make(map[arena.AstNodeRef]*symbol.Scope),
		FuncScopes:       make(map[arena.AstNodeRef]*symbol.Scope),
	}
}

// ScheduleFile enqueues a file's decl pass and use pass as two jobs,
// the use pass SleepOn-ing the decl pass so "within one file the decl
// pass finishes strictly before the use pass begins" (spec §5) while
// other files' jobs proceed concurrently.
func ScheduleFile(prog *Program, clientID job.ClientID, file *FileCtx) {
	declJob := &job.Job{ClientID: clientID, SrcView: file.SrcViewRef, WaitKind: job.WaitNone}
	declRun := newRun(prog, file, true, declJob)
	declJob.Run = declRun

	useJob := &job.Job{ClientID: clientID}
	started := false
	useJob.Run = func() job.Result {
		if !started {
			started = true
			return useJob.SleepOn(declJob)
		}
		return newRun(prog, file, false, useJob)()
	}

	prog.Jobs.Enqueue(declJob, job.Normal)
	prog.Jobs.Enqueue(useJob, job.Normal)
}

// newRun builds the job.Job.Run closure for one pass over one file,
// wrapping a fresh ast.Visitor in its first call and resuming the same
// visitor (captured by the closure) on every later call.
func newRun(prog *Program, file *FileCtx, declPass bool, j *job.Job) func() job.Result {
	p := newPass(prog, file, declPass, j)
	var v *visitorAdapter
	return func() job.Result {
		if v == nil {
			v = newVisitorAdapter(prog.Ast, file.Root, p)
		}
		return v.run()
	}
}
