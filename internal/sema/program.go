// Package sema implements the two-pass semantic analyzer of spec §4.4:
// a declaration pass and a use pass, each a re-entrant ast.Visitor
// driven as a job.Job, sharing the type/constant/identifier pools and
// a cross-file symbol graph. Grounded on the teacher's general
// analysis-package idiom (small structs, explicit error returns) and
// on original_source's Compiler/Sema for the wait/resume contract the
// teacher has no equivalent of.
package sema

import (
	"sync"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/codegen"
	"github.com/swglang/swc/internal/constpool"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/identpool"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/sourceview"
	"github.com/swglang/swc/internal/symbol"
	"github.com/swglang/swc/internal/typepool"
)

// Program is the sema state shared across every file in one
// compilation: the pools, the global (module) scope symbols resolve
// into across file boundaries, and the wait registries that let a
// Pause in one file's use pass be woken by a declaration completing in
// another file's decl pass (spec §8 scenario 2).
type Program struct {
	Ast    *ast.Store
	Types  *typepool.Pool
	Consts *constpool.Pool
	Idents *identpool.Pool
	Diags   *diag.Sink
	Jobs    *job.Manager
	Symbols *symbol.Store
	Global  *symbol.Scope

	// CodegenScheduled dedupes per-function codegen.Schedule calls
	// (spec §4.5): a function reached from two different callers'
	// use-pass completions must only ever spawn one codegen.Job.
	CodegenScheduled *codegen.ScheduledSet

	mu           sync.Mutex
	identWaiters map[arena.IdentifierRef][]*job.Job
	stateWaiters map[*symbol.Symbol][]stateWaiter
	definedOK    bool // resolution value handed to any still-waiting WaitCompilerDefined query
}

type stateWaiter struct {
	j      *job.Job
	target symbol.State
}

func NewProgram(jobs *job.Manager) *Program {
	return &Program{
		Ast:              ast.NewStore(),
		Types:            typepool.New(),
		Consts:           constpool.New(),
		Idents:           identpool.New(),
		Diags:            diag.NewSink(),
		Jobs:             jobs,
		Symbols:          symbol.NewStore(),
		Global:           symbol.NewScope(symbol.ScopeModule, nil, nil),
		CodegenScheduled: codegen.NewScheduledSet(),
		identWaiters:     make(map[arena.IdentifierRef][]*job.Job),
		stateWaiters:     make(map[*symbol.Symbol][]stateWaiter),
	}
}

// NewFileSourceView is a convenience constructor so callers building a
// file's scope have a ready-made empty SourceView slot before parsing
// fills it in (tests mostly call sourceview.New directly instead).
func (p *Program) NewFileSourceView(path string) *sourceview.SourceView {
	return sourceview.New(path, nil, nil, nil, nil, nil)
}
