package sema

import (
	"testing"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/ast"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/sourceview"
	"github.com/swglang/swc/internal/token"
)

// testSource accumulates raw source text and the token array pointing
// into it, so a test can hand-build an AST whose literal/identifier
// nodes still fold/resolve through the real SrcView.Token/TokenText
// path rather than a lexer stand-in.
type testSource struct {
	t      *testing.T
	src    []byte
	tokens []token.Token
}

func newTestSource(t *testing.T) *testSource {
	return &testSource{t: t}
}

// tok appends text as its own token (plus a single trailing space so
// tokens never run together) and returns a TokRef usable in a Node.
func (s *testSource) tok(id token.ID, text string) arena.TokenRef {
	start := uint32(len(s.src))
	s.src = append(s.src, text...)
	s.src = append(s.src, ' ')
	s.tokens = append(s.tokens, token.Token{ByteStart: start, ByteLength: uint32(len(text)), ID: id})
	return arena.TokenRef(len(s.tokens) - 1)
}

func (s *testSource) view(path string) *sourceview.SourceView {
	return sourceview.New(path, s.src, s.tokens, nil, nil, nil)
}

// testProgram wires a Program, a single-worker job.Manager, and a
// FileCtx rooted at root, then drives the decl/use passes to
// quiescence. Call checkCycles afterward if the test expects a stuck
// or cyclic wait.
type testProgram struct {
	prog *Program
	jobs *job.Manager
	file *FileCtx
}

// newTestBed builds an empty Program + job.Manager so a test can build
// AST nodes (which need prog.Ast and prog.Idents to exist already)
// before deciding what the root node is.
func newTestBed(t *testing.T) (*Program, *job.Manager) {
	t.Helper()
	jobs := job.NewManager(1)
	jobs.Start()
	t.Cleanup(jobs.Shutdown)
	return NewProgram(jobs), jobs
}

// runFile schedules root as a single file's decl+use pass under prog
// and runs the job manager to quiescence.
func runFile(t *testing.T, prog *Program, jobs *job.Manager, src *testSource, root arena.AstNodeRef) *testProgram {
	t.Helper()
	sv := src.view("test.swg")
	svRef := arena.SourceViewRef(1)
	file := NewFileCtx(arena.FileRef(1), svRef, sv, root)

	tp := &testProgram{prog: prog, jobs: jobs, file: file}
	ScheduleFile(prog, job.ClientID(1), file)
	jobs.WaitAll()
	return tp
}

// testFile pairs one file's root node with the raw source it was
// built against, for multi-file tests.
type testFile struct {
	src  *testSource
	root arena.AstNodeRef
}

// runFiles schedules every file under prog as its own ClientID-1 job
// pair sharing the same Program (and therefore the same global scope
// and wait registries), then runs to quiescence once. Returns each
// file's FileCtx in the same order as files, for per-file symbol
// lookups.
func runFiles(t *testing.T, prog *Program, jobs *job.Manager, files ...testFile) (*testProgram, []*FileCtx) {
	t.Helper()
	ctxs := make([]*FileCtx, len(files))
	for i, f := range files {
		sv := f.src.view("test.swg")
		file := NewFileCtx(arena.FileRef(i+1), arena.SourceViewRef(i+1), sv, f.root)
		ctxs[i] = file
		ScheduleFile(prog, job.ClientID(1), file)
	}
	jobs.WaitAll()
	last := ctxs[len(ctxs)-1]
	return &testProgram{prog: prog, jobs: jobs, file: last}, ctxs
}

func (tp *testProgram) node(ref arena.AstNodeRef) ast.Node {
	return tp.prog.Ast.MustNode(ref)
}

func (tp *testProgram) checkCycles(t *testing.T) {
	t.Helper()
	d := job.NewCycleDetector()
	d.Check(tp.jobs, job.ClientID(1), tp.prog.Diags)
}

func diagIDs(tp *testProgram) []string {
	all := tp.prog.Diags.All()
	ids := make([]string, len(all))
	for i, d := range all {
		ids[i] = d.ID
	}
	return ids
}

func containsID(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
