package job

import (
	"fmt"

	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/symbol"
)

// edgeLoc remembers which job/location first produced an edge, so the
// reported cycle can point back at real source (spec §4.3, grounded on
// SemaCycle.cpp's graph_.edges map).
type edgeLoc struct {
	job *Job
}

// CycleDetector turns a stuck waiter→awaited symbol graph into
// diagnostics instead of a silent deadlock. One instance is built per
// waitAll-scope check (spec §4.3), grounded on
// Compiler/Sema/Helpers/SemaCycle.cpp — the Go teacher has no
// equivalent, so this is translated from the original C++ rather than
// adapted from teacher code.
type CycleDetector struct {
	adj   map[*symbol.Symbol][]*symbol.Symbol
	edges map[[2]*symbol.Symbol]edgeLoc
}

func NewCycleDetector() *CycleDetector {
	return &CycleDetector{
		adj:   make(map[*symbol.Symbol][]*symbol.Symbol),
		edges: make(map[[2]*symbol.Symbol]edgeLoc),
	}
}

func (d *CycleDetector) addNodeIfNeeded(sym *symbol.Symbol) {
	if _, ok := d.adj[sym]; !ok {
		d.adj[sym] = nil
	}
}

func (d *CycleDetector) addEdge(from, to *symbol.Symbol, j *Job) {
	d.addNodeIfNeeded(from)
	d.addNodeIfNeeded(to)
	d.adj[from] = append(d.adj[from], to)

	key := [2]*symbol.Symbol{from, to}
	if _, ok := d.edges[key]; !ok {
		d.edges[key] = edgeLoc{job: j}
	}
}

// Check scopes cycle detection to the jobs waiting under clientID
// after a WaitAll returned with the system idle. Every participant in
// a detected cycle is marked symbol.Ignored (spec §4.3: "one
// diagnostic per cycle, participants withdrawn") and the remaining
// stuck waits (not cycle-caused — e.g. a genuinely unresolved
// identifier) are reported individually by their WaitKind.
func (d *CycleDetector) Check(mgr *Manager, clientID ClientID, sink *diag.Sink) {
	jobs := mgr.WaitingJobs(clientID)

	for _, j := range jobs {
		if j.WaiterSymbol != nil && j.AwaitedSymbol != nil {
			d.addEdge(j.WaiterSymbol, j.AwaitedSymbol, j)
		}
	}

	d.detectAndReportCycles(sink)

	for _, j := range jobs {
		if j.WaiterSymbol != nil && j.WaiterSymbol.State() == symbol.Ignored {
			continue
		}
		if j.AwaitedSymbol != nil && j.AwaitedSymbol.State() == symbol.Ignored {
			continue
		}
		reportStuckWait(j, sink)
	}
}

func (d *CycleDetector) detectAndReportCycles(sink *diag.Sink) {
	visited := make(map[*symbol.Symbol]bool)
	onStack := make(map[*symbol.Symbol]bool)
	var stack []*symbol.Symbol

	for v := range d.adj {
		if !visited[v] {
			d.findCycles(v, &stack, visited, onStack, sink)
		}
	}
}

func (d *CycleDetector) findCycles(v *symbol.Symbol, stack *[]*symbol.Symbol, visited, onStack map[*symbol.Symbol]bool, sink *diag.Sink) {
	visited[v] = true
	onStack[v] = true
	*stack = append(*stack, v)

	for _, w := range d.adj[v] {
		if onStack[w] {
			start := 0
			for i, s := range *stack {
				if s == w {
					start = i
					break
				}
			}
			cycle := append([]*symbol.Symbol(nil), (*stack)[start:]...)
			d.reportCycle(cycle, sink)
		} else if !visited[w] {
			d.findCycles(w, stack, visited, onStack, sink)
		}
	}

	*stack = (*stack)[:len(*stack)-1]
	onStack[v] = false
}

func (d *CycleDetector) reportCycle(cycle []*symbol.Symbol, sink *diag.Sink) {
	for _, sym := range cycle {
		sym.MarkIgnored()
	}

	first := cycle[0]
	next := first
	if len(cycle) > 1 {
		next = cycle[1]
	}
	loc, ok := d.edges[[2]*symbol.Symbol{first, next}]
	if !ok {
		return
	}

	dg := diag.New("sema_err_cyclic_dependency", diag.SeverityError, loc.job.SrcView, loc.job.Tok).
		WithArg(diag.ArgSymbol, symbolLabel(first))

	for i := range cycle {
		sym := cycle[i]
		nextSym := cycle[(i+1)%len(cycle)]
		edge, ok := d.edges[[2]*symbol.Symbol{sym, nextSym}]
		if !ok {
			continue
		}
		n := dg.AddNote("sema_note_cyclic_dependency_link")
		n.AddSpan(edge.job.SrcView, edge.job.Tok, fmt.Sprintf("waiting on %s", symbolLabel(nextSym)), diag.SeverityNote)
	}

	sink.Report(dg)
}

// reportStuckWait diagnoses a job that is Waiting, not part of any
// detected cycle, and still unresolved once the system is idle —
// mirrors SemaCycle::check's switch over TaskStateKind.
func reportStuckWait(j *Job, sink *diag.Sink) {
	switch j.WaitKind {
	case WaitIdentifier:
		dg := diag.New("sema_err_unknown_symbol", diag.SeverityError, j.SrcView, j.Tok)
		sink.Report(dg)
	case WaitImplRegistrations:
		dg := diag.New("sema_err_wait_impl_registration", diag.SeverityError, j.SrcView, j.Tok)
		sink.Report(dg)
	case WaitDeclared:
		dg := diag.New("sema_err_wait_sym_declared", diag.SeverityError, j.SrcView, j.Tok).
			WithArg(diag.ArgSymbol, symbolLabel(j.AwaitedSymbol))
		sink.Report(dg)
	case WaitTyped:
		dg := diag.New("sema_err_wait_sym_typed", diag.SeverityError, j.SrcView, j.Tok).
			WithArg(diag.ArgSymbol, symbolLabel(j.AwaitedSymbol))
		sink.Report(dg)
	case WaitCompleted, WaitTypeCompleted:
		dg := diag.New("sema_err_wait_sym_completed", diag.SeverityError, j.SrcView, j.Tok).
			WithArg(diag.ArgSymbol, symbolLabel(j.AwaitedSymbol))
		sink.Report(dg)
	case WaitCompilerDefined:
		dg := diag.New("sema_err_wait_compiler_defined", diag.SeverityError, j.SrcView, j.Tok)
		sink.Report(dg)
	}
}

func symbolLabel(sym *symbol.Symbol) string {
	if sym == nil {
		return "?"
	}
	return fmt.Sprintf("ident#%d", sym.Name)
}
