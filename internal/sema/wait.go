package sema

import (
	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/symbol"
)

// waitForIdentifier parks j until some symbol named name is declared
// anywhere in the Global scope (spec §4.4's WaitIdentifier). Caller
// sets j.WaitKind/SrcView/Tok/IdentName before calling, for the cycle
// detector.
func (p *Program) waitForIdentifier(j *job.Job, name arena.IdentifierRef) job.Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	if syms := p.Global.ResolveLocal(name); len(syms) > 0 {
		p.Jobs.Wake(j)
		return job.Sleep // already resolvable; a wake chasing this race will re-run immediately
	}
	p.identWaiters[name] = append(p.identWaiters[name], j)
	return job.Pause
}

// declareGlobal registers sym in the Global scope and wakes every job
// parked on its name (spec §4.4: "When a sema-completed transition
// occurs... dependent jobs' wait keys are matched and wakes are
// posted" — declaration is the Declared-transition instance of that).
func (p *Program) declareGlobal(sym *symbol.Symbol) {
	p.Global.Declare(sym)
	p.mu.Lock()
	waiters := p.identWaiters[sym.Name]
	delete(p.identWaiters, sym.Name)
	p.mu.Unlock()
	for _, w := range waiters {
		p.Jobs.Wake(w)
	}
}

// waitForSymbolState parks j until sym reaches target (spec's
// WaitTyped/WaitCompleted/WaitTypeCompleted family).
func (p *Program) waitForSymbolState(j *job.Job, sym *symbol.Symbol, target symbol.State) job.Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	if sym.Reached(target) || sym.State() == symbol.Ignored {
		p.Jobs.Wake(j)
		return job.Sleep
	}
	p.stateWaiters[sym] = append(p.stateWaiters[sym], stateWaiter{j: j, target: target})
	return job.Pause
}

// advanceSymbol moves sym forward and wakes any waiter whose target is
// now satisfied.
func (p *Program) advanceSymbol(sym *symbol.Symbol, target symbol.State) {
	sym.Advance(target)
	p.wakeSatisfied(sym)
}

// markIgnored withdraws sym (compiler-if loser) and releases every
// waiter unconditionally — spec §4.4/§9: "Ignored... treat as
// as-if-absent"; waiters get no diagnostic of their own.
func (p *Program) markIgnored(sym *symbol.Symbol) {
	sym.MarkIgnored()
	p.wakeSatisfied(sym)
}

func (p *Program) wakeSatisfied(sym *symbol.Symbol) {
	p.mu.Lock()
	remaining := p.stateWaiters[sym][:0]
	var toWake []*job.Job
	for _, w := range p.stateWaiters[sym] {
		if sym.Reached(w.target) || sym.State() == symbol.Ignored {
			toWake = append(toWake, w.j)
		} else {
			remaining = append(remaining, w)
		}
	}
	if len(remaining) == 0 {
		delete(p.stateWaiters, sym)
	} else {
		p.stateWaiters[sym] = remaining
	}
	p.mu.Unlock()
	for _, j := range toWake {
		p.Jobs.Wake(j)
	}
}

// ResolveDefinedBarrier implements the driver's fixed-point step 4
// (spec §4.3): once a wake-all/wait-all round makes no progress, every
// still-waiting `#defined(x)` query is handed a final answer of false
// so its job can resume and the driver loops once more. Called by the
// driver (cmd/swc/cmd/build.go), not by a job's own Run.
func (p *Program) ResolveDefinedBarrier() {
	p.mu.Lock()
	p.definedOK = false
	p.mu.Unlock()
}

// DefinedOK is the answer a WaitCompilerDefined job reads once woken.
// Nothing in this package sets it to true: it starts false and
// ResolveDefinedBarrier sets it to false.
func (p *Program) DefinedOK() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.definedOK
}
