package codegen_test

import (
	"testing"
	"time"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/codegen"
	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/symbol"
)

var nextTestIdent arena.IdentifierRef = 1

func newFuncSymbol() *symbol.Symbol {
	nextTestIdent++
	return symbol.New(symbol.KindFunction, nextTestIdent, arena.AstNodeRef(0), symbol.AccessPublic)
}

func waitReached(t *testing.T, sym *symbol.Symbol, target symbol.State) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !sym.Reached(target) {
		if time.Now().After(deadline) {
			t.Fatalf("symbol never reached state %v", target)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestScheduleLeafFunctionCompletesImmediately(t *testing.T) {
	mgr := job.NewManager(2)
	mgr.Start()
	defer mgr.Shutdown()

	fn := newFuncSymbol()
	scheduled := codegen.NewScheduledSet()
	jj := codegen.Schedule(mgr, job.ClientID(1), codegen.NewJob(fn, nil), scheduled)
	if jj == nil {
		t.Fatal("Schedule returned nil for a not-yet-scheduled function")
	}

	mgr.WaitAll()
	waitReached(t, fn, symbol.CodeGenCompleted)
}

func TestScheduleWaitsForCallees(t *testing.T) {
	mgr := job.NewManager(2)
	mgr.Start()
	defer mgr.Shutdown()

	caller := newFuncSymbol()
	callee := newFuncSymbol()
	scheduled := codegen.NewScheduledSet()

	callerJob := codegen.Schedule(mgr, job.ClientID(1), codegen.NewJob(caller, []*symbol.Symbol{callee}), scheduled)
	if callerJob == nil {
		t.Fatal("Schedule returned nil for caller")
	}

	mgr.WaitAll()
	if caller.Reached(symbol.CodeGenPreSolved) {
		t.Fatal("caller advanced to CodeGenPreSolved before its callee did")
	}

	if codegen.Schedule(mgr, job.ClientID(1), codegen.NewJob(callee, nil), scheduled) == nil {
		t.Fatal("Schedule returned nil for callee")
	}
	mgr.WaitAll()

	waitReached(t, callee, symbol.CodeGenCompleted)
	waitReached(t, caller, symbol.CodeGenCompleted)
}

func TestScheduleIsIdempotentPerFunction(t *testing.T) {
	mgr := job.NewManager(1)
	mgr.Start()
	defer mgr.Shutdown()

	fn := newFuncSymbol()
	scheduled := codegen.NewScheduledSet()

	first := codegen.Schedule(mgr, job.ClientID(1), codegen.NewJob(fn, nil), scheduled)
	second := codegen.Schedule(mgr, job.ClientID(1), codegen.NewJob(fn, nil), scheduled)
	if first == nil {
		t.Fatal("first Schedule call should have succeeded")
	}
	if second != nil {
		t.Fatal("second Schedule call for the same function should be a no-op")
	}

	mgr.WaitAll()
	waitReached(t, fn, symbol.CodeGenCompleted)
}

func TestScheduleSelfRecursionDoesNotBlock(t *testing.T) {
	mgr := job.NewManager(1)
	mgr.Start()
	defer mgr.Shutdown()

	fn := newFuncSymbol()
	scheduled := codegen.NewScheduledSet()

	if codegen.Schedule(mgr, job.ClientID(1), codegen.NewJob(fn, []*symbol.Symbol{fn}), scheduled) == nil {
		t.Fatal("Schedule returned nil for a not-yet-scheduled function")
	}

	mgr.WaitAll()
	waitReached(t, fn, symbol.CodeGenCompleted)
}
