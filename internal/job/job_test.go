package job

import (
	"testing"
	"time"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/diag"
	"github.com/swglang/swc/internal/symbol"
)

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition never became true")
}

func TestEnqueueRunsDoneJob(t *testing.T) {
	mgr := NewManager(2)
	mgr.Start()
	defer mgr.Shutdown()

	ran := make(chan struct{}, 1)
	j := &Job{ClientID: 1, Run: func() Result {
		ran <- struct{}{}
		return Done
	}}
	if !mgr.Enqueue(j, Normal) {
		t.Fatalf("Enqueue rejected")
	}
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatalf("job never ran")
	}
	mgr.WaitAll()
}

func TestSleepOnWakesDependent(t *testing.T) {
	mgr := NewManager(2)
	mgr.Start()
	defer mgr.Shutdown()

	var depDone, waiterDone int32
	dep := &Job{ClientID: 1, Run: func() Result {
		depDone = 1
		return Done
	}}
	waiterRan := 0
	waiter := &Job{ClientID: 1}
	waiter.Run = func() Result {
		waiterRan++
		if waiterRan == 1 {
			return waiter.SleepOn(dep)
		}
		waiterDone = 1
		return Done
	}

	mgr.Enqueue(waiter, Normal)
	mgr.Enqueue(dep, Normal)

	mgr.WaitAll()
	_ = depDone
	if waiterDone != 1 {
		t.Fatalf("waiter never resumed after dependency finished")
	}
}

func TestSpawnAndSleep(t *testing.T) {
	mgr := NewManager(2)
	mgr.Start()
	defer mgr.Shutdown()

	childRan := false
	parentResumed := false
	var child *Job

	parentCalls := 0
	parent := &Job{ClientID: 1}
	parent.Run = func() Result {
		parentCalls++
		if parentCalls == 1 {
			child = &Job{ClientID: 1, Run: func() Result {
				childRan = true
				return Done
			}}
			return parent.SpawnAndSleep(child, Normal)
		}
		parentResumed = true
		return Done
	}

	mgr.Enqueue(parent, Normal)
	mgr.WaitAll()

	if !childRan || !parentResumed {
		t.Fatalf("spawn-and-sleep did not complete child+parent: child=%v parent=%v", childRan, parentResumed)
	}
}

func TestWakeArmsBeforeSleep(t *testing.T) {
	mgr := NewManager(1)
	mgr.Start()
	defer mgr.Shutdown()

	var self *Job
	calls := 0
	self = &Job{ClientID: 1}
	self.Run = func() Result {
		calls++
		if calls == 1 {
			mgr.Wake(self) // armed before we ever sleep
			return Sleep
		}
		return Done
	}
	mgr.Enqueue(self, Normal)
	mgr.WaitAll()

	waitUntil(t, func() bool { return calls == 2 })
}

func TestCycleDetectorReportsAndMarksIgnored(t *testing.T) {
	a := symbol.New(symbol.KindVariable, arena.IdentifierRef(1), arena.AstNodeRef(1), symbol.AccessPublic)
	b := symbol.New(symbol.KindVariable, arena.IdentifierRef(2), arena.AstNodeRef(2), symbol.AccessPublic)

	mgr := NewManager(0)
	jobA := &Job{ClientID: 1, WaiterSymbol: a, AwaitedSymbol: b}
	jobB := &Job{ClientID: 1, WaiterSymbol: b, AwaitedSymbol: a}
	mgr.byClient[1] = map[*Job]struct{}{jobA: {}, jobB: {}}
	jobA.state = stateWaiting
	jobB.state = stateWaiting

	sink := diag.NewSink()
	NewCycleDetector().Check(mgr, 1, sink)

	if !sink.HasErrors() {
		t.Fatalf("expected a cyclic-dependency diagnostic")
	}
	if a.State() != symbol.Ignored || b.State() != symbol.Ignored {
		t.Fatalf("expected both cycle participants marked Ignored, got a=%v b=%v", a.State(), b.State())
	}
}

func TestCycleDetectorReportsUnresolvedIdentifierAlone(t *testing.T) {
	mgr := NewManager(0)
	j := &Job{ClientID: 1, WaitKind: WaitIdentifier}
	mgr.byClient[1] = map[*Job]struct{}{j: {}}
	j.state = stateWaiting

	sink := diag.NewSink()
	NewCycleDetector().Check(mgr, 1, sink)

	diags := sink.All()
	if len(diags) != 1 || diags[0].ID != "sema_err_unknown_symbol" {
		t.Fatalf("expected exactly one unknown_symbol diagnostic, got %+v", diags)
	}
}
