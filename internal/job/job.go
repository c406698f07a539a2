// Package job implements the concurrent scheduler of spec §3.2/§4.3:
// a priority work queue whose jobs can voluntarily sleep, wait on
// another job, or spawn dependents, plus the cycle detector that turns
// a stuck wait graph into diagnostics instead of a silent deadlock.
// Grounded on the original engine's Thread/Job.h and Thread/JobManager.h
// (the Go teacher repo has no concurrency layer of its own to imitate
// here), translated into goroutines/channels/sync.Cond.
package job

import (
	"sync"
	"sync/atomic"

	"github.com/swglang/swc/internal/arena"
	"github.com/swglang/swc/internal/symbol"
)

// Priority is the ready-queue class (spec §3.2).
type Priority uint8

const (
	High Priority = iota
	Normal
	Low
	numPriorities
)

// Result is what a job's Run function returns after one scheduling
// quantum (spec §3.2/§5: every suspension is an explicit, inspectable
// return value, never a blocked OS thread).
type Result uint8

const (
	Done Result = iota
	Sleep
	SleepOn
	SpawnAndSleep
	Pause // structured wait on a sema condition; manager treats it like Sleep, and the job's own WaitKind fields (set before returning) feed the cycle detector
)

// ClientID groups jobs belonging to one compilation client (one file,
// one `waitAll` scope) — spec §4.3's clientId, used to scope cycle
// detection to a single caller's stuck jobs.
type ClientID uint32

// WaitKind records why a job last returned Pause, purely for
// cycle-detection diagnostics (spec §4.3's wait-key vocabulary).
type WaitKind uint8

const (
	WaitNone WaitKind = iota
	WaitIdentifier
	WaitCompilerDefined
	WaitImplRegistrations
	WaitDeclared
	WaitTyped
	WaitCompleted
	WaitTypeCompleted
)

type recordState uint8

const (
	stateReady recordState = iota
	stateRunning
	stateWaiting
	stateDone
)

// Job is one schedulable unit of work. Run is called on a worker
// goroutine and must return quickly — long work is itself expressed as
// further Sleep/SpawnAndSleep returns, never a blocking call.
type Job struct {
	ID       uint64
	Priority Priority
	ClientID ClientID
	Run      func() Result

	// Diagnostic-only context for cycle detection (spec §4.3): which
	// symbol is waiting on which, and where, if this job is presently
	// asleep on a named resolution wait rather than SleepOn(otherJob).
	WaitKind      WaitKind
	WaiterSymbol  *symbol.Symbol
	AwaitedSymbol *symbol.Symbol
	SrcView       arena.SourceViewRef
	Tok           arena.TokenRef
	IdentName     arena.IdentifierRef

	mu            sync.Mutex
	state         recordState
	wakeGen       uint64
	dependents    []*Job
	dep           *Job
	child         *Job
	childPriority Priority
}

// SleepOn arms dep as the job's dependency before returning SleepOn
// from Run (mirrors Job::setDependency).
func (j *Job) SleepOn(dep *Job) Result {
	j.mu.Lock()
	j.dep = dep
	j.mu.Unlock()
	return SleepOn
}

// SpawnAndSleep arms child/priority before returning SpawnAndSleep.
func (j *Job) SpawnAndSleep(child *Job, prio Priority) Result {
	j.mu.Lock()
	j.child, j.childPriority = child, prio
	j.mu.Unlock()
	return SpawnAndSleep
}

func (j *Job) armedWakeGen() uint64 {
	return atomic.LoadUint64(&j.wakeGen)
}
