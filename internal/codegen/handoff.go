// Package codegen implements only the handoff contract of spec §5:
// scheduling a CodeGenJob per function once its callees have reached
// CodeGenPreSolved. The actual code generation backend is out of
// scope; jobs here simply advance symbols to CodeGenPreSolved/
// CodeGenCompleted so downstream tooling has a real state machine to
// hook into.
package codegen

import (
	"sync"

	"github.com/swglang/swc/internal/job"
	"github.com/swglang/swc/internal/symbol"
)

// Job wraps one function symbol's codegen handoff. It waits for every
// callee in Callees to reach CodeGenPreSolved before marking itself
// CodeGenPreSolved, then (synchronously, since there is no real
// backend here) CodeGenCompleted.
type Job struct {
	Fn      *symbol.Symbol
	Callees []*symbol.Symbol

	mu      sync.Mutex
	pending int
}

// NewJob builds a codegen handoff job for fn, depending on callees.
func NewJob(fn *symbol.Symbol, callees []*symbol.Symbol) *Job {
	return &Job{Fn: fn, Callees: callees, pending: len(callees)}
}

// Schedule wires j onto mgr as a job.Job. It is idempotent per fn via
// tryMarkScheduled so two call sites racing to schedule the same
// function's codegen only produce one job.Job (spec §5).
func Schedule(mgr *job.Manager, clientID job.ClientID, j *Job, scheduled *ScheduledSet) *job.Job {
	if !scheduled.tryMark(j.Fn) {
		return nil
	}

	var jj *job.Job
	jj = &job.Job{
		ClientID: clientID,
		Run: func() job.Result {
			j.mu.Lock()
			defer j.mu.Unlock()
			for _, callee := range j.Callees {
				if callee == j.Fn {
					continue // self-recursion never blocks its own handoff
				}
				if !callee.Reached(symbol.CodeGenPreSolved) {
					return job.Sleep
				}
			}
			j.Fn.Advance(symbol.CodeGenPreSolved)
			j.Fn.Advance(symbol.CodeGenCompleted)
			return job.Done
		},
	}
	mgr.Enqueue(jj, job.Normal)
	return jj
}

// ScheduledSet tracks which function symbols already have a codegen
// job scheduled (spec §5's tryMarkCodeGenJobScheduled).
type ScheduledSet struct {
	mu      sync.Mutex
	marked  map[*symbol.Symbol]bool
}

func NewScheduledSet() *ScheduledSet {
	return &ScheduledSet{marked: make(map[*symbol.Symbol]bool)}
}

func (s *ScheduledSet) tryMark(sym *symbol.Symbol) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.marked[sym] {
		return false
	}
	s.marked[sym] = true
	return true
}
