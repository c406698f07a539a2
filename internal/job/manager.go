package job

import (
	"sync"
	"sync/atomic"
)

// Manager is the worker pool + ready queues (spec §3.2, grounded on
// Thread/JobManager.h). One Manager serves an entire compiler run;
// jobs are partitioned by ClientID purely for WaitingJobs/cycle
// detection bookkeeping, not for scheduling fairness.
type Manager struct {
	mu       sync.Mutex
	cond     *sync.Cond
	idleCond *sync.Cond

	readyQ        [numPriorities][]*Job
	activeWorkers int
	accepting     bool
	workers       int
	wg            sync.WaitGroup

	byClient map[ClientID]map[*Job]struct{}
	nextID   atomic.Uint64
}

// NewManager builds a Manager with the given worker count. Call Start
// to spin up goroutines; a Manager with zero workers still accepts
// jobs but they never run (useful in single-threaded tests that drive
// WaitingJobs directly after manually failing to schedule).
func NewManager(workers int) *Manager {
	m := &Manager{workers: workers, byClient: make(map[ClientID]map[*Job]struct{})}
	m.cond = sync.NewCond(&m.mu)
	m.idleCond = sync.NewCond(&m.mu)
	return m
}

// NextID hands out job IDs unique within this Manager's lifetime.
func (m *Manager) NextID() uint64 { return m.nextID.Add(1) }

// Start launches the worker goroutines and opens the queue for Enqueue.
func (m *Manager) Start() {
	m.mu.Lock()
	m.accepting = true
	m.mu.Unlock()
	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.workerLoop()
	}
}

// Enqueue admits j at the given priority. Returns false if the
// manager has stopped accepting work, or j is already tracked under
// its own ClientID (spec §3.2: double-enqueue is a caller bug, not a
// scheduling event).
func (m *Manager) Enqueue(j *Job, prio Priority) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.accepting || j == nil {
		return false
	}
	if set, ok := m.byClient[j.ClientID]; ok {
		if _, exists := set[j]; exists {
			return false
		}
	}
	j.Priority = prio
	j.state = stateReady
	m.registerLocked(j)
	m.pushReadyLocked(j)
	m.cond.Signal()
	return true
}

// Wake arms a wake ticket on j. If j is currently Waiting it becomes
// Ready immediately; if it is Running or already Ready, the wake is
// merely armed so a following Sleep return does not park it (spec
// §3.2's lost-wake guard, mirrored from JobRecord::wakeGen).
func (m *Manager) Wake(j *Job) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.AddUint64(&j.wakeGen, 1)
	if j.state == stateWaiting {
		j.state = stateReady
		m.pushReadyLocked(j)
		m.cond.Signal()
	}
	return true
}

// WaitAll blocks until no job anywhere is Ready or Running (sleeping
// jobs are ignored — spec §3.2, mirrors JobManager::waitAll). After it
// returns, any jobs still Waiting are either legitimately parked on
// future external input or deadlocked; the caller runs cycle detection
// to tell the two apart.
func (m *Manager) WaitAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for !m.quiescentLocked() {
		m.idleCond.Wait()
	}
}

// WaitingJobs returns every job registered under clientID that is
// currently parked in the Waiting state (spec §4.3's
// jobMgr().waitingJobs(jobs, clientId), used as cycle-detector input).
func (m *Manager) WaitingJobs(clientID ClientID) []*Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Job
	for j := range m.byClient[clientID] {
		if j.state == stateWaiting {
			out = append(out, j)
		}
	}
	return out
}

// Shutdown stops accepting new work and waits for workers to drain
// and exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.accepting = false
	m.mu.Unlock()
	m.cond.Broadcast()
	m.wg.Wait()
}

func (m *Manager) registerLocked(j *Job) {
	set, ok := m.byClient[j.ClientID]
	if !ok {
		set = make(map[*Job]struct{})
		m.byClient[j.ClientID] = set
	}
	set[j] = struct{}{}
}

func (m *Manager) unregisterLocked(j *Job) {
	if set, ok := m.byClient[j.ClientID]; ok {
		delete(set, j)
	}
}

func (m *Manager) pushReadyLocked(j *Job) {
	m.readyQ[j.Priority] = append(m.readyQ[j.Priority], j)
}

// popReadyLocked drains High before Normal before Low.
func (m *Manager) popReadyLocked() *Job {
	for p := Priority(0); p < numPriorities; p++ {
		q := m.readyQ[p]
		if len(q) > 0 {
			j := q[0]
			m.readyQ[p] = q[1:]
			return j
		}
	}
	return nil
}

func (m *Manager) queuesEmptyLocked() bool {
	for _, q := range m.readyQ {
		if len(q) > 0 {
			return false
		}
	}
	return true
}

func (m *Manager) quiescentLocked() bool {
	return m.queuesEmptyLocked() && m.activeWorkers == 0
}

func (m *Manager) notifyDependentsLocked(finished *Job) {
	for _, dep := range finished.dependents {
		if dep.state == stateWaiting {
			dep.state = stateReady
			m.pushReadyLocked(dep)
		}
	}
	finished.dependents = nil
}

func (m *Manager) workerLoop() {
	defer m.wg.Done()
	for {
		m.mu.Lock()
		var j *Job
		for {
			if j = m.popReadyLocked(); j != nil {
				break
			}
			if !m.accepting && m.queuesEmptyLocked() {
				m.mu.Unlock()
				return
			}
			m.cond.Wait()
		}
		j.state = stateRunning
		m.activeWorkers++
		genBefore := j.armedWakeGen()
		m.mu.Unlock()

		result := j.Run()

		m.mu.Lock()
		m.activeWorkers--
		switch result {
		case Done:
			j.state = stateDone
			m.unregisterLocked(j)
			m.notifyDependentsLocked(j)

		case Sleep, Pause:
			if j.armedWakeGen() != genBefore {
				j.state = stateReady
				m.pushReadyLocked(j)
			} else {
				j.state = stateWaiting
			}

		case SleepOn:
			dep := j.dep
			if dep == nil || dep.state == stateDone {
				j.state = stateReady
				m.pushReadyLocked(j)
			} else {
				j.state = stateWaiting
				dep.dependents = append(dep.dependents, j)
			}

		case SpawnAndSleep:
			j.state = stateWaiting
			if child := j.child; child != nil {
				child.state = stateReady
				child.dependents = append(child.dependents, j)
				m.registerLocked(child)
				m.pushReadyLocked(child)
			}
		}

		if m.quiescentLocked() {
			m.idleCond.Broadcast()
		}
		m.cond.Signal()
		m.mu.Unlock()
	}
}
