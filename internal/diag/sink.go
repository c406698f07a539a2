package diag

import "sync"

// Sink collects diagnostics from any number of concurrent jobs (spec
// §6.2: "reporting is thread-safe; ordering across jobs is
// unspecified, ordering within one job's own reports is preserved").
type Sink struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func NewSink() *Sink { return &Sink{} }

// Report appends d. Safe to call concurrently from any worker.
func (s *Sink) Report(d *Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags = append(s.diags, *d)
}

// All returns a snapshot of everything reported so far, in report order.
func (s *Sink) All() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

// HasErrors reports whether any SeverityError diagnostic was reported.
func (s *Sink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics reported so far.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.diags)
}
