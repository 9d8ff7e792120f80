package engine

import (
	"sync"

	"github.com/nao1215/pagescan/internal/model"
)

// Stats tracks process-wide counters for the lifetime of an engine.
//
// Design decision: We guard the counters with a mutex rather than using
// atomics because Snapshot must read all four consistently; individual
// atomic loads could interleave with a concurrent analysis and return a
// torn view.
type Stats struct {
	mu sync.Mutex

	documentsProcessed   int
	elementsExtracted    int
	errorsFound          int
	optimizationsApplied int
}

// NewStats creates a zeroed counter set.
func NewStats() *Stats {
	return &Stats{}
}

// Snapshot returns a copy of the current counter values.
// The returned value is never a live reference; later increments do
// not affect it.
func (s *Stats) Snapshot() model.ParsingStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ParsingStats{
		DocumentsProcessed:   s.documentsProcessed,
		ElementsExtracted:    s.elementsExtracted,
		ErrorsFound:          s.errorsFound,
		OptimizationsApplied: s.optimizationsApplied,
	}
}

// Reset zeroes all four counters.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentsProcessed = 0
	s.elementsExtracted = 0
	s.errorsFound = 0
	s.optimizationsApplied = 0
}

// addDocument records one completed analysis.
func (s *Stats) addDocument() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentsProcessed++
}

// addElements records n extracted elements.
func (s *Stats) addElements(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elementsExtracted += n
}

// addErrors records n detected errors.
func (s *Stats) addErrors(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorsFound += n
}
