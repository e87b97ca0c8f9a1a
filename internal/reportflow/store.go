package reportflow

import (
	"slices"
	"sync"

	"github.com/couchcryptid/climate-report-service/internal/domain"
)

// Store keeps reports in memory in submission order.
type Store struct {
	mu      sync.RWMutex
	reports []domain.Report
	byID    map[string]int
}

// NewStore returns a store pre-populated with seed.
func NewStore(seed []domain.Report) *Store {
	s := &Store{byID: make(map[string]int, len(seed))}
	for _, r := range seed {
		s.add(r)
	}
	return s
}

// Add appends a report. A report with an existing ID replaces the old one in place.
func (s *Store) Add(r domain.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(r)
}

func (s *Store) add(r domain.Report) {
	if i, ok := s.byID[r.ID]; ok {
		s.reports[i] = r
		return
	}
	s.byID[r.ID] = len(s.reports)
	s.reports = append(s.reports, r)
}

// Get returns the report with the given ID.
func (s *Store) Get(id string) (domain.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Report{}, false
	}
	return s.reports[i], true
}

// List returns a copy of all reports.
func (s *Store) List() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reports)
}

// Len returns the number of stored reports.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
