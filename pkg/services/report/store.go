package report

import (
	"sync"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

// Store is the session-scoped QBR history. Append-only; List enumerates
// newest-first. Each session owns its own instance, passed by handle into
// the dashboard controller. The lock keeps the append-only contract safe
// even if a session issues overlapping requests.
type Store struct {
	mu      sync.Mutex
	reports []domain.GeneratedReport
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(r domain.GeneratedReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
}

// List returns the session's reports, newest first.
func (s *Store) List() []domain.GeneratedReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.GeneratedReport, 0, len(s.reports))
	for i := len(s.reports) - 1; i >= 0; i-- {
		out = append(out, s.reports[i])
	}
	return out
}

// Get looks a report up by ID.
func (s *Store) Get(id string) (domain.GeneratedReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, true
		}
	}
	return domain.GeneratedReport{}, false
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}
