package state

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/five82/pawprint/internal/adopt"
)

// Tracker hands out monotonically increasing request generations. Only the
// most recently issued generation is current.
type Tracker struct {
	last atomic.Uint64
}

// Next issues a new generation, making every earlier one stale.
func (t *Tracker) Next() uint64 {
	return t.last.Add(1)
}

// Current returns the latest issued generation, or 0 before the first.
func (t *Tracker) Current() uint64 {
	return t.last.Load()
}

// IsCurrent reports whether gen is the latest issued generation.
func (t *Tracker) IsCurrent(gen uint64) bool {
	return gen != 0 && gen == t.last.Load()
}

// Snapshot represents the latest pet listing available to the UI.
type Snapshot struct {
	Query               adopt.PetQuery
	Page                adopt.Page
	HasPage             bool
	Degraded            bool // Page holds offline sample data
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	Generation          uint64
}

// IsOffline returns true when the API has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the pet listing snapshot.
type Store struct {
	mu       sync.RWMutex
	tracker  Tracker
	snapshot Snapshot
}

// Begin records q as the listing being requested and returns the generation
// its response must carry.
func (s *Store) Begin(q adopt.PetQuery) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Query = q
	return s.tracker.Next()
}

// Query returns the most recently requested listing query.
func (s *Store) Query() adopt.PetQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Query
}

// Apply stores a listing response tagged with gen. Responses for anything but
// the latest generation are dropped and Apply returns false.
//
// A plain error keeps the previous page and records the error. A degraded
// response replaces the page with sample data and still counts as a failure.
func (s *Store) Apply(gen uint64, page adopt.Page, degraded bool, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tracker.IsCurrent(gen) {
		return false
	}
	s.snapshot.Generation = gen
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		if degraded {
			s.snapshot.Page = clonePage(page)
			s.snapshot.HasPage = true
			s.snapshot.Degraded = true
		}
		return true
	}

	s.snapshot.Page = clonePage(page)
	s.snapshot.HasPage = true
	s.snapshot.Degraded = false
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Page = clonePage(s.snapshot.Page)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePage(page adopt.Page) adopt.Page {
	if len(page.Items) == 0 {
		page.Items = nil
		return page
	}
	items := make([]adopt.Pet, len(page.Items))
	copy(items, page.Items)
	page.Items = items
	return page
}
