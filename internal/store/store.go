package store

import (
	"sync/atomic"

	"cryptopulse/internal/domain/models"
)

// ObservationStore is the process-lifetime, in-memory collection of price
// observations. It is populated once during startup ingestion and then read
// by every query for the rest of the process lifetime.
//
// Each Ingest publishes a fresh copy-on-write snapshot through an atomic
// pointer, so readers never observe a slice that is being appended to. There
// is no delete or update operation. Insertion order (file-read order) is
// preserved, which keeps iteration deterministic.
type ObservationStore struct {
	snapshot atomic.Pointer[[]models.Observation]
}

// New returns an empty ObservationStore.
func New() *ObservationStore {
	s := &ObservationStore{}
	empty := make([]models.Observation, 0)
	s.snapshot.Store(&empty)
	return s
}

// Ingest appends the given observations to the store by swapping in a new
// snapshot. Intended to be called from the single startup ingestion pass;
// concurrent reads remain safe throughout.
func (s *ObservationStore) Ingest(obs []models.Observation) {
	if len(obs) == 0 {
		return
	}
	cur := *s.snapshot.Load()
	next := make([]models.Observation, 0, len(cur)+len(obs))
	next = append(next, cur...)
	next = append(next, obs...)
	s.snapshot.Store(&next)
}

// All returns the current snapshot of observations in insertion order.
// Callers must treat the returned slice as read-only.
func (s *ObservationStore) All() []models.Observation {
	return *s.snapshot.Load()
}

// Len returns the number of observations currently held.
func (s *ObservationStore) Len() int {
	return len(*s.snapshot.Load())
}
