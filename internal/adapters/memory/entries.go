// Package memory holds the diary feed in process memory. Nothing is written
// to disk; the feed starts from a fixed set of sample entries.
package memory

import (
	"sync"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// Repository implements ports.EntryRepository over a slice
type Repository struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

// Ensure Repository implements EntryRepository
var _ ports.EntryRepository = (*Repository)(nil)

// NewRepository creates a repository holding entries, newest first
func NewRepository(entries ...domain.Entry) *Repository {
	return &Repository{entries: cloneEntries(entries)}
}

// NewSampleRepository creates a repository seeded with SampleEntries(now)
func NewSampleRepository(now time.Time) *Repository {
	return NewRepository(SampleEntries(now)...)
}

// List returns a copy of the feed
func (r *Repository) List() ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneEntries(r.entries), nil
}

// Get returns a copy of the entry with id
func (r *Repository) Get(id string) (*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, application.ErrNotFound
	}
	e := cloneEntry(r.entries[i])
	return &e, nil
}

// Add puts entry at the top of the feed
func (r *Repository) Add(entry domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID != "" && r.indexOf(entry.ID) >= 0 {
		return &application.ValidationError{Field: "entryID", Message: "duplicate entry " + entry.ID}
	}
	r.entries = append([]domain.Entry{cloneEntry(entry)}, r.entries...)
	return nil
}

// ToggleLike flips the reader's like on the entry with id
func (r *Repository) ToggleLike(id string) (*domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, application.ErrNotFound
	}
	r.entries[i].ToggleLike()
	e := cloneEntry(r.entries[i])
	return &e, nil
}

// indexOf finds id; caller holds the lock
func (r *Repository) indexOf(id string) int {
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func cloneEntry(e domain.Entry) domain.Entry {
	e.Reactions = append([]domain.Reaction(nil), e.Reactions...)
	return e
}

func cloneEntries(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}
