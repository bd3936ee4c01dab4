package ports

import "lovediary/internal/domain"

// EntryRepository gives access to the diary feed, newest first
type EntryRepository interface {
	List() ([]domain.Entry, error)

	// Get returns application.ErrNotFound for an unknown id
	Get(id string) (*domain.Entry, error)

	// Add puts entry at the top of the feed
	Add(entry domain.Entry) error

	// ToggleLike flips the reader's like on an entry and returns the result
	ToggleLike(id string) (*domain.Entry, error)
}
