package commands

import (
	"context"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
)

// memProfileStore is an in-memory ports.ProfileStore
type memProfileStore struct {
	profile *domain.Profile
	saveErr error
}

func (s *memProfileStore) Load(ctx context.Context) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, application.ErrNoProfile
	}
	p := *s.profile
	return &p, nil
}

func (s *memProfileStore) Save(ctx context.Context, p domain.Profile) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.profile = &p
	return nil
}

func (s *memProfileStore) Close() error { return nil }

// sliceRepo is an in-memory ports.EntryRepository
type sliceRepo struct {
	entries []domain.Entry
	err     error
}

func (r *sliceRepo) List() ([]domain.Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.Entry(nil), r.entries...), nil
}

func (r *sliceRepo) Get(id string) (*domain.Entry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, application.ErrNotFound
}

func (r *sliceRepo) ToggleLike(id string) (*domain.Entry, error) {
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].ToggleLike()
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, application.ErrNotFound
}

func (r *sliceRepo) Add(e domain.Entry) error {
	r.entries = append([]domain.Entry{e}, r.entries...)
	return nil
}

var referenceNow = time.Date(2024, 7, 15, 20, 0, 0, 0, time.UTC)

func sampleFeed() []domain.Entry {
	return []domain.Entry{
		{ID: "1", Author: domain.Author{Name: "Alex"}, Text: "Morning coffee on the balcony", Mood: domain.MoodPeaceful, LoveIndex: 92, Timestamp: referenceNow.Add(-2 * time.Hour)},
		{ID: "2", Author: domain.Author{Name: "Sam", IsPartner: true}, Text: "Dancing in the kitchen", Mood: domain.MoodJoyful, LoveIndex: 88, Timestamp: referenceNow.Add(-5 * time.Hour)},
		{ID: "3", Author: domain.Author{Name: "Alex"}, Text: "Picnic by the lake", Mood: domain.MoodLoving, LoveIndex: 95, Timestamp: referenceNow.Add(-26 * time.Hour)},
		{ID: "4", Author: domain.Author{Name: "Sam", IsPartner: true}, Text: "Rainy movie night", Mood: domain.MoodJoyful, LoveIndex: 90, Timestamp: referenceNow.Add(-74 * time.Hour)},
	}
}

// contains checks if s contains substr
func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && len(substr) > 0 && findSubstring(s, substr)))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// sliceMilestones is an in-memory ports.MilestoneRepository
type sliceMilestones struct {
	items []domain.Milestone
	err   error
}

func (r *sliceMilestones) List() ([]domain.Milestone, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.Milestone(nil), r.items...), nil
}

func (r *sliceMilestones) Add(m domain.Milestone) error {
	r.items = append(r.items, m)
	return nil
}
