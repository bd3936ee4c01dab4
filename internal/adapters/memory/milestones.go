package memory

import (
	"strings"
	"sync"
	"time"

	"lovediary/internal/application"
	"lovediary/internal/domain"
	"lovediary/internal/ports"
)

// Milestones implements ports.MilestoneRepository over a slice
type Milestones struct {
	mu    sync.RWMutex
	items []domain.Milestone
}

// Ensure Milestones implements MilestoneRepository
var _ ports.MilestoneRepository = (*Milestones)(nil)

// NewMilestones creates a repository holding ms
func NewMilestones(ms ...domain.Milestone) *Milestones {
	return &Milestones{items: append([]domain.Milestone(nil), ms...)}
}

// NewSampleMilestones creates a repository seeded with SampleMilestones(now)
func NewSampleMilestones(now time.Time) *Milestones {
	return NewMilestones(SampleMilestones(now)...)
}

// List returns a copy of the milestones, oldest first
func (r *Milestones) List() ([]domain.Milestone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]domain.Milestone(nil), r.items...)
	domain.SortMilestones(out)
	return out, nil
}

// Add stores m; ids must be unique
func (r *Milestones) Add(m domain.Milestone) error {
	if strings.TrimSpace(m.Title) == "" {
		return &application.ValidationError{Field: "title", Message: "title is required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if m.ID != "" && existing.ID == m.ID {
			return &application.ValidationError{Field: "milestoneID", Message: "duplicate milestone " + m.ID}
		}
	}
	r.items = append(r.items, m)
	return nil
}

// SampleMilestones returns the demo timeline with dates placed relative to
// now, the most recent one 44 days ago
func SampleMilestones(now time.Time) []domain.Milestone {
	ago := func(days int) time.Time {
		d := now.AddDate(0, 0, -days)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	}

	return []domain.Milestone{
		{
			ID:          "m1",
			Kind:        domain.MilestoneFirstKiss,
			Title:       "First Kiss",
			Date:        ago(353),
			Description: "Under the stars at the beach. Time stopped for just that moment.",
		},
		{
			ID:          "m2",
			Kind:        domain.MilestoneTravel,
			Title:       "Road Trip to the Mountains",
			Date:        ago(314),
			Description: "Our first adventure together. Getting lost on those mountain roads was the best thing that ever happened to us.",
		},
		{
			ID:          "m3",
			Kind:        domain.MilestoneFirstArgument,
			Title:       "We Worked Through It",
			Date:        ago(277),
			Description: "Our first real disagreement, but we learned how to communicate better. It made us stronger.",
		},
		{
			ID:          "m4",
			Kind:        domain.MilestoneBirthday,
			Title:       "Your Birthday Surprise",
			Date:        ago(115),
			Description: "The look on your face when you walked into the surprise party was priceless!",
		},
		{
			ID:          "m5",
			Kind:        domain.MilestoneMovedIn,
			Title:       "Moving In Together",
			Date:        ago(44),
			Description: "Our little apartment became a home the moment we were both in it.",
		},
	}
}
